package program_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
)

var Module = fx.Provide(
	provideProgramRepo, provideProgramService, provideProgramController)

func provideProgramRepo(db *gorm.DB) repositories.ProgramRepository {
	return repositories.NewProgramRepository(db)
}

func provideProgramService(programRepo repositories.ProgramRepository) services.ProgramService {
	return services.NewProgramService(programRepo)
}

func provideProgramController(programService services.ProgramService) *controllers.ProgramController {
	return controllers.NewProgramController(programService)
}
