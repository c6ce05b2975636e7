package progress_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo, provideProgressService, provideProgressController)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideProgressService(progressRepo repositories.ProgressRepository) services.ProgressService {
	return services.NewProgressService(progressRepo)
}

func provideProgressController(progressService services.ProgressService) *controllers.ProgressController {
	return controllers.NewProgressController(progressService)
}
