package readiness_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
)

var Module = fx.Provide(
	provideReadinessRepo, provideReadinessService, provideReadinessController)

func provideReadinessRepo(db *gorm.DB) repositories.ReadinessRepository {
	return repositories.NewReadinessRepository(db)
}

func provideReadinessService(readinessRepo repositories.ReadinessRepository) services.ReadinessService {
	return services.NewReadinessService(readinessRepo)
}

func provideReadinessController(readinessService services.ReadinessService) *controllers.ReadinessController {
	return controllers.NewReadinessController(readinessService)
}
