package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo, provideWorkoutService, provideWorkoutController)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(workoutRepo repositories.WorkoutRepository) services.WorkoutService {
	return services.NewWorkoutService(workoutRepo)
}

func provideWorkoutController(workoutService services.WorkoutService) *controllers.WorkoutController {
	return controllers.NewWorkoutController(workoutService)
}
