package meal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
)

var Module = fx.Provide(
	provideMealRepo, provideMealService, provideMealController)

func provideMealRepo(db *gorm.DB) repositories.MealRepository {
	return repositories.NewMealRepository(db)
}

func provideMealService(mealRepo repositories.MealRepository) services.MealService {
	return services.NewMealService(mealRepo)
}

func provideMealController(mealService services.MealService) *controllers.MealController {
	return controllers.NewMealController(mealService)
}
