package user_fx

import (
	"go.uber.org/fx"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
)

var Module = fx.Provide(
	provideUserService, provideUserController)

func provideUserService(userRepo repositories.UserRepository) services.UserService {
	return services.NewUserService(userRepo)
}

func provideUserController(userService services.UserService) *controllers.UserController {
	return controllers.NewUserController(userService)
}
