package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitfusion/internal/controllers"
	"fitfusion/internal/repositories"
	"fitfusion/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, provideAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthService {
	return services.NewAuthService(userRepo)
}

func provideAuthController(authService services.AuthService) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
