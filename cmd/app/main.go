package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"fitfusion/cmd/fx/auth_fx"
	"fitfusion/cmd/fx/db_fx"
	"fitfusion/cmd/fx/insight_fx"
	"fitfusion/cmd/fx/meal_fx"
	"fitfusion/cmd/fx/program_fx"
	"fitfusion/cmd/fx/progress_fx"
	"fitfusion/cmd/fx/readiness_fx"
	"fitfusion/cmd/fx/user_fx"
	"fitfusion/cmd/fx/workout_fx"
	"fitfusion/internal/controllers"
	"fitfusion/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		user_fx.Module,
		workout_fx.Module,
		program_fx.Module,
		meal_fx.Module,
		progress_fx.Module,
		readiness_fx.Module,
		insight_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	workoutController *controllers.WorkoutController,
	programController *controllers.ProgramController,
	progressController *controllers.ProgressController,
	mealController *controllers.MealController,
	readinessController *controllers.ReadinessController,
	insightController *controllers.InsightController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController,
		userController,
		workoutController,
		programController,
		progressController,
		mealController,
		readinessController,
		insightController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	workoutController *controllers.WorkoutController,
	programController *controllers.ProgramController,
	progressController *controllers.ProgressController,
	mealController *controllers.MealController,
	readinessController *controllers.ReadinessController,
	insightController *controllers.InsightController) {

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authController.Logout)

	usersGroup := api.Group("/users", middleware.JWTAuthMiddleware())
	usersGroup.GET("", userController.GetAllUsers)
	usersGroup.GET("/getuserinfo", userController.GetUserInfo)
	usersGroup.PUT("/updatestats/:id", userController.UpdateStats)
	usersGroup.DELETE("/delete/:id", userController.DeleteUser)

	workoutsGroup := api.Group("/workouts", middleware.JWTAuthMiddleware())
	workoutsGroup.POST("", workoutController.CreateWorkout)
	workoutsGroup.GET("", workoutController.GetWorkouts)
	workoutsGroup.GET("/stats", workoutController.GetStats)
	workoutsGroup.GET("/:workoutId", workoutController.GetWorkout)
	workoutsGroup.PUT("/:workoutId", workoutController.UpdateWorkout)
	workoutsGroup.DELETE("/:workoutId", workoutController.DeleteWorkout)
	workoutsGroup.POST("/:workoutId/complete", workoutController.CompleteWorkout)
	workoutsGroup.POST("/:workoutId/exercises", workoutController.AddExercise)
	workoutsGroup.PUT("/:workoutId/exercises/:exerciseIndex", workoutController.UpdateExercise)
	workoutsGroup.DELETE("/:workoutId/exercises/:exerciseIndex", workoutController.RemoveExercise)

	programsGroup := workoutsGroup.Group("/programs")
	programsGroup.POST("", programController.CreateProgram)
	programsGroup.GET("", programController.GetPrograms)
	programsGroup.GET("/:programId", programController.GetProgram)
	programsGroup.PUT("/:programId", programController.UpdateProgram)
	programsGroup.DELETE("/:programId", programController.DeleteProgram)
	programsGroup.POST("/:programId/start", programController.StartProgram)
	programsGroup.POST("/:programId/complete-workout", programController.CompleteProgramWorkout)

	progressGroup := workoutsGroup.Group("/progress")
	progressGroup.POST("", progressController.CreateEntry)
	progressGroup.GET("", progressController.GetEntries)
	progressGroup.GET("/stats", progressController.GetStats)
	progressGroup.GET("/trends", progressController.GetTrends)
	progressGroup.GET("/:id", progressController.GetEntry)
	progressGroup.PUT("/:id", progressController.UpdateEntry)
	progressGroup.DELETE("/:id", progressController.DeleteEntry)

	foodGroup := api.Group("/food", middleware.JWTAuthMiddleware())
	foodGroup.POST("", mealController.CreateMeal)
	foodGroup.GET("", mealController.GetMeals)
	foodGroup.GET("/stats", mealController.GetStats)
	foodGroup.GET("/:id", mealController.GetMeal)
	foodGroup.PUT("/:id", mealController.UpdateMeal)
	foodGroup.DELETE("/:id", mealController.DeleteMeal)

	readinessGroup := api.Group("/readiness", middleware.JWTAuthMiddleware())
	readinessGroup.POST("", readinessController.CreateScore)
	readinessGroup.GET("", readinessController.GetScores)
	readinessGroup.GET("/:id", readinessController.GetScore)
	readinessGroup.PUT("/:id", readinessController.UpdateScore)
	readinessGroup.DELETE("/:id", readinessController.DeleteScore)

	geminiGroup := api.Group("/gemini", middleware.JWTAuthMiddleware())
	geminiGroup.POST("/insight", insightController.GenerateInsight)
	geminiGroup.GET("/quick-replies", insightController.GetQuickReplies)
	geminiGroup.GET("/insights", insightController.GetInsights)
	geminiGroup.PUT("/insights/:id/read", insightController.MarkInsightRead)
}
