package config

import (
	"os"
	"time"

	"PlateShare-Backend/internal/api/handlers"
	"PlateShare-Backend/internal/api/routes"
	"PlateShare-Backend/internal/middleware"
	"PlateShare-Backend/internal/utils"
	"PlateShare-Backend/internal/utils/storage"
	"PlateShare-Backend/pkg/food"
	"PlateShare-Backend/pkg/request"
	"PlateShare-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewApp(db *mongo.Database) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)
	userRepository := user.NewUserRepository(db)

	// Service
	foodService := food.NewFoodService(foodRepository, s3)
	requestService := request.NewRequestService(requestRepository, foodRepository)
	userService := user.NewUserService(userRepository)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		FoodHandler:    foodHandler,
		RequestHandler: requestHandler,
		UserHandler:    userHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
