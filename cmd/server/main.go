package main

import (
	"context"
	"fmt"

	"PlateShare-Backend/cmd/config"
	"PlateShare-Backend/internal/utils"
	"PlateShare-Backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := user.NewUserRepository(db).EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("failed to ensure user indexes: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "3000"
	}

	log.Infof("plateShare server is running on port: %s", port)
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
