package routes

import (
	"PlateShare-Backend/internal/api/handlers"
	"PlateShare-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	FoodHandler    handlers.FoodHandler
	RequestHandler handlers.RequestHandler
	UserHandler    handlers.UserHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Liveness()
	c.Foods()
	c.Requests()
	c.Users()
}

func (c *Config) Liveness() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("PlateShare server is running")
	})
}

func (c *Config) Foods() {
	c.App.Get("/foods", c.FoodHandler.GetFoods)
	c.App.Get("/featured-foods", c.FoodHandler.GetFeaturedFoods)
	c.App.Post("/foods", c.FoodHandler.AddFood)
	c.App.Get("/foods/:id", c.FoodHandler.GetFoodByID)
	c.App.Patch("/foods/:id", c.FoodHandler.UpdateFood)
	c.App.Delete("/foods/:id", c.FoodHandler.DeleteFood)
	c.App.Post("/foods/:id/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Requests() {
	c.App.Post("/requests", c.RequestHandler.AddRequest)
	c.App.Patch("/requests/accept/:id", c.RequestHandler.AcceptRequest)
	c.App.Patch("/requests/reject/:id", c.RequestHandler.RejectRequest)
	c.App.Get("/requests/:foodId", c.RequestHandler.GetRequestsForFood)
	c.App.Delete("/requests/:id", c.RequestHandler.CancelRequest)
	c.App.Get("/my-requests/:email", c.RequestHandler.GetMyRequests)
}

func (c *Config) Users() {
	c.App.Post("/users", c.UserHandler.AddUser)
	c.App.Get("/users", c.UserHandler.GetUsers)
	c.App.Get("/users/:email", c.UserHandler.GetUserByEmail)
	c.App.Delete("/users/:email", c.UserHandler.DeleteUserByEmail)
}
