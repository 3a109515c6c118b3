package main

import (
	"monopoly-online/app/controllers"
	"monopoly-online/pkg/routes"
	"monopoly-online/platform/logging"
	socket "monopoly-online/platform/sockets"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
)

func main() {
	logging.Init()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: controllers.SigningKey(),
	}))

	app.Get("/user/cur", controllers.Cur)
	go socket.CreateSocketIOServer()
	app.Listen(":4101")
}
