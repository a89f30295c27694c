package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app with error rendering, panic recovery,
// open CORS and access logging.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      ServiceTitle + " " + ServiceVersion,
		ErrorHandler: ErrorHandler(h.log),
	})
	app.Use(requestLogger(h.log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
	}))

	RegisterRoutes(app, h)
	return app
}

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Info)
	app.Get("/health", h.Health)
	app.Get("/metrics", metricsHandler())
	app.Post("/consultar-abogado", h.ConsultarAbogado)
}
