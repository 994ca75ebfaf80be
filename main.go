package main

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kafe/config"
	"kafe/controllers"
	"kafe/logger"
	"kafe/middleware"
	"kafe/routes"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(log))
	middleware.InitMetrics()
	app.Use(middleware.PrometheusMiddleware())
	app.Use(cors.New()) // any origin

	routes.RegisterRoutes(app, controllers.New(cfg))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	log.Info().Str("addr", ":8000").Msg("listening")
	log.Fatal().Err(app.Listen(":8000")).Msg("server stopped")
}
