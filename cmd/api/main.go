package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"blog-api/interfaces/api/handlers"
	"blog-api/interfaces/api/middleware"
	"blog-api/interfaces/api/routes"
	"blog-api/pkg/di"
	"blog-api/pkg/logger"
)

func main() {
	// Initialize DI container
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// ใช้ panic ก่อน logger init
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		AppName:               container.GetConfig().App.Name,
		BodyLimit:             int(container.GetConfig().Storage.MaxUploadSize) + 1024*1024,
		DisableStartupMessage: false,
	})

	// Setup middleware (order matters!)
	app.Use(middleware.RequestIDMiddleware()) // ต้องมาก่อน logger
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	// Serve uploaded media ตรงจาก disk เมื่อใช้ local storage
	if container.GetConfig().Storage.Type != "s3" {
		app.Static("/files", container.GetConfig().Storage.BasePath)
	}

	h := handlers.NewHandlers(container.GetHandlerServices())
	auth := middleware.NewAuthMiddleware(container.GetConfig().JWT.Secret, container.TokenStore)

	routes.SetupRoutes(app, h, auth)

	port := container.GetConfig().App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.GetConfig().App.Env,
		"app", container.GetConfig().App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		container.Cleanup()

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
