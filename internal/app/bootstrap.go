package app

import (
	"fmt"
	"log"
	"strings"

	"jobghar/internal/config"
	"jobghar/internal/delivery/http/middleware"
	"jobghar/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	registry, err := routes.NewRegistry(cfg, container.DB, container.Cache, container.Hub, logger)
	if err != nil {
		_ = container.Close()
		return nil, nil, err
	}
	registry.Register(f)

	go container.Hub.Run()

	return &App{Fiber: f}, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
