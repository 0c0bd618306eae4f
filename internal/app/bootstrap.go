package app

import (
	"fmt"
	"log"
	"strings"

	"talento-joven/internal/config"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/delivery/http/routes"
	v1 "talento-joven/internal/delivery/http/routes/v1"
	"talento-joven/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container and the HTTP surface. The returned
// cleanup flushes coalesced writes and closes every connection; callers
// run it after the server stops accepting requests.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)

	deps := v1.Deps{
		Auth:      c.Auth,
		CV:        c.CV,
		Letters:   c.Letters,
		Export:    c.Export,
		Wizard:    c.Wizard,
		Offers:    c.Offers,
		Companies: c.Companies,
		Youth:     c.Youth,
		Media:     c.Media,
		Files:     c.Files,

		AuthMw:      middleware.NewAuthMiddleware(c.JWT),
		WS:          ws.NewHandler(c.Hub, logger),
		MaxUploadMB: cfg.Storage.MaxUploadMB,
	}
	routes.NewRegistry(deps).Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
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
