package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/cterryc/netlify-two/internal/apperr"
	"github.com/cterryc/netlify-two/internal/config"
	"github.com/cterryc/netlify-two/internal/user"
)

// New assembles the HTTP application: middleware, the greeting route,
// and the user routes, all grouped under the configured base path.
func New(cfg config.Config, userHandler *user.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
	}))

	root := app.Group(cfg.BasePath)
	root.Get("/greeting", handleGreeting)
	userHandler.RegisterRoutes(root)

	return app
}

func handleGreeting(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello from the users API"})
}

// errorHandler answers everything the routes did not handle themselves.
// Server-side causes are logged and never leave the process.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperr.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status()
		if status < fiber.StatusInternalServerError {
			message = appErr.Message
		}
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		if status < fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}

	if status >= fiber.StatusInternalServerError {
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"kind", apperr.KindOf(err).String(),
			"error", cause,
		)
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}
