package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cterryc/netlify-two/internal/apperr"
	"github.com/cterryc/netlify-two/internal/payload"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Post("/users", h.createUser)
	router.Get("/users", h.listUsers)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	fields, err := payload.Normalize(c.Body())
	if err != nil {
		return h.fail(c, err)
	}

	created, err := h.service.Create(c.UserContext(), fields)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    created,
	})
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Users retrieved successfully",
		"count":   len(users),
		"users":   users,
	})
}

// fail answers client errors directly. Anything else is handed back to
// the application error handler, which logs the cause and keeps it out
// of the response.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Status() >= fiber.StatusInternalServerError {
		return err
	}

	body := fiber.Map{"error": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	return c.Status(appErr.Status()).JSON(body)
}
