package controller

import (
	"wiccapedia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Info(ctx *fiber.Ctx) error
}

type healthController struct {
	service service.IHealthService
}

func NewHealthController(service service.IHealthService) IHealthController {
	return &healthController{service: service}
}

// RegisterRoutes mounts on the app root, outside /api.
func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Info)
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Check(ctx.UserContext()))
}

func (c *healthController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Info())
}
