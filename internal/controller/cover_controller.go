package controller

import (
	"fmt"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/pkg/serverutils"
	"wiccapedia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICoverController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Default(ctx *fiber.Ctx) error
}

type coverController struct {
	service service.ICoverService
}

func NewCoverController(service service.ICoverService) ICoverController {
	return &coverController{service: service}
}

func (c *coverController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/covers")
	h.Use(auth) // PROTECTED
	h.Post("", c.Create)
	h.Get("/default", c.Default)
	h.Get("/:id", c.Show)
}

func (c *coverController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCoverRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	ctx.Location(fmt.Sprintf("/api/covers/%d", res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *coverController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *coverController) Default(ctx *fiber.Ctx) error {
	res, err := c.service.GetDefault(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
