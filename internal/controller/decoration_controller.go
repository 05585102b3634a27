package controller

import (
	"fmt"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/pkg/serverutils"
	"wiccapedia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDecorationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type decorationController struct {
	service service.IDecorationService
}

func NewDecorationController(service service.IDecorationService) IDecorationController {
	return &decorationController{service: service}
}

func (c *decorationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/decorations")
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
}

func (c *decorationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDecorationRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	ctx.Location(fmt.Sprintf("/api/decorations/%d", res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *decorationController) Show(ctx *fiber.Ctx) error {
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
