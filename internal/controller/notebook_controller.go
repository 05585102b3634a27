package controller

import (
	"fmt"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/pkg/serverutils"
	"wiccapedia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
}

func NewNotebookController(service service.INotebookService) INotebookController {
	return &notebookController{service: service}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebooks")
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNotebookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	ctx.Location(fmt.Sprintf("/api/notebooks/%d", res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
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
