package controller

import (
	"fmt"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/pkg/serverutils"
	"wiccapedia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGemController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Metadata(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type gemController struct {
	service service.IGemService
}

func NewGemController(service service.IGemService) IGemController {
	return &gemController{service: service}
}

func (c *gemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/gems")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/search", c.Search)
	h.Get("/metadata/:kind", c.Metadata)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *gemController) List(ctx *fiber.Ctx) error {
	req := dto.ListGemsRequest{
		Search:          ctx.Query("$search"),
		Filter:          ctx.Query("$filter"),
		OrderBy:         ctx.Query("$orderby"),
		Name:            ctx.Query("name"),
		Color:           ctx.Query("color"),
		Category:        ctx.Query("category"),
		ChemicalFormula: ctx.Query("chemical_formula"),
		Limit:           ctx.QueryInt("limit", 0),
		Cursor:          ctx.Query("cursor"),
	}

	res, err := c.service.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *gemController) Search(ctx *fiber.Ctx) error {
	res, err := c.service.Search(ctx.UserContext(), ctx.Query("q"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *gemController) Metadata(ctx *fiber.Ctx) error {
	field, ok := service.MetadataFields[ctx.Params("kind")]
	if !ok {
		return apperror.NotFound("unknown metadata kind %q", ctx.Params("kind"))
	}

	res, err := c.service.Metadata(ctx.UserContext(), field)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *gemController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *gemController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateGemRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	ctx.Location(fmt.Sprintf("/api/gems/%s", res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *gemController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateGemRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *gemController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
