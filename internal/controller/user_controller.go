package controller

import (
	"fmt"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/pkg/serverutils"
	"wiccapedia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	ctx.Location(fmt.Sprintf("/api/users/%d", res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *userController) Show(ctx *fiber.Ctx) error {
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
