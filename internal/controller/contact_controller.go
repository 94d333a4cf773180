package controller

import (
	"errors"

	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
}

func NewContactController(service service.IContactService) IContactController {
	return &contactController{service: service}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/contact")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("/view/:id", c.Show)
}

func (c *contactController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all contacts", res))
}

func (c *contactController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Contact not found."))
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Contact not found."))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get contact", res))
}
