package controller

import (
	"errors"

	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type leadController struct {
	service service.ILeadService
}

func NewLeadController(service service.ILeadService) ILeadController {
	return &leadController{service: service}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lead")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("/view/:id", c.Show)
}

func (c *leadController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all leads", res))
}

func (c *leadController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Lead not found."))
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Lead not found."))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get lead", res))
}
