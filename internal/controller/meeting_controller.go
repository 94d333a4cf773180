package controller

import (
	"errors"
	"strconv"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMeetingController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	DeleteMany(ctx *fiber.Ctx) error
}

type meetingController struct {
	service service.IMeetingService
}

func NewMeetingController(service service.IMeetingService) IMeetingController {
	return &meetingController{service: service}
}

// Route shapes follow the historical API surface, including the verb-in-path
// style clients already depend on.
func (c *meetingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meeting")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/add", c.Add)
	h.Post("/update/:id", c.Update)
	h.Get("", c.GetAll)
	h.Get("/view/:id", c.View)
	h.Delete("/delete/:id", c.Delete)
	h.Post("/deleteMany", c.DeleteMany)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func meetingNotFound(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Meeting not found."))
}

func (c *meetingController) Add(ctx *fiber.Ctx) error {
	var req dto.CreateMeetingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body."))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	body := serverutils.SuccessResponse("Meeting added successfully", res)
	body.Status = fiber.StatusCreated
	return ctx.Status(fiber.StatusCreated).JSON(body)
}

func (c *meetingController) GetAll(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

	query := dto.ListMeetingsQuery{
		Page:      page,
		Limit:     limit,
		CreatedBy: ctx.Query("createdBy"),
		Related:   ctx.Query("related"),
		Agenda:    ctx.Query("agenda"),
	}

	res, err := c.service.GetAll(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all meetings", res))
}

func (c *meetingController) View(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return meetingNotFound(ctx)
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			return meetingNotFound(ctx)
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get meeting", res))
}

func (c *meetingController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return meetingNotFound(ctx)
	}

	var req dto.UpdateMeetingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body."))
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			return meetingNotFound(ctx)
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Meeting updated successfully", res))
}

func (c *meetingController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return meetingNotFound(ctx)
	}

	if err := c.service.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			return meetingNotFound(ctx)
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Meeting deleted successfully", nil))
}

func (c *meetingController) DeleteMany(ctx *fiber.Ctx) error {
	var req dto.DeleteManyMeetingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body."))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.DeleteMany(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Meetings deleted successfully", res))
}
