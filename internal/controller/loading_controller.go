// FILE: internal/controller/loading_controller.go
package controller

import (
	"errors"

	"payment-dashboard-be/internal/dto"
	"payment-dashboard-be/internal/pkg/serverutils"
	"payment-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILoadingController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	UpdateSession(ctx *fiber.Ctx) error
	StopSession(ctx *fiber.Ctx) error
}

type loadingController struct {
	service service.ILoadingService
}

func NewLoadingController(service service.ILoadingService) ILoadingController {
	return &loadingController{service: service}
}

func (c *loadingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/loading/sessions")
	h.Post("/", c.StartSession)
	h.Get("/:id", c.GetSession)
	h.Patch("/:id", c.UpdateSession)
	h.Delete("/:id", c.StopSession)
}

func (c *loadingController) StartSession(ctx *fiber.Ctx) error {
	var req dto.LoadingSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}

	res := c.service.StartSession(&req)
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Loading session started", res))
}

func (c *loadingController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.service.GetSession(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrLoadingSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Loading session state", res))
}

func (c *loadingController) UpdateSession(ctx *fiber.Ctx) error {
	var req dto.LoadingSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateSession(ctx.Params("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrLoadingSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Loading session updated", res))
}

func (c *loadingController) StopSession(ctx *fiber.Ctx) error {
	if err := c.service.StopSession(ctx.Params("id")); err != nil {
		if errors.Is(err, service.ErrLoadingSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Loading session stopped", nil))
}
