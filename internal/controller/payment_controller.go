// FILE: internal/controller/payment_controller.go
package controller

import (
	"payment-dashboard-be/internal/pkg/serverutils"
	"payment-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	ListPayments(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/admin/payments", authMiddleware)
	h.Get("/", c.ListPayments)
	h.Get("/stats", c.GetStats)
}

func (c *paymentController) ListPayments(ctx *fiber.Ctx) error {
	search := ctx.Query("search")

	res, err := c.service.ListPayments(ctx.Context(), search)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching payments", res))
}

func (c *paymentController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment statistics", res))
}
