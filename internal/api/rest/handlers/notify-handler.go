package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/withsocio/socio-backend/internal/dto"
	"github.com/withsocio/socio-backend/internal/services"
	"github.com/withsocio/socio-backend/pkg/utils"
)

type NotifyHandler struct {
	svc services.NotifyService
}

func NewNotifyHandler(svc services.NotifyService) *NotifyHandler {
	return &NotifyHandler{svc: svc}
}

func (h *NotifyHandler) Send(ctx *fiber.Ctx) error {
	var req dto.NotifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing fields")
	}

	if err := h.svc.Notify(req); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingRequired):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing fields")
		case errors.Is(err, services.ErrInvalidNotifyType):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid type")
		default:
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
