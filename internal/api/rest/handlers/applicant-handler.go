package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/withsocio/socio-backend/internal/dto"
	"github.com/withsocio/socio-backend/internal/services"
	"github.com/withsocio/socio-backend/pkg/utils"
)

type ApplicantHandler struct {
	svc services.ApplicationService
}

func NewApplicantHandler(svc services.ApplicationService) *ApplicantHandler {
	return &ApplicantHandler{svc: svc}
}

// List returns one page of applicants, newest first, plus the total count.
// Role/status/search filtering stays in the dashboard client.
func (h *ApplicantHandler) List(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	apps, total, page, limit, err := h.svc.List(page, limit)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.ApplicantListResponse{
		Data:  apps,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// UpdateStatus sets one applicant's status. No side effects: notification is
// a separate explicit action.
func (h *ApplicantHandler) UpdateStatus(ctx *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing id or status")
	}

	if err := h.svc.UpdateStatus(req.ID, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingRequired):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing id or status")
		case errors.Is(err, services.ErrInvalidStatus):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid status")
		default:
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
