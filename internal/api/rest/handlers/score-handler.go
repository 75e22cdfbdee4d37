package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/withsocio/socio-backend/internal/dto"
	"github.com/withsocio/socio-backend/internal/services"
	"github.com/withsocio/socio-backend/pkg/utils"
)

type ScoreHandler struct {
	svc services.ScoreService
}

func NewScoreHandler(svc services.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

func (h *ScoreHandler) List(ctx *fiber.Ctx) error {
	applicantID := ctx.Query("applicantId")
	if applicantID == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing applicantId")
	}

	scores, err := h.svc.ListScores(applicantID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, scores)
}

func (h *ScoreHandler) Upsert(ctx *fiber.Ctx) error {
	var req dto.ScoreSubmitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing fields")
	}

	if _, err := h.svc.RecordScore(req.ApplicantID, req.Interviewer, req.Scores); err != nil {
		if errors.Is(err, services.ErrMissingRequired) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing fields")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
