package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/withsocio/socio-backend/internal/dto"
	"github.com/withsocio/socio-backend/internal/services"
	"github.com/withsocio/socio-backend/pkg/utils"
)

// 10MB is plenty for a resume PDF
const maxResumeSize = 10 * 1024 * 1024

type ApplyHandler struct {
	svc services.ApplicationService
}

func NewApplyHandler(svc services.ApplicationService) *ApplyHandler {
	return &ApplyHandler{svc: svc}
}

// Submit handles the public multipart application form.
func (h *ApplyHandler) Submit(ctx *fiber.Ctx) error {
	form := dto.ApplicationForm{
		FullName:          ctx.FormValue("fullName"),
		CourseYearDept:    ctx.FormValue("courseYearDept"),
		PhoneNumber:       ctx.FormValue("phoneNumber"),
		Email:             ctx.FormValue("email"),
		PortfolioLink:     ctx.FormValue("portfolioLink"),
		RoleInterest:      ctx.FormValue("roleInterest"),
		ExistingSkills:    ctx.FormValue("existingSkills"),
		WhyConsider:       ctx.FormValue("whyConsider"),
		ProjectExperience: ctx.FormValue("projectExperience"),
		StartupComfort:    ctx.FormValue("startupComfort"),
		WorkSample:        ctx.FormValue("workSample"),
		HoursPerWeek:      ctx.FormValue("hoursPerWeek"),
		InternshipGoals:   ctx.FormValue("internshipGoals"),
		CampusID:          ctx.FormValue("campusId"),
	}

	file, err := ctx.FormFile("resume")
	if err != nil || form.FullName == "" || form.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing required fields")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	resume, err := utils.ReadAllLimit(f, maxResumeSize)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 10MB)")
	}

	created, err := h.svc.Submit(ctx.Context(), form, file.Filename, resume)
	if err != nil {
		if errors.Is(err, services.ErrMissingRequired) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing required fields")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.ApplyResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: created.ID,
	})
}
