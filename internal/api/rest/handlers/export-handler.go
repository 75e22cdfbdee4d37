package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/withsocio/socio-backend/internal/services"
	"github.com/withsocio/socio-backend/pkg/utils"
)

type ExportHandler struct {
	svc services.ExportService
}

func NewExportHandler(svc services.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Download streams either the full XLSX export or the legacy preference CSV.
func (h *ExportHandler) Download(ctx *fiber.Ctx) error {
	format := ctx.Query("format", "csv")

	if format == "xlsx" {
		filename, data, err := h.svc.ExportXLSX()
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
		}
		ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
		return ctx.Status(fiber.StatusOK).Send(data)
	}

	preference := ctx.Query("preference")
	if preference == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing preference")
	}

	filename, data, err := h.svc.ExportCSV(preference)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Status(fiber.StatusOK).Send(data)
}
