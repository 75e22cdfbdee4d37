package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CampusHandler struct{}

func NewCampusHandler() *CampusHandler {
	return &CampusHandler{}
}

// DisplayName strips a trailing "id" from the campus identifier and
// uppercases the rest, so "bangaloreid" renders as "BANGALORE".
func DisplayName(campusID string) string {
	name := campusID
	if len(name) >= 2 && strings.EqualFold(name[len(name)-2:], "id") {
		name = name[:len(name)-2]
	}
	name = strings.ToUpper(name)
	if name == "" {
		return "General"
	}
	return name
}

// Get labels the per-campus application form.
func (h *CampusHandler) Get(ctx *fiber.Ctx) error {
	campusID := ctx.Params("campusId")
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"campus_id": campusID,
		"name":      DisplayName(campusID),
	})
}
