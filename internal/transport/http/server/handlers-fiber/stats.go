package handlers_fiber

import (
	"net/http"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

// GetStats returns aggregated roster counters.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.RosterStats(c.Context())
	if err != nil {
		h.log.Errorw("failed to get roster stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIStats(stats))
}
