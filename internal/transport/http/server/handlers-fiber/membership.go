package handlers_fiber

import (
	"net/http"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/api"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

// AddTeamMember links a person to a team.
func (h *Handler) AddTeamMember(c *fiber.Ctx, teamID int64) error {
	var body api.TeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	team, err := h.uc.AddMember(c.Context(), teamID, body.PersonId)
	if err != nil {
		h.log.Infow("add member rejected", "team_id", teamID, "person_id", body.PersonId, "reason", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// RemoveTeamMember unlinks a person from a team.
func (h *Handler) RemoveTeamMember(c *fiber.Ctx, teamID int64) error {
	var body api.TeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	team, err := h.uc.RemoveMember(c.Context(), teamID, body.PersonId)
	if err != nil {
		h.log.Infow("remove member rejected", "team_id", teamID, "person_id", body.PersonId, "reason", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}
