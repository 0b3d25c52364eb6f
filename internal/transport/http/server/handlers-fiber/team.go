package handlers_fiber

import (
	"net/http"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/api"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

// ListTeams returns all teams with members.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamList(teams))
}

// CreateTeam stores a new team.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var body api.TeamInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromAPITeamInput(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// GetTeam returns a team with its members by id.
func (h *Handler) GetTeam(c *fiber.Ctx, id int64) error {
	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// UpdateTeam serves both PUT and PATCH, mirroring UpdatePerson semantics.
func (h *Handler) UpdateTeam(c *fiber.Ctx, id int64) error {
	var body api.TeamInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	upd := mapper.FromAPITeamUpdate(body)
	if c.Method() == fiber.MethodPut {
		empty := ""
		if upd.Name == nil {
			upd.Name = &empty
		}
		if upd.Description == nil {
			upd.Description = &empty
		}
	}

	team, err := h.uc.UpdateTeam(c.Context(), id, upd)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// DeleteTeam removes a team and discards its membership links.
func (h *Handler) DeleteTeam(c *fiber.Ctx, id int64) error {
	if err := h.uc.DeleteTeam(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
