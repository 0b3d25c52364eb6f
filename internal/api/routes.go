package api

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface lists the handlers the route table binds. Path ids are
// parsed here so handlers only see resolved int64 ids.
type ServerInterface interface {
	ListPersons(c *fiber.Ctx) error
	CreatePerson(c *fiber.Ctx) error
	GetPerson(c *fiber.Ctx, id int64) error
	UpdatePerson(c *fiber.Ctx, id int64) error
	DeletePerson(c *fiber.Ctx, id int64) error

	ListTeams(c *fiber.Ctx) error
	CreateTeam(c *fiber.Ctx) error
	GetTeam(c *fiber.Ctx, id int64) error
	UpdateTeam(c *fiber.Ctx, id int64) error
	DeleteTeam(c *fiber.Ctx, id int64) error

	AddTeamMember(c *fiber.Ctx, teamID int64) error
	RemoveTeamMember(c *fiber.Ctx, teamID int64) error

	GetStats(c *fiber.Ctx) error
}

// RegisterHandlers wires the explicit route table under /api/v1 plus the
// documentation endpoints.
func RegisterHandlers(app *fiber.App, si ServerInterface) {
	v1 := app.Group("/api/v1")

	v1.Get("/persons", si.ListPersons)
	v1.Post("/persons", si.CreatePerson)
	v1.Get("/persons/:id", withID(si.GetPerson))
	v1.Put("/persons/:id", withID(si.UpdatePerson))
	v1.Patch("/persons/:id", withID(si.UpdatePerson))
	v1.Delete("/persons/:id", withID(si.DeletePerson))

	v1.Get("/teams", si.ListTeams)
	v1.Post("/teams", si.CreateTeam)
	v1.Get("/teams/:id", withID(si.GetTeam))
	v1.Put("/teams/:id", withID(si.UpdateTeam))
	v1.Patch("/teams/:id", withID(si.UpdateTeam))
	v1.Delete("/teams/:id", withID(si.DeleteTeam))

	v1.Post("/teams/:id/add_member", withID(si.AddTeamMember))
	v1.Post("/teams/:id/remove_member", withID(si.RemoveTeamMember))

	v1.Get("/stats", si.GetStats)

	RegisterDocs(app)
}

// withID parses the :id path segment. A non-numeric id cannot resolve to a
// record, so it reports not found rather than a validation error.
func withID(h func(c *fiber.Ctx, id int64) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			resp := ErrorResponse{}
			resp.Error.Code = NOTFOUND
			resp.Error.Message = "resource not found"
			return c.Status(http.StatusNotFound).JSON(resp)
		}
		return h(c, id)
	}
}
