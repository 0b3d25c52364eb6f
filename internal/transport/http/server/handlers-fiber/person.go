package handlers_fiber

import (
	"net/http"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/api"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

// ListPersons returns all persons.
func (h *Handler) ListPersons(c *fiber.Ctx) error {
	persons, err := h.uc.Persons(c.Context())
	if err != nil {
		h.log.Errorw("failed to list persons", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPersonList(persons))
}

// CreatePerson stores a new person.
func (h *Handler) CreatePerson(c *fiber.Ctx) error {
	var body api.PersonInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	person, err := h.uc.CreatePerson(c.Context(), mapper.FromAPIPersonInput(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIPerson(*person))
}

// GetPerson returns a single person by id.
func (h *Handler) GetPerson(c *fiber.Ctx, id int64) error {
	person, err := h.uc.Person(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPerson(*person))
}

// UpdatePerson serves both PUT and PATCH. PUT replaces the whole record, so
// absent fields become empty and fail validation; PATCH touches only the
// fields present in the body.
func (h *Handler) UpdatePerson(c *fiber.Ctx, id int64) error {
	var body api.PersonInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	upd := mapper.FromAPIPersonUpdate(body)
	if c.Method() == fiber.MethodPut {
		empty := ""
		if upd.FirstName == nil {
			upd.FirstName = &empty
		}
		if upd.LastName == nil {
			upd.LastName = &empty
		}
		if upd.Email == nil {
			upd.Email = &empty
		}
	}

	person, err := h.uc.UpdatePerson(c.Context(), id, upd)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPerson(*person))
}

// DeletePerson removes a person and its memberships.
func (h *Handler) DeletePerson(c *fiber.Ctx, id int64) error {
	if err := h.uc.DeletePerson(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
