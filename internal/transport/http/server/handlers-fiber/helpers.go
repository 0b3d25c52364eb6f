package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/api"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
	"github.com/gofiber/fiber/v2"
)

// writeError is the single translator from domain errors to transport
// status codes and bodies.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.NOTFOUND
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALID
		msg = err.Error()
	case errors.Is(err, entities.ErrPersonNotFound), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrDuplicateEmail):
		status = http.StatusBadRequest
		code = api.DUPLICATEEMAIL
		msg = "email already registered"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusBadRequest
		code = api.TEAMEXISTS
		msg = "team name already exists"
	case errors.Is(err, entities.ErrAlreadyMember):
		status = http.StatusBadRequest
		code = api.ALREADYMEMBER
		msg = "person is already a member of this team"
	case errors.Is(err, entities.ErrNotAMember):
		status = http.StatusBadRequest
		code = api.NOTAMEMBER
		msg = "person is not a member of this team"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALID, "invalid body"))
}
