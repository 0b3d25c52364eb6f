package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/api"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorNotFoundMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrPersonNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.NOTFOUND, body.Error.Code)
	require.Equal(t, "resource not found", body.Error.Message)
}

func TestWriteErrorBadRequestConflicts(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected api.ErrorResponse
	}{
		{
			name: "duplicate_email",
			err:  entities.ErrDuplicateEmail,
			expected: api.ErrorResponse{Error: struct {
				Code    api.ErrorResponseErrorCode `json:"code"`
				Message string                     `json:"message"`
			}{Code: api.DUPLICATEEMAIL, Message: "email already registered"}},
		},
		{
			name: "team_exists",
			err:  entities.ErrTeamExists,
			expected: api.ErrorResponse{Error: struct {
				Code    api.ErrorResponseErrorCode `json:"code"`
				Message string                     `json:"message"`
			}{Code: api.TEAMEXISTS, Message: "team name already exists"}},
		},
		{
			name: "already_member",
			err:  entities.ErrAlreadyMember,
			expected: api.ErrorResponse{Error: struct {
				Code    api.ErrorResponseErrorCode `json:"code"`
				Message string                     `json:"message"`
			}{Code: api.ALREADYMEMBER, Message: "person is already a member of this team"}},
		},
		{
			name: "not_a_member",
			err:  entities.ErrNotAMember,
			expected: api.ErrorResponse{Error: struct {
				Code    api.ErrorResponseErrorCode `json:"code"`
				Message string                     `json:"message"`
			}{Code: api.NOTAMEMBER, Message: "person is not a member of this team"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.expected.Error.Code, body.Error.Code)
			require.Equal(t, tt.expected.Error.Message, body.Error.Message)
		})
	}
}

func TestWriteErrorInvalidArgument(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrInvalidArgument)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INVALID, body.Error.Code)
}
