package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/api"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Person), args.Error(1)
}

func (m *ucMock) Person(ctx context.Context, id int64) (*entities.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Person), args.Error(1)
}

func (m *ucMock) Persons(ctx context.Context) ([]entities.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Person), args.Error(1)
}

func (m *ucMock) UpdatePerson(ctx context.Context, id int64, upd entities.PersonUpdate) (*entities.Person, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Person), args.Error(1)
}

func (m *ucMock) DeletePerson(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ucMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *ucMock) Team(ctx context.Context, id int64) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *ucMock) Teams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *ucMock) UpdateTeam(ctx context.Context, id int64, upd entities.TeamUpdate) (*entities.Team, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *ucMock) DeleteTeam(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ucMock) AddMember(ctx context.Context, teamID, personID int64) (*entities.Team, error) {
	args := m.Called(ctx, teamID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *ucMock) RemoveMember(ctx context.Context, teamID, personID int64) (*entities.Team, error) {
	args := m.Called(ctx, teamID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *ucMock) RosterStats(ctx context.Context) (entities.RosterStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.RosterStats{}, args.Error(1)
	}
	return args.Get(0).(entities.RosterStats), args.Error(1)
}

func newTestApp(uc usecase.InterfaceUsecase) *fiber.App {
	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func jsonReq(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestCreatePersonReturnsCreated(t *testing.T) {
	uc := &ucMock{}
	created := &entities.Person{ID: 1, FirstName: "Andrii", LastName: "Shevchenko", Email: "a@example.com"}
	uc.On("CreatePerson", mock.Anything, mock.MatchedBy(func(p entities.Person) bool {
		return p.FirstName == "Andrii" && p.Email == "a@example.com"
	})).Return(created, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/api/v1/persons/", map[string]string{
		"first_name": "Andrii",
		"last_name":  "Shevchenko",
		"email":      "a@example.com",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.Person
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, int64(1), got.Id)
	require.Equal(t, "a@example.com", got.Email)
	uc.AssertExpectations(t)
}

func TestGetPersonNotFound(t *testing.T) {
	uc := &ucMock{}
	uc.On("Person", mock.Anything, int64(1000)).Return(nil, entities.ErrPersonNotFound)

	app := newTestApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/persons/1000/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPersonNonNumericIDNotFound(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/persons/abc/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	uc.AssertNotCalled(t, "Person", mock.Anything, mock.Anything)
}

func TestUpdatePersonPutSendsAllFields(t *testing.T) {
	uc := &ucMock{}
	updated := &entities.Person{ID: 1, FirstName: "Andrii", LastName: "Shevchenko", Email: "a@example.com"}
	uc.On("UpdatePerson", mock.Anything, int64(1), mock.MatchedBy(func(upd entities.PersonUpdate) bool {
		// PUT fills absent fields with empty strings
		return upd.FirstName != nil && upd.LastName != nil && upd.Email != nil && *upd.LastName == ""
	})).Return(updated, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonReq(t, http.MethodPut, "/api/v1/persons/1/", map[string]string{
		"first_name": "Andrii",
		"email":      "a@example.com",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestUpdatePersonPatchSendsOnlyProvided(t *testing.T) {
	uc := &ucMock{}
	updated := &entities.Person{ID: 1, FirstName: "Andrii", LastName: "Kit", Email: "a@example.com"}
	uc.On("UpdatePerson", mock.Anything, int64(1), mock.MatchedBy(func(upd entities.PersonUpdate) bool {
		return upd.FirstName == nil && upd.Email == nil && upd.LastName != nil && *upd.LastName == "Kit"
	})).Return(updated, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonReq(t, http.MethodPatch, "/api/v1/persons/1/", map[string]string{
		"last_name": "Kit",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestDeletePersonNoContent(t *testing.T) {
	uc := &ucMock{}
	uc.On("DeletePerson", mock.Anything, int64(1)).Return(nil)

	app := newTestApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/persons/1/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestCreateTeamDuplicateName(t *testing.T) {
	uc := &ucMock{}
	uc.On("CreateTeam", mock.Anything, mock.Anything).Return(nil, entities.ErrTeamExists)

	app := newTestApp(uc)
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/api/v1/teams/", map[string]string{"name": "Dev"}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.TEAMEXISTS, body.Error.Code)
}

func TestAddMemberFlow(t *testing.T) {
	uc := &ucMock{}
	member := entities.Person{ID: 7, FirstName: "Andrii", LastName: "Shevchenko", Email: "a@example.com"}
	team := &entities.Team{ID: 1, Name: "Dev", Members: []entities.Person{member}}

	uc.On("AddMember", mock.Anything, int64(1), int64(7)).Return(team, nil).Once()
	uc.On("AddMember", mock.Anything, int64(1), int64(7)).Return(nil, entities.ErrAlreadyMember).Once()

	app := newTestApp(uc)

	resp, err := app.Test(jsonReq(t, http.MethodPost, "/api/v1/teams/1/add_member/", api.TeamMemberRequest{PersonId: 7}))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.Team
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Members, 1)
	require.Equal(t, int64(7), got.Members[0].Id)

	resp2, err := app.Test(jsonReq(t, http.MethodPost, "/api/v1/teams/1/add_member/", api.TeamMemberRequest{PersonId: 7}))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp2.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	require.Equal(t, api.ALREADYMEMBER, body.Error.Code)
	uc.AssertExpectations(t)
}

func TestRemoveMemberNotAMember(t *testing.T) {
	uc := &ucMock{}
	uc.On("RemoveMember", mock.Anything, int64(1), int64(7)).Return(nil, entities.ErrNotAMember)

	app := newTestApp(uc)
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/api/v1/teams/1/remove_member/", api.TeamMemberRequest{PersonId: 7}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.NOTAMEMBER, body.Error.Code)
}

func TestAddMemberTeamNotFound(t *testing.T) {
	uc := &ucMock{}
	uc.On("AddMember", mock.Anything, int64(99), int64(7)).Return(nil, entities.ErrTeamNotFound)

	app := newTestApp(uc)
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/api/v1/teams/99/add_member/", api.TeamMemberRequest{PersonId: 7}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetStats(t *testing.T) {
	uc := &ucMock{}
	uc.On("RosterStats", mock.Anything).Return(entities.RosterStats{
		Persons: 3,
		Teams:   1,
		ByTeam:  []entities.TeamMemberCnt{{TeamID: 1, TeamName: "Dev", MemberCnt: 2}},
	}, nil)

	app := newTestApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.RosterStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, int64(3), got.Persons)
	require.Len(t, got.ByTeam, 1)
	require.Equal(t, int64(2), got.ByTeam[0].MemberCnt)
}

func TestDocsServed(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/yaml", resp.Header.Get(fiber.HeaderContentType))
}
