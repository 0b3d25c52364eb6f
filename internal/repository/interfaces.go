// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// PersonInterface exposes person-related operations.
type PersonInterface interface {
	CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error)
	GetPerson(ctx context.Context, id int64) (*entities.Person, error)
	ListPersons(ctx context.Context) ([]entities.Person, error)
	UpdatePerson(ctx context.Context, id int64, upd entities.PersonUpdate) (*entities.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, id int64) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, id int64, upd entities.TeamUpdate) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// MembershipInterface exposes team-membership operations. Membership is
// always resolved by person id against the relation table.
type MembershipInterface interface {
	AddTeamMember(ctx context.Context, teamID, personID int64) (*entities.Team, error)
	RemoveTeamMember(ctx context.Context, teamID, personID int64) (*entities.Team, error)
	TeamHasMember(ctx context.Context, teamID, personID int64) (bool, error)
}

// StatsInterface exposes aggregated roster statistics.
type StatsInterface interface {
	RosterStats(ctx context.Context) (entities.RosterStats, error)
}
