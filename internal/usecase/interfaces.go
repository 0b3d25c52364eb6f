package usecase

import (
	"context"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
)

// PersonUsecaseInterface abstracts person-related operations for delivery layer.
type PersonUsecaseInterface interface {
	CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error)
	Person(ctx context.Context, id int64) (*entities.Person, error)
	Persons(ctx context.Context) ([]entities.Person, error)
	UpdatePerson(ctx context.Context, id int64, upd entities.PersonUpdate) (*entities.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, id int64) (*entities.Team, error)
	Teams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, id int64, upd entities.TeamUpdate) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// MembershipUsecaseInterface abstracts team-membership operations.
type MembershipUsecaseInterface interface {
	AddMember(ctx context.Context, teamID, personID int64) (*entities.Team, error)
	RemoveMember(ctx context.Context, teamID, personID int64) (*entities.Team, error)
}

// StatsUsecaseInterface abstracts roster statistics.
type StatsUsecaseInterface interface {
	RosterStats(ctx context.Context) (entities.RosterStats, error)
}
