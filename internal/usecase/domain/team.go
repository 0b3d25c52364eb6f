// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/validate"
)

// CreateTeam validates the name and stores a new team.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validate.TeamName(team.Name); err != nil {
		u.log.Errorw("failed to create team: invalid name", "error", err)
		return nil, err
	}
	return u.repo.CreateTeam(ctx, team)
}

// Team returns a team with members by id.
func (u *Usecase) Team(ctx context.Context, id int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetTeam(ctx, id)
}

// Teams returns all teams with members.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// UpdateTeam validates the provided fields and applies them.
func (u *Usecase) UpdateTeam(ctx context.Context, id int64, upd entities.TeamUpdate) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if upd.Name != nil {
		if err := validate.TeamName(*upd.Name); err != nil {
			return nil, err
		}
	}
	return u.repo.UpdateTeam(ctx, id, upd)
}

// DeleteTeam removes a team and discards its membership links.
func (u *Usecase) DeleteTeam(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteTeam(ctx, id)
}
