// Package domain contains application Usecases orchestrating team membership.
package domain

import (
	"context"
	"fmt"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
)

// AddMember links a person to a team and returns the refreshed team.
// A repeated add fails with ErrAlreadyMember rather than silently passing.
func (u *Usecase) AddMember(ctx context.Context, teamID, personID int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if personID <= 0 {
		return nil, fmt.Errorf("%w: person_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.AddTeamMember(ctx, teamID, personID)
}

// RemoveMember unlinks a person from a team and returns the refreshed team.
func (u *Usecase) RemoveMember(ctx context.Context, teamID, personID int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if personID <= 0 {
		return nil, fmt.Errorf("%w: person_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveTeamMember(ctx, teamID, personID)
}
