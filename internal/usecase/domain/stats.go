// Package domain contains application Usecases orchestrating roster statistics.
package domain

import (
	"context"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
)

// RosterStats returns aggregated person/team/membership counters.
func (u *Usecase) RosterStats(ctx context.Context) (entities.RosterStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.RosterStats(ctx)
}
