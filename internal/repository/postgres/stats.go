package postgres

import (
	"context"
	"fmt"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
)

const (
	totalsQuery = `SELECT (SELECT COUNT(*) FROM persons), (SELECT COUNT(*) FROM teams)`

	membersByTeamQuery = `
SELECT t.id, t.name, COUNT(tm.person_id)
FROM teams t
LEFT JOIN team_members tm ON tm.team_id = t.id
GROUP BY t.id, t.name
ORDER BY t.id`
)

// RosterStats aggregates person, team and per-team member counters.
func (p *Postgres) RosterStats(ctx context.Context) (entities.RosterStats, error) {
	var stats entities.RosterStats

	if err := p.db.QueryRow(ctx, totalsQuery).Scan(&stats.Persons, &stats.Teams); err != nil {
		return stats, fmt.Errorf("count totals: %w", err)
	}

	rows, err := p.db.Query(ctx, membersByTeamQuery)
	if err != nil {
		return stats, fmt.Errorf("count members by team: %w", err)
	}
	defer rows.Close()

	stats.ByTeam = make([]entities.TeamMemberCnt, 0)
	for rows.Next() {
		var s entities.TeamMemberCnt
		if err := rows.Scan(&s.TeamID, &s.TeamName, &s.MemberCnt); err != nil {
			return stats, fmt.Errorf("scan team counter: %w", err)
		}
		stats.ByTeam = append(stats.ByTeam, s)
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("iterate team counters: %w", err)
	}

	return stats, nil
}
