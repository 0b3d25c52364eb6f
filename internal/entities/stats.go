// Package entities contains core business entities.
package entities

// RosterStats aggregates counters across persons, teams and memberships.
type RosterStats struct {
	Persons int64           `json:"persons"`
	Teams   int64           `json:"teams"`
	ByTeam  []TeamMemberCnt `json:"by_team"`
}

// TeamMemberCnt contains the member count for a single team.
type TeamMemberCnt struct {
	TeamID    int64  `json:"team_id"`
	TeamName  string `json:"team_name"`
	MemberCnt int64  `json:"member_cnt"`
}
