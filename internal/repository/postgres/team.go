package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery = `INSERT INTO teams(name, description) VALUES($1, $2) RETURNING id`
	selectTeamQuery = `SELECT id, name, description FROM teams WHERE id=$1`
	listTeamsQuery  = `SELECT id, name, description FROM teams ORDER BY id`
	lockTeamQuery   = `SELECT id, name, description FROM teams WHERE id=$1 FOR UPDATE`
	updateTeamQuery = `UPDATE teams SET name=$2, description=$3 WHERE id=$1`
	deleteTeamQuery = `DELETE FROM teams WHERE id=$1`

	selectTeamMembersQuery = `
SELECT p.id, p.first_name, p.last_name, p.email
FROM team_members tm
JOIN persons p ON p.id = tm.person_id
WHERE tm.team_id = $1
ORDER BY p.id`
	deleteMembershipsByTeamQuery = `DELETE FROM team_members WHERE team_id=$1`
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (p *Postgres) teamMembers(ctx context.Context, q querier, teamID int64) ([]entities.Person, error) {
	rows, err := q.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Person, 0)
	for rows.Next() {
		var m entities.Person
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

// CreateTeam inserts a team. New teams start with no members.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	err := p.db.QueryRow(ctx, insertTeamQuery, team.Name, team.Description).Scan(&team.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrTeamExists
		}
		p.log.Errorw("failed to insert team", "error", err, "name", team.Name)
		return nil, fmt.Errorf("insert team: %w", err)
	}

	team.Members = make([]entities.Person, 0)
	p.log.Infow("team created", "team_id", team.ID, "name", team.Name)
	return &team, nil
}

// GetTeam fetches a team with its members by id.
func (p *Postgres) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	var team entities.Team
	err := p.db.QueryRow(ctx, selectTeamQuery, id).Scan(&team.ID, &team.Name, &team.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	members, err := p.teamMembers(ctx, p.db, id)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return &team, nil
}

// ListTeams returns all teams with their members.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var team entities.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Description); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		members, err := p.teamMembers(ctx, p.db, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}

	return teams, nil
}

// UpdateTeam applies the provided fields under a row lock.
func (p *Postgres) UpdateTeam(ctx context.Context, id int64, upd entities.TeamUpdate) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var team entities.Team
	err = tx.QueryRow(ctx, lockTeamQuery, id).Scan(&team.ID, &team.Name, &team.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("lock team: %w", err)
	}

	if upd.Name != nil {
		team.Name = *upd.Name
	}
	if upd.Description != nil {
		team.Description = *upd.Description
	}

	if _, err := tx.Exec(ctx, updateTeamQuery, team.ID, team.Name, team.Description); err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrTeamExists
		}
		p.log.Errorw("failed to update team", "error", err, "team_id", id)
		return nil, fmt.Errorf("update team: %w", err)
	}

	members, err := p.teamMembers(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team updated", "team_id", id)
	return &team, nil
}

// DeleteTeam removes a team and its membership rows, leaving persons intact.
func (p *Postgres) DeleteTeam(ctx context.Context, id int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteMembershipsByTeamQuery, id); err != nil {
		return fmt.Errorf("delete team memberships: %w", err)
	}

	tag, err := tx.Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("team deleted", "team_id", id)
	return nil
}
