package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	personExistsQuery = `SELECT EXISTS(SELECT 1 FROM persons WHERE id=$1)`
	hasMemberQuery    = `SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id=$1 AND person_id=$2)`
	insertMemberQuery = `INSERT INTO team_members(team_id, person_id) VALUES($1, $2)`
	deleteMemberQuery = `DELETE FROM team_members WHERE team_id=$1 AND person_id=$2`
)

// AddTeamMember links a person to a team. The team row is locked for the
// whole check-then-insert sequence so concurrent adds on the same team
// serialize; the composite primary key backstops the uniqueness invariant.
func (p *Postgres) AddTeamMember(ctx context.Context, teamID, personID int64) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team, err := p.lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}
	if err := p.checkPersonExists(ctx, tx, personID); err != nil {
		return nil, err
	}

	var isMember bool
	if err := tx.QueryRow(ctx, hasMemberQuery, teamID, personID).Scan(&isMember); err != nil {
		return nil, fmt.Errorf("membership check: %w", err)
	}
	if isMember {
		return nil, entities.ErrAlreadyMember
	}

	if _, err := tx.Exec(ctx, insertMemberQuery, teamID, personID); err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrAlreadyMember
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	members, err := p.teamMembers(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("member added", "team_id", teamID, "person_id", personID)
	return team, nil
}

// RemoveTeamMember unlinks a person from a team under the same locking
// discipline as AddTeamMember.
func (p *Postgres) RemoveTeamMember(ctx context.Context, teamID, personID int64) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team, err := p.lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}
	if err := p.checkPersonExists(ctx, tx, personID); err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, deleteMemberQuery, teamID, personID)
	if err != nil {
		return nil, fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrNotAMember
	}

	members, err := p.teamMembers(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("member removed", "team_id", teamID, "person_id", personID)
	return team, nil
}

// TeamHasMember reports membership by id against the relation table.
func (p *Postgres) TeamHasMember(ctx context.Context, teamID, personID int64) (bool, error) {
	var isMember bool
	if err := p.db.QueryRow(ctx, hasMemberQuery, teamID, personID).Scan(&isMember); err != nil {
		return false, fmt.Errorf("membership check: %w", err)
	}
	return isMember, nil
}

func (p *Postgres) lockTeam(ctx context.Context, tx pgx.Tx, teamID int64) (*entities.Team, error) {
	var team entities.Team
	err := tx.QueryRow(ctx, lockTeamQuery, teamID).Scan(&team.ID, &team.Name, &team.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("lock team: %w", err)
	}
	return &team, nil
}

func (p *Postgres) checkPersonExists(ctx context.Context, tx pgx.Tx, personID int64) error {
	var exists bool
	if err := tx.QueryRow(ctx, personExistsQuery, personID).Scan(&exists); err != nil {
		return fmt.Errorf("person lookup: %w", err)
	}
	if !exists {
		return entities.ErrPersonNotFound
	}
	return nil
}
