package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertPersonQuery = `INSERT INTO persons(first_name, last_name, email) VALUES($1, $2, $3) RETURNING id`
	selectPersonQuery = `SELECT id, first_name, last_name, email FROM persons WHERE id=$1`
	listPersonsQuery  = `SELECT id, first_name, last_name, email FROM persons ORDER BY id`
	lockPersonQuery   = `SELECT id, first_name, last_name, email FROM persons WHERE id=$1 FOR UPDATE`
	updatePersonQuery = `UPDATE persons SET first_name=$2, last_name=$3, email=$4 WHERE id=$1`
	deletePersonQuery = `DELETE FROM persons WHERE id=$1`

	deleteMembershipsByPersonQuery = `DELETE FROM team_members WHERE person_id=$1`
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreatePerson inserts a person and returns the stored record.
func (p *Postgres) CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	err := p.db.QueryRow(ctx, insertPersonQuery, person.FirstName, person.LastName, person.Email).
		Scan(&person.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrDuplicateEmail
		}
		p.log.Errorw("failed to insert person", "error", err, "email", person.Email)
		return nil, fmt.Errorf("insert person: %w", err)
	}

	p.log.Infow("person created", "person_id", person.ID)
	return &person, nil
}

// GetPerson fetches a person by id.
func (p *Postgres) GetPerson(ctx context.Context, id int64) (*entities.Person, error) {
	var person entities.Person
	err := p.db.QueryRow(ctx, selectPersonQuery, id).
		Scan(&person.ID, &person.FirstName, &person.LastName, &person.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPersonNotFound
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return &person, nil
}

// ListPersons returns all persons ordered by id.
func (p *Postgres) ListPersons(ctx context.Context) ([]entities.Person, error) {
	rows, err := p.db.Query(ctx, listPersonsQuery)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	persons := make([]entities.Person, 0)
	for rows.Next() {
		var person entities.Person
		if err := rows.Scan(&person.ID, &person.FirstName, &person.LastName, &person.Email); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}

	return persons, nil
}

// UpdatePerson applies the provided fields under a row lock. Nil fields keep
// their current value, which serves both full and partial updates.
func (p *Postgres) UpdatePerson(ctx context.Context, id int64, upd entities.PersonUpdate) (*entities.Person, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var person entities.Person
	err = tx.QueryRow(ctx, lockPersonQuery, id).
		Scan(&person.ID, &person.FirstName, &person.LastName, &person.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPersonNotFound
		}
		return nil, fmt.Errorf("lock person: %w", err)
	}

	if upd.FirstName != nil {
		person.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		person.LastName = *upd.LastName
	}
	if upd.Email != nil {
		person.Email = *upd.Email
	}

	if _, err := tx.Exec(ctx, updatePersonQuery, person.ID, person.FirstName, person.LastName, person.Email); err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrDuplicateEmail
		}
		p.log.Errorw("failed to update person", "error", err, "person_id", id)
		return nil, fmt.Errorf("update person: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("person updated", "person_id", id)
	return &person, nil
}

// DeletePerson removes a person and its membership rows in one transaction.
func (p *Postgres) DeletePerson(ctx context.Context, id int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteMembershipsByPersonQuery, id); err != nil {
		return fmt.Errorf("delete person memberships: %w", err)
	}

	tag, err := tx.Exec(ctx, deletePersonQuery, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrPersonNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("person deleted", "person_id", id)
	return nil
}
