// Package domain contains application Usecases orchestrating domain logic by person.
package domain

import (
	"context"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/validate"
)

// CreatePerson validates fields and stores a new person.
func (u *Usecase) CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.rules.Person(person.FirstName, person.LastName, person.Email); err != nil {
		u.log.Errorw("failed to create person: invalid fields", "error", err)
		return nil, err
	}
	return u.repo.CreatePerson(ctx, person)
}

// Person returns a person by id.
func (u *Usecase) Person(ctx context.Context, id int64) (*entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetPerson(ctx, id)
}

// Persons returns all persons.
func (u *Usecase) Persons(ctx context.Context) ([]entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListPersons(ctx)
}

// UpdatePerson validates the provided fields and applies them. Fields left
// nil are untouched, which covers both full and partial updates.
func (u *Usecase) UpdatePerson(ctx context.Context, id int64, upd entities.PersonUpdate) (*entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if upd.FirstName != nil {
		if err := u.rules.PersonName("first_name", *upd.FirstName); err != nil {
			return nil, err
		}
	}
	if upd.LastName != nil {
		if err := u.rules.PersonName("last_name", *upd.LastName); err != nil {
			return nil, err
		}
	}
	if upd.Email != nil {
		if err := validate.Email(*upd.Email); err != nil {
			return nil, err
		}
	}
	return u.repo.UpdatePerson(ctx, id, upd)
}

// DeletePerson removes a person together with its team memberships.
func (u *Usecase) DeletePerson(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeletePerson(ctx, id)
}
