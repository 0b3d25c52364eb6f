// Package validate contains pure field-level validation rules.
package validate

import (
	"fmt"
	"net/mail"
	"unicode"
	"unicode/utf8"

	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
)

const (
	maxNameLen     = 50
	maxEmailLen    = 254
	minTeamNameLen = 3
	maxTeamNameLen = 100
)

// Rules holds the configured name alphabet. Names accept any Unicode letter,
// which keeps the check locale-independent, plus the configured extra runes.
type Rules struct {
	extra map[rune]struct{}
}

// NewRules builds validation rules with extra runes allowed in names.
func NewRules(extraNameLetters string) Rules {
	extra := make(map[rune]struct{}, len(extraNameLetters))
	for _, r := range extraNameLetters {
		extra[r] = struct{}{}
	}
	return Rules{extra: extra}
}

// Person checks all person fields. Uniqueness of the email is a store
// concern and is not checked here.
func (r Rules) Person(firstName, lastName, email string) error {
	if err := r.PersonName("first_name", firstName); err != nil {
		return err
	}
	if err := r.PersonName("last_name", lastName); err != nil {
		return err
	}
	return Email(email)
}

// PersonName checks a single name field against the configured alphabet.
func (r Rules) PersonName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", entities.ErrInvalidArgument, field)
	}
	if utf8.RuneCountInString(value) > maxNameLen {
		return fmt.Errorf("%w: %s exceeds %d characters", entities.ErrInvalidArgument, field, maxNameLen)
	}
	for _, c := range value {
		if unicode.IsLetter(c) {
			continue
		}
		if _, ok := r.extra[c]; ok {
			continue
		}
		return fmt.Errorf("%w: %s contains invalid character %q", entities.ErrInvalidArgument, field, c)
	}
	return nil
}

// Email checks the address syntax. mail.ParseAddress also accepts the
// "Name <addr>" form, so the parsed address must round-trip unchanged.
func Email(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if len(email) > maxEmailLen {
		return fmt.Errorf("%w: email exceeds %d characters", entities.ErrInvalidArgument, maxEmailLen)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: email is not a valid address", entities.ErrInvalidArgument)
	}
	return nil
}

// TeamName checks the team name length bounds.
func TeamName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < minTeamNameLen {
		return fmt.Errorf("%w: name must be at least %d characters", entities.ErrInvalidArgument, minTeamNameLen)
	}
	if n > maxTeamNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", entities.ErrInvalidArgument, maxTeamNameLen)
	}
	return nil
}
