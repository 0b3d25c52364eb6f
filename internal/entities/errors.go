// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrPersonNotFound is returned when a person id does not resolve.
	ErrPersonNotFound = errors.New("person not found")
	// ErrTeamNotFound is returned when a team id does not resolve.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateEmail signals person email conflict.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrAlreadyMember signals the person is already in the team.
	ErrAlreadyMember = errors.New("already a member")
	// ErrNotAMember signals the person is not in the team.
	ErrNotAMember = errors.New("not a member")
)
