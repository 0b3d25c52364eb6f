// Package api defines the transport contract: DTOs, error codes and routes.
package api

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	// NOTFOUND marks an id that does not resolve.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// INVALID marks a field-level validation rejection.
	INVALID ErrorResponseErrorCode = "INVALID"
	// DUPLICATEEMAIL marks a person email conflict.
	DUPLICATEEMAIL ErrorResponseErrorCode = "DUPLICATE_EMAIL"
	// TEAMEXISTS marks a team name conflict.
	TEAMEXISTS ErrorResponseErrorCode = "TEAM_EXISTS"
	// ALREADYMEMBER marks an add for a person already in the team.
	ALREADYMEMBER ErrorResponseErrorCode = "ALREADY_MEMBER"
	// NOTAMEMBER marks a remove for a person not in the team.
	NOTAMEMBER ErrorResponseErrorCode = "NOT_A_MEMBER"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Person is the transport representation of a person record.
type Person struct {
	Id        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PersonInput carries person fields for create and update requests.
// Pointers distinguish "absent" from "empty" for partial updates.
type PersonInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Team is the transport representation of a team record. Members are
// read-only in output and mutated only through the membership endpoints.
type Team struct {
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []Person `json:"members"`
}

// TeamInput carries team fields for create and update requests.
type TeamInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TeamMemberRequest is the body of add_member/remove_member calls.
type TeamMemberRequest struct {
	PersonId int64 `json:"person_id"`
}

// RosterStats mirrors entities.RosterStats on the wire.
type RosterStats struct {
	Persons int64           `json:"persons"`
	Teams   int64           `json:"teams"`
	ByTeam  []TeamMemberCnt `json:"by_team"`
}

// TeamMemberCnt is the per-team member counter.
type TeamMemberCnt struct {
	TeamId    int64  `json:"team_id"`
	TeamName  string `json:"team_name"`
	MemberCnt int64  `json:"member_cnt"`
}
