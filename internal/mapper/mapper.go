// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/api"
	"github.com/3o45d/WHT-Teams-Persons-RESTAPI/internal/entities"
)

// ToAPIPerson maps entities.Person to transport model.
func ToAPIPerson(p entities.Person) api.Person {
	return api.Person{
		Id:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

// ToAPIPersonList maps a slice of entities.Person to transport slice.
func ToAPIPersonList(list []entities.Person) []api.Person {
	res := make([]api.Person, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIPerson(p))
	}
	return res
}

// FromAPIPersonInput builds an entities.Person from a full create payload.
// Absent fields map to empty strings and fail validation downstream.
func FromAPIPersonInput(src api.PersonInput) entities.Person {
	var p entities.Person
	if src.FirstName != nil {
		p.FirstName = *src.FirstName
	}
	if src.LastName != nil {
		p.LastName = *src.LastName
	}
	if src.Email != nil {
		p.Email = *src.Email
	}
	return p
}

// FromAPIPersonUpdate builds the pointer-field update from a payload.
func FromAPIPersonUpdate(src api.PersonInput) entities.PersonUpdate {
	return entities.PersonUpdate{
		FirstName: src.FirstName,
		LastName:  src.LastName,
		Email:     src.Email,
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(team entities.Team) api.Team {
	return api.Team{
		Id:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Members:     ToAPIPersonList(team.Members),
	}
}

// ToAPITeamList maps a slice of entities.Team to transport slice.
func ToAPITeamList(list []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// FromAPITeamInput builds an entities.Team from a full create payload.
func FromAPITeamInput(src api.TeamInput) entities.Team {
	var t entities.Team
	if src.Name != nil {
		t.Name = *src.Name
	}
	if src.Description != nil {
		t.Description = *src.Description
	}
	return t
}

// FromAPITeamUpdate builds the pointer-field update from a payload.
func FromAPITeamUpdate(src api.TeamInput) entities.TeamUpdate {
	return entities.TeamUpdate{
		Name:        src.Name,
		Description: src.Description,
	}
}

// ToAPIStats maps aggregated roster statistics to transport model.
func ToAPIStats(src entities.RosterStats) api.RosterStats {
	byTeam := make([]api.TeamMemberCnt, 0, len(src.ByTeam))
	for _, s := range src.ByTeam {
		byTeam = append(byTeam, api.TeamMemberCnt{
			TeamId:    s.TeamID,
			TeamName:  s.TeamName,
			MemberCnt: s.MemberCnt,
		})
	}

	return api.RosterStats{
		Persons: src.Persons,
		Teams:   src.Teams,
		ByTeam:  byTeam,
	}
}
