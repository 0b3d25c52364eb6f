// Package entities contains core business entities.
package entities

// Team aggregates members under a unique team name.
type Team struct {
	ID          int64
	Name        string
	Description string
	Members     []Person
}

// TeamUpdate carries the mutable team fields. Nil means "keep current".
type TeamUpdate struct {
	Name        *string
	Description *string
}
