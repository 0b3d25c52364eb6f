// Package entities contains core business entities.
package entities

// Person is a domain representation of a registered person.
type Person struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// FullName joins first and last name for display purposes.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PersonUpdate carries the mutable person fields. Nil means "keep current".
type PersonUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}
