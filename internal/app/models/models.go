package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin  RoleType = "ADMIN"
	RoleCoach  RoleType = "COACH"
	RoleClient RoleType = "CLIENT"
)

// IsValid reports whether the role is one of the known marketplace roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleClient:
		return true
	}
	return false
}
