package entity

import "fmt"

// Role is the closed set of user roles. Officers create and maintain records;
// admins additionally delete records and manage accounts.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOfficer Role = "officer"
)

// ParseRole validates a role string. An empty value defaults to officer.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleOfficer:
		return Role(s), nil
	case "":
		return RoleOfficer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }
