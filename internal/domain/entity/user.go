package entity

import "time"

// User is a system account. Usernames are stored case-folded and trimmed;
// the password only ever exists here as a bcrypt hash.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
