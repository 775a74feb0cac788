package dto

import "time"

// RegisterRequest registration input. AdminCode is only consulted when
// Role is "admin".
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	AdminCode string `json:"adminCode"`
}

// LoginRequest login input.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse issued on successful register/login: public profile plus the
// signed session token.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// UserResponse public account fields (never the password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse paginated account listing.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Total int            `json:"total"`
}

// DeletedUser identifies the removed account in a delete confirmation.
type DeletedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// DeleteUserResponse confirmation for account deletion.
type DeleteUserResponse struct {
	Message     string      `json:"message"`
	DeletedUser DeletedUser `json:"deletedUser"`
}

// PromoteResponse confirmation for a promotion to admin.
type PromoteResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
