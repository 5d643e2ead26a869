package models

// UserLoginRequest represents the request body for POST /api/users/login.
// Upsert mode reads id/email/fullName; action mode reads email/password/action.
type UserLoginRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Action   string `json:"action"`
}
