package models

// UserLoginResponse represents the response body for POST /api/users/login.
// ID/Email/FullName are only populated in upsert mode.
type UserLoginResponse struct {
	Message  string  `json:"message"`
	Success  bool    `json:"success"`
	ID       *string `json:"id"`
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
}

// Failure builds a business-failure response with the given message.
func Failure(message string) *UserLoginResponse {
	return &UserLoginResponse{
		Message: message,
		Success: false,
	}
}
