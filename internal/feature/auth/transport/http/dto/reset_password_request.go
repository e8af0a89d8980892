package dto

// ResetPasswordReq represents the request body for the /auth/reset-password endpoint.
// The password length policy is also enforced by the usecase; the binding tag
// rejects obviously short secrets before they reach it.
type ResetPasswordReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
