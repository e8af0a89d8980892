package dto

// ValidateResetTokenReq represents the query parameters for the
// /auth/validate-reset-token endpoint.
type ValidateResetTokenReq struct {
	Token string `form:"token" binding:"required"`
}

// ValidateResetTokenRes reports whether a reset token is currently valid.
type ValidateResetTokenRes struct {
	Valid bool `json:"valid"`
}
