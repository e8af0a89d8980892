package dto

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for simple successful requests.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is the body returned by the reset-flow mutations.
type SuccessResponse struct {
	Success bool `json:"success"`
}
