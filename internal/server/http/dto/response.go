package dto

// ErrorResponse is the uniform failure envelope. Error is a short
// client-facing string; stack traces and secrets never appear here.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is the uniform success envelope for operations that return
// no data.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
