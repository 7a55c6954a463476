package dto

// MessageResponse is the body shape for every non-validation error and for
// plain confirmations: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// InternalErrorResponse carries a diagnostic detail alongside the message.
// Detail is only populated outside production.
type InternalErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
