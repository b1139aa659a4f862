package http

import "github.com/weblior/contact-api/internal/contact/domain"

// SubmitResponse is returned for an accepted submission.
type SubmitResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ErrorResponse is the body for every rejected or failed request.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// ProbeResponse is the fixed GET /api/contact health answer.
type ProbeResponse struct {
	Message string `json:"message"`
}

// Stable externally visible messages. Clients match on these.
const (
	MsgSubmitted     = "Form submitted successfully"
	MsgInvalidJSON   = "Invalid JSON format"
	MsgValidation    = "Validation failed"
	MsgSpam          = "Message flagged as spam."
	MsgRateLimited   = "Too many requests. Please try again later."
	MsgInternalError = "Internal server error"
	MsgProbe         = "Contact API endpoint is working"
)
