package domain

import "fmt"

// RejectionKind classifies why the pipeline refused a submission.
type RejectionKind string

const (
	KindRateLimited      RejectionKind = "rate_limited"
	KindBadRequest       RejectionKind = "bad_request"
	KindValidationFailed RejectionKind = "validation_failed"
	KindSpamDetected     RejectionKind = "spam_detected"
)

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rejection is the error returned for every expected, client-caused
// refusal. Anything else escaping the pipeline is a server-side defect.
type Rejection struct {
	Kind RejectionKind

	// Details carries one entry per violated field for
	// KindValidationFailed, nil otherwise.
	Details []FieldError
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("submission rejected: %s", r.Kind)
}

func NewRejection(kind RejectionKind) *Rejection {
	return &Rejection{Kind: kind}
}

func NewValidationRejection(details []FieldError) *Rejection {
	return &Rejection{Kind: KindValidationFailed, Details: details}
}
