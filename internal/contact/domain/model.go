package domain

// Package tiers offered on the landing page pricing section.
const (
	PackageBasic       = "basic"
	PackageRecommended = "recommended"
	PackagePremium     = "premium"
)

// PackageLabel returns the display label used in owner-alert emails.
func PackageLabel(pkg string) string {
	switch pkg {
	case PackageBasic:
		return "Basic"
	case PackageRecommended:
		return "Recommended"
	case PackagePremium:
		return "Premium"
	default:
		return "Not specified"
	}
}

// Submission is a single contact-form payload. Field names match the
// JSON the landing page frontend sends.
type Submission struct {
	FullName       string `json:"fullName" validate:"required,min=2,max=100,person_name"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,intl_phone"`
	ProjectPurpose string `json:"projectPurpose" validate:"required,min=10,max=1000"`
	AdditionalInfo string `json:"additionalInfo" validate:"omitempty,max=2000"`
	Package        string `json:"package" validate:"omitempty,oneof=basic recommended premium"`
	Budget         string `json:"budget" validate:"omitempty,max=100"`
	Timeline       string `json:"timeline" validate:"omitempty,max=100"`
}

// Accepted describes a submission that passed every guard stage.
type Accepted struct {
	// ID is the opaque token returned to the caller, "contact_<millis>".
	ID string
}
