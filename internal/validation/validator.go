package validation

import (
	"strings"

	"vocab-drills/internal/domain"
	"vocab-drills/internal/util"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID checks the session path parameter.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateSelectRequest checks a session id together with the chosen letter.
func (v *Validator) ValidateSelectRequest(sessionID, letter string) domain.ValidationErrors {
	errors := v.ValidateSessionID(sessionID)

	if strings.TrimSpace(letter) == "" {
		errors = append(errors, domain.NewMissingFieldError("letter"))
	} else if !isValidLetter(letter) {
		errors = append(errors, domain.NewInvalidFormatError("letter", letter))
	}

	return errors
}

// isValidLetter accepts the answer letters a drill question can offer.
func isValidLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'D'
}
