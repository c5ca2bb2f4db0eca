package domain

import "unicode/utf8"

// MinInstructionsLen is the minimum number of characters a recipe's
// instructions must contain.
const MinInstructionsLen = 50

// ValidationError reports a field that failed validation before persistence.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateUsername fails if the username is empty.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "must be present"}
	}
	return nil
}

// ValidatePassword fails if the password is empty.
func ValidatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Message: "must be present"}
	}
	return nil
}

// ValidateTitle fails if the title is empty.
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "must be present"}
	}
	return nil
}

// ValidateInstructions fails if the instructions are shorter than
// MinInstructionsLen characters. Length is counted in code points, not
// bytes, so multi-byte text is not penalised.
func ValidateInstructions(instructions string) error {
	if utf8.RuneCountInString(instructions) < MinInstructionsLen {
		return &ValidationError{Field: "instructions", Message: "must be at least 50 characters"}
	}
	return nil
}
