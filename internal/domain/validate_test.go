package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.Error(t, ValidateUsername(""))
	assert.NoError(t, ValidateUsername("ana"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("pw1"))
}

func TestValidateTitle(t *testing.T) {
	assert.Error(t, ValidateTitle(""))
	assert.NoError(t, ValidateTitle("Tortilla"))
}

func TestValidateInstructions_Boundary(t *testing.T) {
	assert.Error(t, ValidateInstructions(strings.Repeat("x", 49)))
	assert.NoError(t, ValidateInstructions(strings.Repeat("x", 50)))
}

func TestValidateInstructions_CountsRunesNotBytes(t *testing.T) {
	// 50 three-byte runes are 150 bytes but still exactly 50 characters.
	s := strings.Repeat("煮", 50)
	assert.NoError(t, ValidateInstructions(s))
	assert.Error(t, ValidateInstructions(strings.Repeat("煮", 49)))
}

func TestValidationError_Message(t *testing.T) {
	err := ValidateTitle("")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
}
