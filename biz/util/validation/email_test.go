package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator_IsValid(t *testing.T) {
	v := NewEmailValidator()

	valid := []string{
		"a@mail.com",
		"first.last@example.org",
		"user+tag@sub.domain.io",
	}
	for _, email := range valid {
		assert.True(t, v.IsValid(email), "expected valid: %s", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"missing-at.example.com",
		"user@",
	}
	for _, email := range invalid {
		assert.False(t, v.IsValid(email), "expected invalid: %s", email)
	}
}
