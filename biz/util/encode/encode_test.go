package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePassword(t *testing.T) {
	h1 := EncodePassword("salt", "password")
	h2 := EncodePassword("salt", "password")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	assert.NotEqual(t, h1, EncodePassword("other_salt", "password"))
	assert.NotEqual(t, h1, EncodePassword("salt", "other_password"))
}
