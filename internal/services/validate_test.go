package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"ok", "secret1!", true},
		{"ok long", "Another$Password9", true},
		{"too short", "short1!", false},
		{"no digit", "password!", false},
		{"no letter", "12345678!", false},
		{"no special", "password1", false},
		{"wrong special", "password1#", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("  user.name+tag@sub.example.org  "))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+37360123456"))
	assert.True(t, ValidPhone("(022) 123-456"))
	assert.False(t, ValidPhone("abc"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone(""))
}

func TestNormalizeRequired(t *testing.T) {
	value, err := NormalizeRequired("  hello  ", "Name is required")
	assert.NoError(t, err)
	assert.Equal(t, "hello", value)

	_, err = NormalizeRequired("   ", "Name is required")
	assert.EqualError(t, err, "Name is required")
}
