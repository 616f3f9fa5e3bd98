package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Colombo Hub", want: "Colombo Hub"},
		{name: "newlines", input: "12 Main St\nKandy", want: "12 Main St Kandy"},
		{name: "escape sequence", input: "\x1b[31mred", want: "[31mred"},
		{name: "surrounding space", input: "  In Transit ", want: "In Transit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCell(tt.input))
		})
	}
}

func TestSanitizeUsernameKeepsInnerText(t *testing.T) {
	assert.Equal(t, "driver01", SanitizeUsername("  driver01\x00 "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 2))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
}

func TestValidateStructNotBlank(t *testing.T) {
	type form struct {
		Name string `validate:"required,notblank"`
	}

	assert.NoError(t, ValidateStruct(&form{Name: "x"}))
	assert.Error(t, ValidateStruct(&form{Name: "   "}))
	assert.Error(t, ValidateStruct(&form{}))
}
