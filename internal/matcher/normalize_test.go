package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Full Name", "full name"},
		{"strips punctuation", "E-mail Address:", "e mail address"},
		{"collapses whitespace", "  first \t name \n ", "first name"},
		{"keeps digits", "Are you 18+?", "are you 18"},
		{"only punctuation", "!!--??", ""},
		{"mixed", "What's your LinkedIn URL? (optional)", "what s your linkedin url optional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Full Name", "E-MAIL!!", "  a   b\tc  ", "Why do you want this role?",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", in)
	}
}
