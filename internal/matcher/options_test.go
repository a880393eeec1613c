package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/jobfill-api/internal/model"
)

func TestProjectOption(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		options []string
		want    string
	}{
		{"exact", "Yes", []string{"Yes", "No"}, "Yes"},
		{"exact case-insensitive", "yes", []string{"Yes", "No"}, "Yes"},
		{"answer contains option", "Bachelor of Science", []string{"Bachelor", "Master"}, "Bachelor"},
		{"option contains answer", "Bachelor", []string{"Bachelor's Degree", "Master's Degree"}, "Bachelor's Degree"},
		{"boolean y", "Y", []string{"Yes", "No"}, "Yes"},
		{"boolean true", "true", []string{"Yes", "No"}, "Yes"},
		{"boolean 1", "1", []string{"Yes", "No"}, "Yes"},
		{"boolean false", "false", []string{"Yes", "No"}, "No"},
		{"boolean 0", "0", []string{"Yes", "No"}, "No"},
		{"boolean without yes option", "true", []string{"Authorized", "Not Authorized"}, ""},
		{"no fit", "Maybe later", []string{"Yes", "No"}, ""},
		{"no options", "Yes", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, projectOption(tt.answer, tt.options))
		})
	}
}

// A failed projection must not drop the field: the matcher falls back to
// the raw stored answer.
func TestProjectOptionFallbackIsCallerSide(t *testing.T) {
	m := New(map[string]string{"notice_period": "3 weeks"})

	res := m.MatchField(model.FormField{
		Label:   "Notice period",
		Type:    "select",
		Options: []string{"Immediately", "1 month", "2 months"},
	})
	assert.Equal(t, StatusMatched, res.Status)
	assert.Equal(t, "3 weeks", res.Value)
}
