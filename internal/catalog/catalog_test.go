package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/jobfill-api/internal/matcher"
)

func TestByKey(t *testing.T) {
	q := ByKey("email")
	require.NotNil(t, q)
	assert.Equal(t, CategoryPersonal, q.Category)
	assert.Equal(t, "email", q.Type)
	assert.True(t, q.Required)

	assert.Nil(t, ByKey("no_such_question"))
}

func TestListHasUniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range List() {
		assert.False(t, seen[q.Key], "duplicate catalog key %q", q.Key)
		seen[q.Key] = true

		assert.NotEmpty(t, q.Category, "question %q has no category", q.Key)
		assert.NotEmpty(t, q.Prompt, "question %q has no prompt", q.Key)
		if q.Type == "select" {
			assert.NotEmpty(t, q.Options, "select question %q has no options", q.Key)
		}
	}
}

func TestByCategoryCoversAllQuestions(t *testing.T) {
	grouped := ByCategory()

	total := 0
	for _, qs := range grouped {
		total += len(qs)
	}
	assert.Equal(t, len(List()), total)

	personal := grouped[CategoryPersonal]
	require.NotEmpty(t, personal)
	assert.Equal(t, "first_name", personal[0].Key)
}

// Every key the keyword table can produce must resolve to a catalog
// question, otherwise autofill would suggest questions the onboarding
// flow can't ask.
func TestKeywordTableConsistency(t *testing.T) {
	assert.NoError(t, Validate(matcher.TableKeys()))
}

func TestValidateRejectsUnknownKey(t *testing.T) {
	assert.Error(t, Validate([]string{"email", "not_in_catalog"}))
}
