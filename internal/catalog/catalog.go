// Package catalog holds the fixed registry of canonical job-application
// questions. The data is loaded once at process start and never mutated;
// the onboarding UI builds its questionnaire from it and the matcher's
// keyword table is validated against it.
package catalog

import "fmt"

// Question is one canonical piece of user information we can collect
// during onboarding and fill into application forms.
type Question struct {
	Key      string   `json:"key"`
	Category string   `json:"category"`
	Prompt   string   `json:"question"`
	Type     string   `json:"type"` // text, email, tel, url, date, select, textarea
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// List returns all catalog questions in declaration order.
func List() []Question {
	return questions
}

// ByKey returns the question with the given key, or nil if unknown.
func ByKey(key string) *Question {
	for i := range questions {
		if questions[i].Key == key {
			return &questions[i]
		}
	}
	return nil
}

// ByCategory groups questions by category, preserving in-category order.
func ByCategory() map[string][]Question {
	grouped := make(map[string][]Question)
	for _, q := range questions {
		grouped[q.Category] = append(grouped[q.Category], q)
	}
	return grouped
}

// Validate checks that every key in keys resolves to a catalog question.
// The keyword table and the catalog are maintained separately; this runs
// at startup so drift between them fails fast instead of silently
// producing unmatchable suggestions.
func Validate(keys []string) error {
	for _, k := range keys {
		if ByKey(k) == nil {
			return fmt.Errorf("keyword table key %q has no catalog question", k)
		}
	}
	return nil
}
