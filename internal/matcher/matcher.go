// Package matcher implements the deterministic field-matching engine:
// given a scraped form field and a snapshot of a user's stored answers,
// it decides whether the field needs generated prose, which canonical
// question it asks, and how to fit the stored answer to the field's
// input constraints. Pure substring/keyword matching, no NLP.
package matcher

import (
	"strings"

	"github.com/yourusername/jobfill-api/internal/model"
)

// MatchStatus tags a MatchResult.
type MatchStatus string

const (
	StatusMatched   MatchStatus = "matched"
	StatusUnmatched MatchStatus = "unmatched"
)

// MatchResult is the outcome of matching one field. For unmatched fields
// SuggestedKey distinguishes "we recognized the question but have no
// answer on file" (set) from "we don't know what this field is" (nil).
type MatchResult struct {
	Status       MatchStatus
	Value        string
	SuggestedKey *string
}

// normalizedTable is keywordTable with every keyword pre-normalized, so
// keywords with punctuation ("e-mail", "linkedin.com", "full-time") compare
// on the same footing as the normalized search text.
var normalizedTable = func() []keywordEntry {
	out := make([]keywordEntry, len(keywordTable))
	for i, e := range keywordTable {
		kws := make([]string, len(e.keywords))
		for j, kw := range e.keywords {
			kws[j] = Normalize(kw)
		}
		out[i] = keywordEntry{key: e.key, keywords: kws}
	}
	return out
}()

// Matcher matches form fields against one user's answer snapshot.
// It only reads the snapshot and the static tables, so a single Matcher
// is safe for any number of concurrent MatchField calls.
type Matcher struct {
	answers map[string]string
}

// New returns a Matcher over the given answer snapshot
// (question_key -> answer_text). The snapshot is not copied; callers
// must not mutate it for the lifetime of the Matcher.
func New(answers map[string]string) *Matcher {
	return &Matcher{answers: answers}
}

// IsCreativeField reports whether the field wants free-form generated
// prose (cover letter, "why this role", ...). Evaluated before keyword
// matching; a field containing both a creative trigger and an ordinary
// keyword is always routed to generation.
func (m *Matcher) IsCreativeField(label, name string) bool {
	searchText := Normalize(label + " " + name)
	for _, trigger := range creativeTriggers {
		if strings.Contains(searchText, trigger) {
			return true
		}
	}
	return false
}

// MatchField matches one form field against the keyword table and the
// answer snapshot. Total: every input yields a well-defined result.
func (m *Matcher) MatchField(field model.FormField) MatchResult {
	searchText := Normalize(field.Label + " " + field.Name)

	// Longest keyword wins. Short generic keywords ("name") would
	// otherwise shadow the specific ones ("last name"); ties keep the
	// earlier table entry.
	var bestKey string
	bestLen := 0
	for _, entry := range normalizedTable {
		for _, kw := range entry.keywords {
			if kw == "" || !strings.Contains(searchText, kw) {
				continue
			}
			if len(kw) > bestLen {
				bestLen = len(kw)
				bestKey = entry.key
			}
		}
	}

	if bestKey == "" {
		return MatchResult{Status: StatusUnmatched}
	}

	answer, ok := m.answers[bestKey]
	if !ok {
		// Synthesize full_name when only the parts are on file.
		first, hasFirst := m.answers["first_name"]
		last, hasLast := m.answers["last_name"]
		if bestKey == "full_name" && hasFirst && hasLast {
			answer = first + " " + last
		} else {
			// Known question, no data.
			key := bestKey
			return MatchResult{Status: StatusUnmatched, SuggestedKey: &key}
		}
	}

	// Fixed-choice fields: fit the stored answer to one of the offered
	// options, keeping the raw answer when nothing fits.
	if len(field.Options) > 0 {
		if option := projectOption(answer, field.Options); option != "" {
			return MatchResult{Status: StatusMatched, Value: option}
		}
	}

	return MatchResult{Status: StatusMatched, Value: answer}
}

// SuggestKey returns the first table entry (in table order) whose keyword
// list matches the field, without the longest-match tie-break. Used only
// to annotate unmatched fields for the onboarding flow, so precision is
// secondary to availability. Empty string when nothing matches.
func (m *Matcher) SuggestKey(label, name string) string {
	searchText := Normalize(label + " " + name)
	for _, entry := range normalizedTable {
		for _, kw := range entry.keywords {
			if kw != "" && strings.Contains(searchText, kw) {
				return entry.key
			}
		}
	}
	return ""
}
