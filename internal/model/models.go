package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ── Stored answers ─────────────────────────────────────

// Answer is one (user, question) pair from the answer store.
// At most one row exists per (user_id, question_key); saves are upserts.
type Answer struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"-"`
	Category     string    `json:"category"`
	QuestionKey  string    `json:"questionKey"`
	QuestionText string    `json:"questionText"`
	Answer       string    `json:"answer"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ── Autofill request/response ──────────────────────────

// FormField is one scraped form field from the extension.
// Unknown JSON attributes on the wire are dropped by struct decoding,
// so this field set is the allow-list for inbound descriptors.
type FormField struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder"`
	Context     string   `json:"context"`
	Options     []string `json:"options"`
}

// Key returns the identifier the extension fills by: the DOM id,
// falling back to the name attribute.
func (f FormField) Key() string {
	if strings.TrimSpace(f.ID) != "" {
		return f.ID
	}
	return f.Name
}

// Ghost reports whether the field has no usable identifier at all.
// The scraper sometimes emits these for decorative inputs; they are skipped.
func (f FormField) Ghost() bool {
	return strings.TrimSpace(f.ID) == "" && strings.TrimSpace(f.Name) == ""
}

// AutofillRequest is the payload for POST /autofill
type AutofillRequest struct {
	Fields      []FormField `json:"fields"`
	CompanyName string      `json:"company_name"`
	JobTitle    string      `json:"job_title"`
}

// MissingField describes a field the matcher could not fill.
// SuggestedQuestionKey is nil when the field wasn't recognized at all,
// and set when a question key was identified but no answer is on file.
type MissingField struct {
	FieldLabel           string  `json:"field_label"`
	SuggestedQuestionKey *string `json:"suggested_question_key"`
}

// AutofillResponse maps field identifiers to fill values plus a
// missing-fields report for the onboarding flow.
type AutofillResponse struct {
	Mappings      map[string]string `json:"mappings"`
	MissingFields []MissingField    `json:"missing_fields"`
	TotalFields   int               `json:"total_fields"`
	MatchedCount  int               `json:"matched_count"`
}

// ── Answer save payloads ───────────────────────────────

// SaveAnswerRequest is the payload for POST /profile/answers
type SaveAnswerRequest struct {
	QuestionKey string `json:"question_key" binding:"required"`
	Answer      string `json:"answer"`
}

// SaveAnswersRequest is the payload for POST /profile/answers/bulk
type SaveAnswersRequest struct {
	Answers []SaveAnswerRequest `json:"answers" binding:"required"`
}

// Profile is the response for GET /profile
type Profile struct {
	UserID              string            `json:"user_id"`
	Answers             map[string]string `json:"answers"`
	CompletedOnboarding bool              `json:"completed_onboarding"`
	AnswerCount         int               `json:"answer_count"`
}
