package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/jobfill-api/internal/matcher"
	"github.com/yourusername/jobfill-api/internal/model"
)

// ErrNoAnswers means the user has nothing on file; autofill requires
// onboarding first. Distinct from individual fields going unmatched.
var ErrNoAnswers = errors.New("no answers on file for user")

// AnswerSource is the slice of the answer store the orchestrator needs.
type AnswerSource interface {
	GetAll(ctx context.Context, userID string) (map[string]string, error)
}

// Generator produces free-form text for creative fields.
type Generator interface {
	GenerateFieldAnswer(ctx context.Context, fieldLabel string, profile map[string]string, job JobContext) (string, error)
}

// AutofillService orchestrates one autofill pass: snapshot the user's
// answers once, classify each field, match direct fields, and generate
// creative ones.
type AutofillService struct {
	answers   AnswerSource
	generator Generator
}

func NewAutofillService(answers AnswerSource, generator Generator) *AutofillService {
	return &AutofillService{answers: answers, generator: generator}
}

// Autofill maps each usable form field to a fill value. Fields that can't
// be filled are reported with a suggested question key when one was
// identified. One field's generation failure never blocks the rest.
func (s *AutofillService) Autofill(ctx context.Context, userID string, req model.AutofillRequest) (*model.AutofillResponse, error) {
	// One snapshot per request, not per field.
	snapshot, err := s.answers.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, ErrNoAnswers
	}

	m := matcher.New(snapshot)
	job := JobContext{Company: req.CompanyName, JobTitle: req.JobTitle}

	resp := &model.AutofillResponse{
		Mappings:      make(map[string]string),
		MissingFields: []model.MissingField{},
	}

	var creative []model.FormField
	for _, field := range req.Fields {
		if field.Ghost() {
			continue
		}
		resp.TotalFields++

		if s.generator != nil && m.IsCreativeField(field.Label, field.Name) {
			creative = append(creative, field)
			continue
		}

		switch res := m.MatchField(field); res.Status {
		case matcher.StatusMatched:
			resp.Mappings[field.Key()] = res.Value
		default:
			resp.MissingFields = append(resp.MissingFields, model.MissingField{
				FieldLabel:           field.Label,
				SuggestedQuestionKey: res.SuggestedKey,
			})
		}
	}

	// Creative fields share no state and have no ordering dependency,
	// so their generation calls run concurrently.
	if len(creative) > 0 {
		var mu sync.Mutex
		var wg sync.WaitGroup

		for _, field := range creative {
			wg.Add(1)
			go func(field model.FormField) {
				defer wg.Done()

				value, err := s.generator.GenerateFieldAnswer(ctx, field.Label, snapshot, job)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.Warn().Err(err).Str("label", field.Label).Msg("Creative field generation failed")
					resp.MissingFields = append(resp.MissingFields, model.MissingField{FieldLabel: field.Label})
					return
				}
				resp.Mappings[field.Key()] = value
			}(field)
		}
		wg.Wait()
	}

	resp.MatchedCount = len(resp.Mappings)

	log.Info().
		Str("userId", userID).
		Int("total", resp.TotalFields).
		Int("matched", resp.MatchedCount).
		Int("missing", len(resp.MissingFields)).
		Msg("Autofill pass complete")

	return resp, nil
}
