package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourusername/jobfill-api/internal/model"
)

// onboardingKeys are the minimum answers a user needs before autofill
// is worth running.
var onboardingKeys = []string{"first_name", "last_name", "email", "phone"}

// AnswerRepo stores one answer per (user_id, question_key) pair.
// Expected table:
//
//	answers(id uuid pk default gen_random_uuid(), user_id text, category text,
//	        question_key text, question_text text, answer text,
//	        created_at timestamptz default now(), updated_at timestamptz default now(),
//	        unique (user_id, question_key))
type AnswerRepo struct {
	pool *pgxpool.Pool
}

func NewAnswerRepo(pool *pgxpool.Pool) *AnswerRepo {
	return &AnswerRepo{pool: pool}
}

// GetAll returns the user's full answer snapshot as question_key -> answer.
// The matcher reads this map for the duration of one autofill pass.
func (r *AnswerRepo) GetAll(ctx context.Context, userID string) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT question_key, answer
		FROM answers
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	answers := make(map[string]string)
	for rows.Next() {
		var key, answer string
		if err := rows.Scan(&key, &answer); err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}
		answers[key] = answer
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	return answers, nil
}

// Get returns a single answer record, or nil if none exists.
func (r *AnswerRepo) Get(ctx context.Context, userID, questionKey string) (*model.Answer, error) {
	var a model.Answer
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, category, question_key, question_text, answer, created_at, updated_at
		FROM answers
		WHERE user_id = $1 AND question_key = $2
	`, userID, questionKey).Scan(
		&a.ID, &a.UserID, &a.Category, &a.QuestionKey, &a.QuestionText,
		&a.Answer, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding answer: %w", err)
	}
	return &a, nil
}

// GetByCategory returns the user's answers for one category as
// question_key -> answer.
func (r *AnswerRepo) GetByCategory(ctx context.Context, userID, category string) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT question_key, answer
		FROM answers
		WHERE user_id = $1 AND category = $2
	`, userID, category)
	if err != nil {
		return nil, fmt.Errorf("listing answers by category: %w", err)
	}
	defer rows.Close()

	answers := make(map[string]string)
	for rows.Next() {
		var key, answer string
		if err := rows.Scan(&key, &answer); err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}
		answers[key] = answer
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	return answers, nil
}

// Save upserts one answer. Writes are idempotent per (user, question).
func (r *AnswerRepo) Save(ctx context.Context, userID, category, questionKey, questionText, answer string) (*model.Answer, error) {
	var a model.Answer
	err := r.pool.QueryRow(ctx, `
		INSERT INTO answers (user_id, category, question_key, question_text, answer)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, question_key)
		DO UPDATE SET category = $2, question_text = $4, answer = $5, updated_at = now()
		RETURNING id, user_id, category, question_key, question_text, answer, created_at, updated_at
	`, userID, category, questionKey, questionText, answer).Scan(
		&a.ID, &a.UserID, &a.Category, &a.QuestionKey, &a.QuestionText,
		&a.Answer, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving answer: %w", err)
	}
	return &a, nil
}

// SaveMany upserts a batch of answers in one round trip.
func (r *AnswerRepo) SaveMany(ctx context.Context, userID string, answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, a := range answers {
		batch.Queue(`
			INSERT INTO answers (user_id, category, question_key, question_text, answer)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, question_key)
			DO UPDATE SET category = $2, question_text = $4, answer = $5, updated_at = now()
		`, userID, a.Category, a.QuestionKey, a.QuestionText, a.Answer)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range answers {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("saving answer batch: %w", err)
		}
	}
	return nil
}

// DeleteAll removes every answer for a user and returns the count.
func (r *AnswerRepo) DeleteAll(ctx context.Context, userID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM answers WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("deleting answers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// HasCompletedOnboarding reports whether the user has non-empty answers
// for the basic required questions.
func (r *AnswerRepo) HasCompletedOnboarding(ctx context.Context, userID string) (bool, error) {
	answers, err := r.GetAll(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, key := range onboardingKeys {
		if answers[key] == "" {
			return false, nil
		}
	}
	return true, nil
}
