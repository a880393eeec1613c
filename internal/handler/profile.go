package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/jobfill-api/internal/catalog"
	"github.com/yourusername/jobfill-api/internal/middleware"
	"github.com/yourusername/jobfill-api/internal/model"
	"github.com/yourusername/jobfill-api/internal/repository"
)

// ProfileHandler serves the user's stored answers
type ProfileHandler struct {
	answerRepo *repository.AnswerRepo
}

func NewProfileHandler(answerRepo *repository.AnswerRepo) *ProfileHandler {
	return &ProfileHandler{answerRepo: answerRepo}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	answers, err := h.answerRepo.GetAll(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load profile answers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	completed, err := h.answerRepo.HasCompletedOnboarding(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check onboarding status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, model.Profile{
		UserID:              userID,
		Answers:             answers,
		CompletedOnboarding: completed,
		AnswerCount:         len(answers),
	})
}

// DeleteProfile handles DELETE /profile
// Wipes all stored answers for the user (reset / right-to-forget).
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	count, err := h.answerRepo.DeleteAll(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to delete profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}

	log.Info().Str("userId", userID).Int64("deleted", count).Msg("Profile deleted")
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted_count": count})
}

// SaveAnswer handles POST /profile/answers
func (h *ProfileHandler) SaveAnswer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req model.SaveAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_key is required"})
		return
	}

	question := catalog.ByKey(req.QuestionKey)
	if question == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question key '" + req.QuestionKey + "' not found"})
		return
	}

	if _, err := h.answerRepo.Save(
		c.Request.Context(), userID,
		question.Category, question.Key, question.Prompt, req.Answer,
	); err != nil {
		log.Error().Err(err).Str("key", req.QuestionKey).Msg("Failed to save answer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save answer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "question_key": req.QuestionKey})
}

// SaveAnswers handles POST /profile/answers/bulk
// Unknown question keys are skipped rather than failing the batch.
func (h *ProfileHandler) SaveAnswers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req model.SaveAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answers are required"})
		return
	}

	answers := make([]model.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		question := catalog.ByKey(a.QuestionKey)
		if question == nil {
			log.Warn().Str("key", a.QuestionKey).Msg("Skipping unknown question key in bulk save")
			continue
		}
		answers = append(answers, model.Answer{
			Category:     question.Category,
			QuestionKey:  question.Key,
			QuestionText: question.Prompt,
			Answer:       a.Answer,
		})
	}

	if err := h.answerRepo.SaveMany(c.Request.Context(), userID, answers); err != nil {
		log.Error().Err(err).Msg("Failed to save answers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save answers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "saved_count": len(answers)})
}

// getUserID extracts the caller's user id from context
func getUserID(c *gin.Context) (string, error) {
	if id := middleware.GetUserID(c); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no user id in context")
}
