package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/jobfill-api/internal/model"
	"github.com/yourusername/jobfill-api/internal/service"
)

// AutofillHandler exposes the matching engine over HTTP
type AutofillHandler struct {
	autofill *service.AutofillService
}

func NewAutofillHandler(autofill *service.AutofillService) *AutofillHandler {
	return &AutofillHandler{autofill: autofill}
}

// Autofill handles POST /autofill
// Takes the scraped field list plus job context, returns field mappings
// and a missing-fields report.
func (h *AutofillHandler) Autofill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req model.AutofillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.autofill.Autofill(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNoAnswers) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Please complete onboarding first. No answers found."})
			return
		}
		log.Error().Err(err).Str("userId", userID).Msg("Autofill failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Autofill failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, resp)
}
