package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/jobfill-api/internal/catalog"
)

// GetQuestions handles GET /questions
// Returns the full catalog grouped by category; the extension builds the
// onboarding questionnaire from it.
func GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":      catalog.ByCategory(),
		"total_questions": len(catalog.List()),
	})
}

// GetQuestionsForCategory handles GET /questions/:category
func GetQuestionsForCategory(c *gin.Context) {
	category := c.Param("category")

	questions, ok := catalog.ByCategory()[category]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category '" + category + "' not found"})
		return
	}

	c.JSON(http.StatusOK, questions)
}
