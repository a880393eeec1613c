package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/questions", GetQuestions)
	r.GET("/questions/:category", GetQuestionsForCategory)
	return r
}

func TestGetQuestions(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/questions", nil)
	questionsRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories     map[string]json.RawMessage `json:"categories"`
		TotalQuestions int                        `json:"total_questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Greater(t, body.TotalQuestions, 40)
	assert.Contains(t, body.Categories, "personal")
	assert.Contains(t, body.Categories, "legal")
}

func TestGetQuestionsForCategory(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/questions/personal", nil)
	questionsRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var questions []struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.NotEmpty(t, questions)
	assert.Equal(t, "first_name", questions[0].Key)
}

func TestGetQuestionsForUnknownCategory(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/questions/astrology", nil)
	questionsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
