package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/jobfill-api/internal/middleware"
	"github.com/yourusername/jobfill-api/internal/model"
	"github.com/yourusername/jobfill-api/internal/service"
)

type stubAnswers map[string]string

func (s stubAnswers) GetAll(ctx context.Context, userID string) (map[string]string, error) {
	return s, nil
}

type stubGenerator struct{}

func (stubGenerator) GenerateFieldAnswer(ctx context.Context, fieldLabel string, profile map[string]string, job service.JobContext) (string, error) {
	return "generated text", nil
}

func autofillRouter(answers stubAnswers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAutofillHandler(service.NewAutofillService(answers, stubGenerator{}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, "user-1")
	})
	r.POST("/autofill", h.Autofill)
	return r
}

func postAutofill(t *testing.T, router *gin.Engine, req model.AutofillRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("POST", "/autofill", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)
	return w
}

func TestAutofillHandler(t *testing.T) {
	router := autofillRouter(stubAnswers{"email": "ada@example.com"})

	w := postAutofill(t, router, model.AutofillRequest{
		Fields: []model.FormField{
			{ID: "email-field", Label: "Email Address"},
			{ID: "letter", Label: "Cover Letter"},
		},
		CompanyName: "Acme",
		JobTitle:    "Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.AutofillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ada@example.com", resp.Mappings["email-field"])
	assert.Equal(t, "generated text", resp.Mappings["letter"])
	assert.Equal(t, 2, resp.MatchedCount)
}

func TestAutofillHandlerNoAnswers(t *testing.T) {
	router := autofillRouter(stubAnswers{})

	w := postAutofill(t, router, model.AutofillRequest{
		Fields: []model.FormField{{ID: "f1", Label: "Email"}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "onboarding")
}

func TestAutofillHandlerBadBody(t *testing.T) {
	router := autofillRouter(stubAnswers{"email": "a@b.com"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/autofill", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Unknown attributes on inbound descriptors are dropped by struct
// decoding rather than rejected.
func TestAutofillHandlerIgnoresExtraAttributes(t *testing.T) {
	router := autofillRouter(stubAnswers{"email": "a@b.com"})

	payload := []byte(`{"fields":[{"id":"f1","label":"Email","xpath":"//input[1]","visible":true}],"company_name":"Acme"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/autofill", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.AutofillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@b.com", resp.Mappings["f1"])
}
