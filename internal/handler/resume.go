package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/jobfill-api/internal/catalog"
	"github.com/yourusername/jobfill-api/internal/model"
	"github.com/yourusername/jobfill-api/internal/repository"
	"github.com/yourusername/jobfill-api/internal/service"
)

// ResumeHandler turns an uploaded resume into stored profile answers,
// letting a new user skip most of the questionnaire.
type ResumeHandler struct {
	groq       *service.GroqClient
	answerRepo *repository.AnswerRepo
}

func NewResumeHandler(groq *service.GroqClient, answerRepo *repository.AnswerRepo) *ResumeHandler {
	return &ResumeHandler{groq: groq, answerRepo: answerRepo}
}

// Extract handles POST /resume/extract
// Accepts a PDF via multipart form, extracts text, pulls catalog answers
// out of it, and upserts them into the user's profile.
func (h *ResumeHandler) Extract(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	// Validate file type
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are supported"})
		return
	}

	// Limit to 10MB
	if header.Size > 10*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Maximum size is 10MB."})
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	// Validate PDF magic bytes (header must start with %PDF)
	if len(fileBytes) < 4 || string(fileBytes[:4]) != "%PDF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF file"})
		return
	}

	text, err := extractPDFText(fileBytes)
	if err != nil {
		log.Error().Err(err).Msg("Failed to extract text from PDF")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Could not extract text from this PDF. It may be image-based or corrupted.",
		})
		return
	}

	text = strings.TrimSpace(text)
	if len(text) < 50 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Very little text was extracted. This PDF may be image-based (scanned). Try a text-based PDF.",
		})
		return
	}

	// Cap at 30K chars
	if len(text) > 30000 {
		text = text[:30000]
	}

	log.Info().
		Str("filename", header.Filename).
		Int("bytes", len(fileBytes)).
		Int("textLen", len(text)).
		Msg("Resume PDF text extracted")

	extracted, err := h.groq.ExtractProfileAnswers(c.Request.Context(), text)
	if err != nil {
		log.Error().Err(err).Msg("Failed to extract answers from resume")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Resume extraction failed. Please try again."})
		return
	}

	// Only persist keys the catalog knows about.
	answers := make([]model.Answer, 0, len(extracted))
	for key, value := range extracted {
		question := catalog.ByKey(key)
		if question == nil || strings.TrimSpace(value) == "" {
			continue
		}
		answers = append(answers, model.Answer{
			Category:     question.Category,
			QuestionKey:  question.Key,
			QuestionText: question.Prompt,
			Answer:       value,
		})
	}

	if err := h.answerRepo.SaveMany(c.Request.Context(), userID, answers); err != nil {
		log.Error().Err(err).Msg("Failed to save extracted answers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save extracted answers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answers":     extracted,
		"saved_count": len(answers),
	})
}

// extractPDFText pulls plain text out of a PDF in memory.
func extractPDFText(data []byte) (string, error) {
	// ledongthuc/pdf needs a file on disk, so spill to a temp file
	tmpFile, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return "", fmt.Errorf("writing temp file: %w", err)
	}

	f, reader, err := pdf.Open(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Int("page", i).Err(err).Msg("Failed to extract text from PDF page")
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
