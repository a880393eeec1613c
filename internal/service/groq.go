package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// GroqClient wraps the Groq chat-completions API
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGroqClient(apiKey, baseURL, model string) *GroqClient {
	return &GroqClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ── Groq API request/response types ───────────────────

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// JobContext carries the job details scraped alongside the form.
type JobContext struct {
	Company  string
	JobTitle string
}

// ── Creative field generation ─────────────────────────

const generateSystemPrompt = `You are a direct, no-nonsense career assistant. You write in a grounded, human-to-human style. You hate AI buzzwords and corporate jargon.`

const generateRulesPrompt = `STRICT WRITING RULES:
1. NO AI TONE: Avoid "I am thrilled," "In today's fast-paced world," "passionate about," or "strive for excellence." Use plain, direct English.
2. HUMAN STYLE: Write like a real person who values time. No empty fluff, no corporate buzzwords (e.g., "synergy," "cutting-edge," "leverage"), and NO long dashes or complex punctuation.
3. GENUINE: Use the actual facts from the user profile. Do not hallucinate achievements. If the user mentions a project, talk about it simply.
4. CONCISE: Max 2 short paragraphs for cover letters. 1-2 sentences for shorter questions.
5. NO TEMPLATES: Do not use "Dear Hiring Manager" or "Sincerely" unless it is a full cover letter. Even then, keep it grounded.
6. JD MATCH: Subtly mention how the user's specific experience (not general skills) fits this specific role and company.

RETURN ONLY THE FINAL TEXT. NO PREAMBLE.`

// GenerateFieldAnswer writes a tailored answer for an open-ended form
// field (cover letter, "why this role") from the user's stored profile.
func (c *GroqClient) GenerateFieldAnswer(ctx context.Context, fieldLabel string, profile map[string]string, job JobContext) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("Groq API key not configured")
	}

	company := job.Company
	if company == "" {
		company = "Unknown"
	}
	title := job.JobTitle
	if title == "" {
		title = "Role"
	}

	userContent := fmt.Sprintf(
		"Write a professional, direct, and human-sounding answer for this job application question: %q\n\nUSER PROFILE:\n%s\n\nCONTEXT (JOB):\nCompany: %s\nRole: %s\n\n%s",
		fieldLabel, formatProfile(profile), company, title, generateRulesPrompt,
	)

	text, err := c.complete(ctx, generateSystemPrompt, userContent, 0.6, 800)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ── Resume answer extraction ──────────────────────────

const extractSystemPrompt = `You extract job application answers from resume text.

Always respond with ONLY a JSON object (no markdown, no backticks, no explanation) mapping
question keys to answer strings. Only include keys you can fill from the resume; omit the rest.
Allowed keys: first_name, last_name, email, phone, city, state_province, country, linkedin_url,
portfolio_url, github_url, highest_degree, school_name, major_field_of_study, graduation_date,
current_company, current_job_title, current_job_start_date, current_job_duties,
career_summary_bullets, notable_projects.

Rules:
- Extract only what is explicitly stated. Don't invent data.
- Answers are plain strings, no nested structure.
- career_summary_bullets and notable_projects may be short newline-separated lists.`

// ExtractProfileAnswers pulls catalog answers out of raw resume text so a
// new user can skip most of the questionnaire.
func (c *GroqClient) ExtractProfileAnswers(ctx context.Context, resumeText string) (map[string]string, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("Groq API key not configured")
	}

	text, err := c.complete(ctx, extractSystemPrompt, "Extract the answers from this resume and return the JSON:\n\n"+resumeText, 0, 1500)
	if err != nil {
		return nil, err
	}

	text = stripCodeFences(strings.TrimSpace(text))

	var extracted map[string]string
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		return nil, fmt.Errorf("parsing extracted answers: %w (raw: %s)", err, text)
	}
	return extracted, nil
}

// ── Shared plumbing ───────────────────────────────────

func (c *GroqClient) complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	reqBody := groqRequest{
		Model: c.model,
		Messages: []groqMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Groq API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Groq API returned %d: %s", resp.StatusCode, string(body))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(body, &groqResp); err != nil {
		return "", fmt.Errorf("parsing Groq response: %w", err)
	}

	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from Groq")
	}

	return groqResp.Choices[0].Message.Content, nil
}

// formatProfile renders the answer snapshot as stable key: value lines.
func formatProfile(profile map[string]string) string {
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(profile[k])
		sb.WriteString("\n")
	}
	return sb.String()
}

// stripCodeFences removes markdown ```json ... ``` wrappers
func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}
