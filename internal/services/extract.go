package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ExtractService structures a raw job description into competencies via an
// OpenAI-compatible chat-completions endpoint. It is optional: when no API
// key is configured, profile ingestion is unavailable but everything else
// keeps working.
type ExtractService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
	logger     *zap.Logger
}

func NewExtractService(apiKey, apiURL, model string, logger *zap.Logger) *ExtractService {
	return &ExtractService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		logger:     logger,
	}
}

func (s *ExtractService) IsAvailable() bool {
	return s.apiKey != ""
}

type JobExtraction struct {
	Title           string `json:"title"`
	DifficultyLevel int    `json:"difficulty_level"`
	Competencies    []struct {
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
		Depth  int     `json:"depth"`
	} `json:"competencies"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const extractPrompt = `You are a job-description analyst. The user will paste a raw job description. You must respond with ONLY valid JSON (no markdown, no code fences, no explanations) in the following format:

{
  "title": "Concise job title",
  "difficulty_level": 5,
  "competencies": [
    {"name": "competency name", "weight": 0.8, "depth": 7}
  ]
}

Rules:
- Extract 3-8 competencies the role actually requires
- "weight" is the relative importance of the competency, between 0 and 1
- "depth" is the expertise level expected, an integer between 1 and 10
- "difficulty_level" reflects the overall seniority of the role, an integer between 1 and 10
- Use short lowercase competency names (e.g. "system design", "communication")
- Return ONLY the JSON object, nothing else`

// StructureJob extracts a structured job profile from a raw description.
func (s *ExtractService) StructureJob(ctx context.Context, description string) (*JobExtraction, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("job extraction is not configured")
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: extractPrompt},
			{Role: "user", Content: description},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("extraction API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from extraction API")
	}

	content := cleanJSONContent(chatResp.Choices[0].Message.Content)

	var extraction JobExtraction
	if err := json.Unmarshal([]byte(content), &extraction); err != nil {
		return nil, fmt.Errorf("extraction API returned invalid JSON: %w", err)
	}

	normalizeExtraction(&extraction)
	s.logger.Debug("job description structured",
		zap.String("title", extraction.Title),
		zap.Int("competencies", len(extraction.Competencies)))
	return &extraction, nil
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

// normalizeExtraction clamps model output into the ranges the domain expects.
func normalizeExtraction(e *JobExtraction) {
	if e.DifficultyLevel < 1 {
		e.DifficultyLevel = 1
	}
	if e.DifficultyLevel > 10 {
		e.DifficultyLevel = 10
	}
	for i := range e.Competencies {
		c := &e.Competencies[i]
		if c.Weight < 0 {
			c.Weight = 0
		}
		if c.Weight > 1 {
			c.Weight = 1
		}
		if c.Depth < 1 {
			c.Depth = 1
		}
		if c.Depth > 10 {
			c.Depth = 10
		}
	}
}
