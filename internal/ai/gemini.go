package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go-konkurs-assistant/internal/models"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type geminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient creates a new Google Gemini API client
func NewGeminiClient(apiKey string) Client {
	return &geminiClient{
		apiKey:     apiKey,
		model:      "gemini-pro",
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// AnalyzePost sends the post text to Gemini and parses the extracted contest info
func (c *geminiClient) AnalyzePost(ctx context.Context, postContent string) (models.ContestInfo, error) {
	var info models.ContestInfo

	if c.apiKey == "" {
		return info, ErrMissingAPIKey
	}
	if c.model == "" || c.baseURL == "" || c.httpClient == nil {
		return info, fmt.Errorf("%w: model, base url and http client must be set", ErrConfiguration)
	}
	if strings.TrimSpace(postContent) == "" {
		return info, ErrEmptyPost
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildExtractionPrompt(postContent)}}},
		},
	}
	//low temperature for consistency
	reqBody.GenerationConfig.Temperature = 0.2

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return info, fmt.Errorf("%w: failed to marshal request: %v", ErrConfiguration, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return info, fmt.Errorf("%w: failed to create http request: %v", ErrConfiguration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return info, fmt.Errorf("%w: http request failed: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return info, fmt.Errorf("%w: failed to read response body: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("%w: gemini returned status %d: %s", ErrUpstream, resp.StatusCode, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(bodyBytes, &geminiResp); err != nil {
		return info, fmt.Errorf("%w: failed to decode response envelope: %v", ErrUpstream, err)
	}

	if geminiResp.Error != nil {
		return info, fmt.Errorf("%w: %s", ErrUpstream, geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return info, fmt.Errorf("%w: no candidates returned", ErrUpstream)
	}

	rawText := geminiResp.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(extractJSON(rawText)), &info); err != nil {
		return info, fmt.Errorf("%w: %v (raw length: %d)", ErrMalformedResponse, err, len(rawText))
	}

	return info, nil
}

// extractJSON locates the JSON object inside a model response that may be
// wrapped in markdown fences or prose. Takes the substring between the first
// '{' and the last '}'; if no braces are found, returns the trimmed text so
// the decode error reports the real content.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return strings.TrimSpace(content)
	}
	return content[start : end+1]
}
