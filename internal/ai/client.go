package ai

import (
	"context"
	"errors"
	"fmt"

	"go-konkurs-assistant/internal/models"
)

// Client is the interface for AI providers
type Client interface {
	// AnalyzePost takes the raw text of a social media post and extracts
	// contest metadata (task, submission venue, deadline) from it.
	AnalyzePost(ctx context.Context, postContent string) (models.ContestInfo, error)
}

// Tagged failure modes. Callers match with errors.Is to decide how a failed
// extraction shows up in the result table.
var (
	ErrMissingAPIKey     = errors.New("api key is missing")
	ErrConfiguration     = errors.New("invalid client configuration")
	ErrEmptyPost         = errors.New("empty post content")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrUpstream          = errors.New("upstream api error")
)

// buildExtractionPrompt creates the instruction for the model. Kept in Polish
// because the posts are Polish and the output keys are part of the contract.
func buildExtractionPrompt(postContent string) string {
	return fmt.Sprintf(`Jesteś ekspertem od analizy mediów społecznościowych. Twoim zadaniem jest przeanalizować poniższy tekst posta i wyodrębnić z niego informacje o konkursie. Zwróć odpowiedź wyłącznie w formacie JSON, używając następujących kluczy: 'zadanie_konkursowe', 'miejsce_zgloszenia', 'termin_zakonczenia'. Jeśli dana informacja nie jest dostępna, użyj wartości null. Przykład:
{
  "zadanie_konkursowe": "Opisz swoje ulubione wakacje",
  "miejsce_zgloszenia": "W komentarzu pod postem",
  "termin_zakonczenia": "2024-12-31"
}

Tekst posta do analizy:
%s`, postContent)
}
