package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper: fake Gemini endpoint that always answers with the given model text
func fakeGemini(t *testing.T, modelText string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": modelText}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testClient(srv *httptest.Server) *geminiClient {
	return &geminiClient{
		apiKey:     "test-api-key",
		model:      "gemini-pro",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestAnalyzePost_Success(t *testing.T) {
	srv, _ := fakeGemini(t, `{
		"zadanie_konkursowe": "Opisz swoje ulubione wakacje",
		"miejsce_zgloszenia": "W komentarzu pod postem",
		"termin_zakonczenia": "2024-12-31"
	}`)

	info, err := testClient(srv).AnalyzePost(context.Background(), "To jest przykładowy post konkursowy.")
	require.NoError(t, err)
	require.NotNil(t, info.Task)
	require.NotNil(t, info.Venue)
	require.NotNil(t, info.Deadline)
	assert.Equal(t, "Opisz swoje ulubione wakacje", *info.Task)
	assert.Equal(t, "W komentarzu pod postem", *info.Venue)
	assert.Equal(t, "2024-12-31", *info.Deadline)
}

func TestAnalyzePost_MissingFieldsAreNil(t *testing.T) {
	srv, _ := fakeGemini(t, `{"zadanie_konkursowe": "Odpowiedz na pytanie", "termin_zakonczenia": null}`)

	info, err := testClient(srv).AnalyzePost(context.Background(), "Konkurs! Do wygrania książka.")
	require.NoError(t, err)
	require.NotNil(t, info.Task)
	assert.Equal(t, "Odpowiedz na pytanie", *info.Task)
	assert.Nil(t, info.Venue)
	assert.Nil(t, info.Deadline)
}

func TestAnalyzePost_JSONInsideMarkdown(t *testing.T) {
	srv, _ := fakeGemini(t, "Oto wynik analizy:\n```json\n{\"zadanie_konkursowe\": \"Polub post\", \"miejsce_zgloszenia\": \"W komentarzu\", \"termin_zakonczenia\": \"2025-03-20\"}\n```\nPowodzenia!")

	info, err := testClient(srv).AnalyzePost(context.Background(), "Wygraj super nagrody!")
	require.NoError(t, err)
	require.NotNil(t, info.Task)
	assert.Equal(t, "Polub post", *info.Task)
	require.NotNil(t, info.Deadline)
	assert.Equal(t, "2025-03-20", *info.Deadline)
}

func TestAnalyzePost_MalformedResponse(t *testing.T) {
	srv, _ := fakeGemini(t, "To nie jest poprawny JSON")

	_, err := testClient(srv).AnalyzePost(context.Background(), "Post który spowoduje błąd JSON.")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAnalyzePost_EmptyPostSkipsAPI(t *testing.T) {
	srv, calls := fakeGemini(t, "{}")

	_, err := testClient(srv).AnalyzePost(context.Background(), "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyPost)
	assert.Equal(t, 0, *calls, "empty post must not hit the API")
}

func TestAnalyzePost_MissingAPIKey(t *testing.T) {
	srv, calls := fakeGemini(t, "{}")
	client := testClient(srv)
	client.apiKey = ""

	_, err := client.AnalyzePost(context.Background(), "Test post")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, 0, *calls)
}

func TestAnalyzePost_BadConfiguration(t *testing.T) {
	srv, _ := fakeGemini(t, "{}")
	client := testClient(srv)
	client.model = ""

	_, err := client.AnalyzePost(context.Background(), "Test post")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestAnalyzePost_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 500, "message": "internal"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv).AnalyzePost(context.Background(), "Post który spowoduje błąd API.")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAnalyzePost_UpstreamErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).AnalyzePost(context.Background(), "Test post")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAnalyzePost_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).AnalyzePost(context.Background(), "Test post")
	assert.ErrorIs(t, err, ErrUpstream)
}

// identical input + identical mocked response => byte-identical record
func TestAnalyzePost_Deterministic(t *testing.T) {
	srv, _ := fakeGemini(t, `{"zadanie_konkursowe": "Polub post", "miejsce_zgloszenia": "Komentarz", "termin_zakonczenia": "2025-01-01"}`)
	client := testClient(srv)

	first, err := client.AnalyzePost(context.Background(), "Konkurs!")
	require.NoError(t, err)
	second, err := client.AnalyzePost(context.Background(), "Konkurs!")
	require.NoError(t, err)

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare object",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "markdown fenced",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "prose around object",
			input:    `Sure! Here it is: {"a": 1} Hope it helps.`,
			expected: `{"a": 1}`,
		},
		{
			name:     "no braces falls back to trimmed text",
			input:    "  not json at all  ",
			expected: "not json at all",
		},
		{
			name:     "closing brace before opening",
			input:    "} broken {",
			expected: "} broken {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSON(tt.input))
		})
	}
}
