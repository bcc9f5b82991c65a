package filter

import (
	"testing"
)

func TestLooksLikeContest(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "plain contest announcement",
			content:  "Konkurs! Wygraj super nagrody. Zgłoszenia w komentarzu.",
			expected: true,
		},
		{
			name:     "giveaway with diacritics",
			content:  "Wielkie rozdanie książek! Do wygrania nagrody główne.",
			expected: true,
		},
		{
			name:     "results post is not a contest",
			content:  "Wyniki konkursu: gratulujemy zwycięzcom!",
			expected: false,
		},
		{
			name:     "unrelated post",
			content:  "Dzisiaj piękna pogoda, idziemy na spacer.",
			expected: false,
		},
		{
			name:     "empty content",
			content:  "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LooksLikeContest(tt.content)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("Wygrąj NAGRODĘ")
	if got != "wygraj nagrode" {
		t.Errorf("got %q", got)
	}
}
