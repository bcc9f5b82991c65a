package models

// ContestInfo is the structured metadata the AI extracts from a post.
// Fields are pointers because the model returns null for anything
// it cannot find in the text.
type ContestInfo struct {
	Task     *string `json:"zadanie_konkursowe"`
	Venue    *string `json:"miejsce_zgloszenia"`
	Deadline *string `json:"termin_zakonczenia"`
}

// ResultRow is one row of the review table: the scraped post plus
// whatever the AI extracted from it.
type ResultRow struct {
	Link     string `json:"link"`
	Content  string `json:"content"`
	Task     string `json:"task"`
	Venue    string `json:"venue"`
	Deadline string `json:"deadline"`
}

// display markers for failed extractions, mirrored in the exported sheet
const (
	MarkerConfigError = "Błąd konfiguracji"
	MarkerAPIError    = "Błąd API"
	MarkerParseError  = "Błąd parsowania JSON"
)

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NewResultRow merges a scraped post with its extracted contest info.
func NewResultRow(link, content string, info ContestInfo) ResultRow {
	return ResultRow{
		Link:     link,
		Content:  content,
		Task:     strOrEmpty(info.Task),
		Venue:    strOrEmpty(info.Venue),
		Deadline: strOrEmpty(info.Deadline),
	}
}

// NewErrorRow builds a row whose metadata columns carry the failure marker.
func NewErrorRow(link, content, marker string) ResultRow {
	return ResultRow{
		Link:     link,
		Content:  content,
		Task:     marker,
		Venue:    marker,
		Deadline: marker,
	}
}
