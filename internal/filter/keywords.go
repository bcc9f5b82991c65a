package filter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	contestRegex = regexp.MustCompile(`(?i)(konkurs\w*|wygraj|do wygrania|rozdani\w*|giveaway|nagrod\w*|zgloszeni\w*)`)
	resultsRegex = regexp.MustCompile(`(?i)(wyniki konkursu|konkurs rozstrzygniety|zwyciezc\w*|lista laureatow)`)
)

// normalizeText strips diacritics and lowercases, so "nagrodę" matches "nagrod"
func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// LooksLikeContest is a cheap prefilter that decides whether a post is worth
// a paid AI call. Posts announcing contest RESULTS are not contests.
func LooksLikeContest(content string) bool {
	text := normalizeText(content)

	if !contestRegex.MatchString(text) {
		return false
	}

	if resultsRegex.MatchString(text) {
		return false
	}

	return true
}
