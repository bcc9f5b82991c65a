package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// NormalizeDeadline converts the deadline strings the AI returns into ISO
// yyyy-mm-dd where a format is recognized. Unrecognized values pass through
// unchanged so the reviewer still sees what the model said.
func NormalizeDeadline(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return ""
	}

	//Case 1: ISO "2025-03-20" or "2025-03-20T..."
	if isoDateRegex.MatchString(dateStr) {
		if _, err := time.Parse("2006-01-02", dateStr[:10]); err == nil {
			return dateStr[:10]
		}
	}

	//case 2: dd.mm.yyyy (common in Polish posts) or dd/mm/yyyy
	for _, sep := range []string{".", "/"} {
		if !strings.Contains(dateStr, sep) {
			continue
		}
		parts := strings.Split(dateStr, sep)
		if len(parts) != 3 {
			continue
		}
		day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
		if errD != nil || errM != nil || errY != nil {
			continue
		}
		if month < 1 || month > 12 || day < 1 || day > 31 || year < 1000 {
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}

	//unknown format
	return dateStr
}

// IsExpired reports whether a normalized deadline is clearly in the past.
// Unparseable deadlines count as open, skipping a contest is worse than
// showing a stale one.
func IsExpired(deadline string) bool {
	normalized := NormalizeDeadline(deadline)
	if !isoDateRegex.MatchString(normalized) {
		return false
	}

	date, err := time.Parse("2006-01-02", normalized[:10])
	if err != nil {
		return false
	}

	return date.Before(time.Now().Truncate(24 * time.Hour))
}
