package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var ageRe = regexp.MustCompile(`(\d+)\s*(day|week|month|hour)s?\s*ago`)

// ParsePostedAge turns free text like "3 days ago" or "1 week ago" into a
// day count. "today"/"just now" count as zero. Anything else reports
// ok=false and the listing's age stays unknown.
func ParsePostedAge(text string) (days int, ok bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return 0, false
	}

	if strings.Contains(t, "today") || strings.Contains(t, "just now") || strings.Contains(t, "few hours") {
		return 0, true
	}
	if strings.Contains(t, "yesterday") {
		return 1, true
	}

	m := ageRe.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "hour":
		return 0, true
	case "day":
		return n, true
	case "week":
		return n * 7, true
	case "month":
		return n * 30, true
	}
	return 0, false
}
