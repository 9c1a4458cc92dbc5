package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyRe = regexp.MustCompile(`[₹$€£,]`)
	numberRe   = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

var unpaidIndicators = []string{"unpaid", "not disclosed", "not mentioned", "n/a", "na"}

// ParseStipend extracts a monthly stipend amount from free text such as
// "₹15,000-20,000 /month" or "15k". A range yields its minimum. Unpaid or
// unparsable text reports ok=false and the listing just earns no bonus.
func ParseStipend(text string) (amount int, ok bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return 0, false
	}

	for _, ind := range unpaidIndicators {
		if strings.Contains(t, ind) {
			return 0, false
		}
	}

	cleaned := currencyRe.ReplaceAllString(t, "")
	hasK := strings.Contains(cleaned, "k")
	hadSeparators := strings.Contains(text, ",")

	matches := numberRe.FindAllString(cleaned, -1)
	if len(matches) == 0 {
		return 0, false
	}

	min := -1
	for _, m := range matches {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		// "15k" style shorthand, but never when the text already spelled
		// out thousands with separators
		if f < 1000 && hasK && !hadSeparators {
			f *= 1000
		}
		n := int(f)
		if min < 0 || n < min {
			min = n
		}
	}

	if min < 0 {
		return 0, false
	}
	return min, true
}
