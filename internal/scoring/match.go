package scoring

import (
	"regexp"
	"sync"
)

// wordRe caches compiled word-boundary patterns per term. Boundary matching
// is what keeps "hr" from firing inside "three" or "chrome".
var wordRe sync.Map // string -> *regexp.Regexp

func ContainsWord(text, term string) bool {
	if term == "" || text == "" {
		return false
	}
	re, ok := wordRe.Load(term)
	if !ok {
		re, _ = wordRe.LoadOrStore(term, compileWord(term))
	}
	return re.(*regexp.Regexp).MatchString(text)
}

// compileWord anchors the term on word boundaries, but only where the term
// itself starts or ends with a word character. A bare \b after "c++" would
// never match at end of text, so non-word edges get a lookaround-free guard
// instead: either the text edge or a non-word rune.
func compileWord(term string) *regexp.Regexp {
	pat := regexp.QuoteMeta(term)
	first, last := rune(term[0]), rune(term[len(term)-1])
	if isWordRune(first) {
		pat = `\b` + pat
	} else {
		pat = `(?:^|[^\w])` + pat
	}
	if isWordRune(last) {
		pat += `\b`
	} else {
		pat += `(?:[^\w]|$)`
	}
	return regexp.MustCompile(`(?i)` + pat)
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// remotePatterns flag listings as remote-friendly. Matched with word
// boundaries against location + description.
var remotePatterns = []string{
	"remote",
	"wfh",
	"work from home",
	"work-from-home",
	"pan india",
	"pan-india",
	"anywhere in india",
}

func matchesRemote(text string) bool {
	for _, p := range remotePatterns {
		if ContainsWord(text, p) {
			return true
		}
	}
	return false
}
