package scoring

import "strings"

// keywordExpansions maps common abbreviations to the full forms they should
// also match. Data only; extending it never touches scoring code.
var keywordExpansions = map[string][]string{
	"ml":     {"ml", "machine learning"},
	"ai":     {"ai", "artificial intelligence"},
	"nlp":    {"nlp", "natural language processing"},
	"cv":     {"cv", "computer vision"},
	"dl":     {"dl", "deep learning"},
	"ds":     {"ds", "data science"},
	"da":     {"da", "data analytics", "data analysis"},
	"bi":     {"bi", "business intelligence"},
	"api":    {"api", "application programming interface"},
	"ui":     {"ui", "user interface"},
	"ux":     {"ux", "user experience"},
	"db":     {"db", "database"},
	"devops": {"devops", "dev ops"},
	"sde":    {"sde", "software development engineer", "software developer"},
	"swe":    {"swe", "software engineer"},
	"qa":     {"qa", "quality assurance"},
	"genai":  {"genai", "gen ai", "generative ai", "generative artificial intelligence"},
	"llm":    {"llm", "large language model"},
	"gpt":    {"gpt", "generative pre-trained transformer"},

	"software development": {"software development", "software dev", "software engineering"},
	"data science":         {"data science", "data scientist"},
	"machine learning":     {"machine learning", "ml"},
}

// expand returns the keyword itself plus its known long forms, lowercased,
// without duplicates and in stable order.
func expand(keyword string) []string {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil
	}

	out := []string{kw}
	seen := map[string]bool{kw: true}
	for _, alt := range keywordExpansions[kw] {
		if !seen[alt] {
			seen[alt] = true
			out = append(out, alt)
		}
	}
	return out
}
