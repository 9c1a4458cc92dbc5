package domain

// Listing is the canonical raw internship record inside this service.
// Every source maps its own page/API shape into this model; everything
// downstream (scoring, dedup, ranking, dashboard) consumes only this.
type Listing struct {
	Title   string
	Company string

	// Stipend as published, e.g. "₹15,000-20,000 /month" or "Unpaid".
	// Parsing happens at scoring time; sources never interpret it.
	StipendText string

	Location    string
	Description string
	URL         string

	// PostedText is the free-text age, e.g. "3 days ago", "1 week ago".
	PostedText string

	// Source is the stable identifier of the producing source, e.g.
	// "internshala", "letsintern", "unstop".
	Source string
}

// ScoreBreakdown records how each component contributed to a score.
type ScoreBreakdown struct {
	Keyword  float64
	Skill    float64
	Stipend  float64
	Remote   float64
	Location float64
}

// Total sums the component scores.
func (b ScoreBreakdown) Total() float64 {
	return b.Keyword + b.Skill + b.Stipend + b.Remote + b.Location
}

// ScoredListing pairs a listing with its relevance score.
type ScoredListing struct {
	Listing   Listing
	Score     float64
	Breakdown ScoreBreakdown
}
