// Package export writes ranked listings to machine-readable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"internhunt/internal/domain"
)

// Keep header order EXACT; downstream sheets import by position.
var csvHeader = []string{
	"RANK",
	"SCORE",
	"TITLE",
	"COMPANY",
	"LOCATION",
	"STIPEND",
	"POSTED",
	"SOURCE",
	"URL",
	"SCORE_KEYWORD",
	"SCORE_SKILL",
	"SCORE_STIPEND",
	"SCORE_REMOTE",
	"SCORE_LOCATION",
}

// WriteCSV writes scored listings in rank order, one row per listing.
func WriteCSV(w io.Writer, listings []domain.ScoredListing) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, sl := range listings {
		if err := cw.Write(toRow(i+1, sl)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRow(rank int, sl domain.ScoredListing) []string {
	l := sl.Listing
	return []string{
		fmt.Sprintf("%d", rank),
		fmt.Sprintf("%.1f", sl.Score),
		clean(l.Title),
		clean(l.Company),
		clean(l.Location),
		clean(l.StipendText),
		clean(l.PostedText),
		l.Source,
		l.URL,
		fmt.Sprintf("%.1f", sl.Breakdown.Keyword),
		fmt.Sprintf("%.1f", sl.Breakdown.Skill),
		fmt.Sprintf("%.1f", sl.Breakdown.Stipend),
		fmt.Sprintf("%.1f", sl.Breakdown.Remote),
		fmt.Sprintf("%.1f", sl.Breakdown.Location),
	}
}

// clean strips newlines that would break row-per-listing consumers even
// though encoding/csv would quote them.
func clean(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
