package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"internhunt/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	listings := []domain.ScoredListing{
		{
			Listing: domain.Listing{
				Title:       "Python Intern",
				Company:     "Acme",
				Location:    "Bangalore",
				StipendText: "₹15,000 /month",
				PostedText:  "3 days ago",
				Source:      "internshala",
				URL:         "https://example.com/1",
			},
			Score:     15,
			Breakdown: domain.ScoreBreakdown{Keyword: 10, Skill: 3, Stipend: 2},
		},
		{
			Listing: domain.Listing{Title: "Multi\nLine", Company: "Beta", Source: "unstop"},
			Score:   8,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, listings); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	if rows[0][0] != "RANK" || rows[0][1] != "SCORE" || rows[0][2] != "TITLE" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "1" || first[1] != "15.0" || first[2] != "Python Intern" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[9] != "10.0" || first[10] != "3.0" || first[11] != "2.0" {
		t.Errorf("unexpected breakdown columns: %v", first)
	}

	if rows[2][2] != "Multi Line" {
		t.Errorf("newlines must be flattened, got %q", rows[2][2])
	}
	if rows[2][0] != "2" {
		t.Errorf("rank must follow input order, got %q", rows[2][0])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header, got %d rows", len(rows))
	}
}
