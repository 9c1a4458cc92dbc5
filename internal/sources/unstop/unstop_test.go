package unstop

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const renderedPage = `<!DOCTYPE html>
<html><body>
<div class="opportunity-card">
  <h2 class="opportunity-title">Machine Learning Intern</h2>
  <p class="company-name">Delta AI</p>
  <div class="location">Hyderabad</div>
  <div class="stipend">&#8377;20,000</div>
  <span class="days-left">5 days ago</span>
  <a href="/o/ml-intern-42">Details</a>
</div>
<div class="opportunity-card">
  <!-- no usable fields, dropped -->
</div>
</body></html>`

func TestParseCards(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(renderedPage))
	if err != nil {
		t.Fatal(err)
	}

	src := New("https://unstop.com", 3, true, 0, zap.NewNop())
	listings := src.parseCards(doc, 1)

	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}

	l := listings[0]
	if l.Title != "Machine Learning Intern" || l.Company != "Delta AI" {
		t.Errorf("unexpected card: %+v", l)
	}
	if l.URL != "https://unstop.com/o/ml-intern-42" {
		t.Errorf("url: %q", l.URL)
	}
	if l.Source != "unstop" {
		t.Errorf("source: %q", l.Source)
	}
}

func TestParseCardsFallbackSelector(t *testing.T) {
	page := `<html><body><div class="card"><h3>Design Intern</h3><a href="/o/d-1">x</a></div></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}

	src := New("https://unstop.com", 3, true, 0, zap.NewNop())
	listings := src.parseCards(doc, 1)
	if len(listings) != 1 || listings[0].Title != "Design Intern" {
		t.Errorf("fallback selector failed: %+v", listings)
	}
}

func TestOriginStripsScheme(t *testing.T) {
	src := New("https://unstop.com", 1, true, 0, zap.NewNop())
	if src.Origin() != "unstop.com" {
		t.Errorf("Origin() = %q", src.Origin())
	}
}
