// Package dashboard renders scored listings as a standalone HTML page.
// The page is self-contained (inline CSS, no external assets) so it can be
// opened straight from disk or dropped on a static host.
package dashboard

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"internhunt/internal/domain"
)

// Generator writes dashboards into OutputDir, one timestamped file per run.
type Generator struct {
	OutputDir string
	Log       *zap.Logger

	now func() time.Time
}

func New(outputDir string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{OutputDir: outputDir, Log: log, now: time.Now}
}

type pageData struct {
	GeneratedAt string
	Keywords    []string
	Count       int
	Cards       []cardData
}

type cardData struct {
	Rank       int
	Title      string
	Company    string
	Location   string
	Stipend    string
	PostedText string
	Source     string
	URL        string
	Score      float64
	Breakdown  domain.ScoreBreakdown
}

// Generate writes the dashboard for the given listings and returns the file
// path. The output directory is created if missing.
func (g *Generator) Generate(listings []domain.ScoredListing, prefs domain.Preferences) (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir %s: %w", g.OutputDir, err)
	}

	data := pageData{
		GeneratedAt: g.now().Format("2006-01-02 15:04:05"),
		Keywords:    prefs.WantedKeywords,
		Count:       len(listings),
	}
	for i, sl := range listings {
		data.Cards = append(data.Cards, cardData{
			Rank:       i + 1,
			Title:      orDash(sl.Listing.Title),
			Company:    orDash(sl.Listing.Company),
			Location:   orDash(sl.Listing.Location),
			Stipend:    orDash(sl.Listing.StipendText),
			PostedText: sl.Listing.PostedText,
			Source:     sl.Listing.Source,
			URL:        sl.Listing.URL,
			Score:      sl.Score,
			Breakdown:  sl.Breakdown,
		})
	}

	name := fmt.Sprintf("internhunt_results_%s.html", g.now().Format("20060102_150405"))
	path := filepath.Join(g.OutputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating dashboard file: %w", err)
	}
	defer f.Close()

	if err := pageTmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("rendering dashboard: %w", err)
	}

	g.Log.Info("dashboard written", zap.String("path", path), zap.Int("listings", len(listings)))
	return path, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var pageTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>InternHunt Results</title>
<style>
  :root { color-scheme: dark; }
  body { margin: 0; font-family: system-ui, sans-serif; background: #0b0b10; color: #fafafa; }
  header { padding: 2rem; border-bottom: 1px solid #26262e; }
  header h1 { margin: 0 0 .5rem; font-size: 1.6rem; }
  header p { margin: 0; color: #9a9aa5; }
  .grid { display: grid; gap: 1rem; padding: 2rem;
          grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); }
  .card { background: #15151c; border: 1px solid #26262e; border-radius: .5rem;
          padding: 1.2rem; display: flex; flex-direction: column; gap: .4rem; }
  .card h2 { margin: 0; font-size: 1.05rem; }
  .card h2 a { color: #b692f6; text-decoration: none; }
  .card h2 a:hover { text-decoration: underline; }
  .meta { color: #9a9aa5; font-size: .85rem; }
  .score { font-weight: 600; color: #7dd3a8; }
  .badge { display: inline-block; background: #26262e; border-radius: .3rem;
           padding: .1rem .5rem; font-size: .75rem; color: #c5c5cf; }
  details { font-size: .8rem; color: #9a9aa5; margin-top: .3rem; }
  .empty { padding: 4rem 2rem; text-align: center; color: #9a9aa5; }
</style>
</head>
<body>
<header>
  <h1>InternHunt Results</h1>
  <p>{{.Count}} listings &middot; keywords: {{range $i, $k := .Keywords}}{{if $i}}, {{end}}{{$k}}{{end}} &middot; generated {{.GeneratedAt}}</p>
</header>
{{if .Cards}}
<div class="grid">
{{range .Cards}}
  <div class="card">
    <h2>#{{.Rank}} {{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h2>
    <div class="meta">{{.Company}} &middot; {{.Location}}</div>
    <div class="meta">Stipend: {{.Stipend}}{{if .PostedText}} &middot; {{.PostedText}}{{end}}</div>
    <div><span class="score">Score {{printf "%.1f" .Score}}</span> <span class="badge">{{.Source}}</span></div>
    <details>
      <summary>Score breakdown</summary>
      keywords {{printf "%.1f" .Breakdown.Keyword}} &middot;
      skills {{printf "%.1f" .Breakdown.Skill}} &middot;
      stipend {{printf "%.1f" .Breakdown.Stipend}} &middot;
      remote {{printf "%.1f" .Breakdown.Remote}} &middot;
      location {{printf "%.1f" .Breakdown.Location}}
    </details>
  </div>
{{end}}
</div>
{{else}}
<div class="empty">
  <h3>No internships found</h3>
  <p>Try adjusting your search criteria.</p>
</div>
{{end}}
</body>
</html>
`))
