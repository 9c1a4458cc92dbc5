// Package internshala scrapes internship listings from Internshala.
package internshala

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/errors"
	"internhunt/internal/httpx"
)

const sourceName = "internshala"

type Source struct {
	BaseURL  string
	MaxPages int
	Client   *http.Client
	Log      *zap.Logger
}

func New(baseURL string, maxPages int, timeout time.Duration, log *zap.Logger) *Source {
	return &Source{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		MaxPages: maxPages,
		Client:   &http.Client{Timeout: timeout},
		Log:      log,
	}
}

func (s *Source) Name() string { return sourceName }

func (s *Source) Origin() string { return originOf(s.BaseURL) }

func (s *Source) Pages() int { return s.MaxPages }

func (s *Source) FetchPage(ctx context.Context, page int, prefs domain.Preferences) ([]domain.Listing, error) {
	pageURL := s.pageURL(page, prefs)

	body, err := httpx.Get(ctx, s.Client, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Permanent("parsing internshala page", err)
	}

	cards := doc.Find("div.individual_internship")
	if cards.Length() == 0 {
		cards = doc.Find("div.internship_meta")
	}

	listings := make([]domain.Listing, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		l, ok := s.parseCard(card)
		if !ok {
			s.Log.Debug("skipping unparsable internshala card", zap.Int("page", page))
			return
		}
		listings = append(listings, l)
	})

	s.Log.Debug("fetched internshala page",
		zap.Int("page", page),
		zap.Int("cards", cards.Length()),
		zap.Int("listings", len(listings)))

	return listings, nil
}

// pageURL builds the search URL. Internshala takes the search term in the
// path and appends /page-N for pagination; only the first wanted keyword is
// usable (site limitation carried over).
func (s *Source) pageURL(page int, prefs domain.Preferences) string {
	base := s.BaseURL + "/internships"
	if len(prefs.WantedKeywords) > 0 {
		slug := strings.ReplaceAll(strings.TrimSpace(prefs.WantedKeywords[0]), " ", "-")
		base += "/keywords-" + url.PathEscape(slug)
	}
	if page > 1 {
		base += fmt.Sprintf("/page-%d", page)
	}
	return base
}

// parseCard extracts one listing. A card missing both title and URL is
// dropped; every other field degrades to empty rather than failing.
func (s *Source) parseCard(card *goquery.Selection) (domain.Listing, bool) {
	title := firstText(card,
		"h3.heading_4_5",
		"h4.heading",
		"h3", "h4",
		"a.view_detail_button")
	href := firstAttr(card, "href",
		"a.view_detail_button",
		"a.view-internship",
		"a[href]")
	if title == "" && href == "" {
		return domain.Listing{}, false
	}

	return domain.Listing{
		Title:   title,
		Company: firstText(card, "p.company_name", "a.link_display_like_text", "div.company"),
		StipendText: firstText(card,
			"span.stipend", "div.stipend", "span.salary"),
		Location: firstText(card,
			"p.location_link", "span.location", "div.location"),
		Description: firstText(card,
			"div.internship_other_details_container", "div.details", "div.description"),
		PostedText: firstText(card, "div.status", "div.posted_by_container", "span.status"),
		URL:        absolutize(s.BaseURL, href),
		Source:     sourceName,
	}, true
}

func firstText(sel *goquery.Selection, selectors ...string) string {
	for _, q := range selectors {
		if found := sel.Find(q).First(); found.Length() > 0 {
			if t := strings.TrimSpace(found.Text()); t != "" {
				return t
			}
		}
	}
	return ""
}

func firstAttr(sel *goquery.Selection, attr string, selectors ...string) string {
	for _, q := range selectors {
		if v, ok := sel.Find(q).First().Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func absolutize(base, in string) string {
	in = strings.TrimSpace(in)
	if in == "" {
		return base
	}
	if strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://") {
		return in
	}
	if strings.HasPrefix(in, "/") {
		return base + in
	}
	return base + "/" + in
}

func originOf(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}
	return u.Host
}
