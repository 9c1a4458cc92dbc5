// Package letsintern scrapes internship listings from LetsIntern.
package letsintern

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

const sourceName = "letsintern"

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

func (s *Source) Origin() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Host == "" {
		return s.BaseURL
	}
	return u.Host
}

func (s *Source) Pages() int { return s.MaxPages }

func (s *Source) FetchPage(ctx context.Context, page int, prefs domain.Preferences) ([]domain.Listing, error) {
	pageURL := s.BaseURL + "/internships"
	if page > 1 {
		pageURL += fmt.Sprintf("?page=%d", page)
	}

	body, err := httpx.Get(ctx, s.Client, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Permanent("parsing letsintern page", err)
	}

	cards := doc.Find("div.internship-card")
	if cards.Length() == 0 {
		cards = doc.Find("div[class*=internship]")
	}

	listings := make([]domain.Listing, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		title := text(card, "h3.title", "h2", "div.internship-title", "h3", "h4")
		href, _ := card.Find("a[href]").First().Attr("href")
		href = strings.TrimSpace(href)
		if title == "" && href == "" {
			s.Log.Debug("skipping unparsable letsintern card", zap.Int("page", page))
			return
		}

		listings = append(listings, domain.Listing{
			Title:       title,
			Company:     text(card, "div.company", "span.company-name", "p.company", "div.company-name"),
			StipendText: text(card, "div.stipend", "span.salary", "div.salary", "span.stipend"),
			Location:    text(card, "div.location", "span.location", "p.location"),
			Description: text(card, "div.description", "p.description"),
			PostedText:  text(card, "span.posted", "div.posted"),
			URL:         absolutize(s.BaseURL, href),
			Source:      sourceName,
		})
	})

	s.Log.Debug("fetched letsintern page",
		zap.Int("page", page),
		zap.Int("listings", len(listings)))

	return listings, nil
}

func text(sel *goquery.Selection, selectors ...string) string {
	for _, q := range selectors {
		if found := sel.Find(q).First(); found.Length() > 0 {
			if t := strings.TrimSpace(found.Text()); t != "" {
				return t
			}
		}
	}
	return ""
}

func absolutize(base, in string) string {
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
