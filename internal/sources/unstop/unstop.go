// Package unstop scrapes internship listings from Unstop. The site renders
// its cards with JavaScript, so fetching goes through a scripted headless
// browser instead of plain HTTP.
package unstop

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/errors"
	"internhunt/internal/httpx"
)

const sourceName = "unstop"

type Source struct {
	BaseURL  string
	MaxPages int
	Headless bool

	// Wait bounds navigation plus the wait for cards to materialize.
	Wait time.Duration

	Log *zap.Logger
}

func New(baseURL string, maxPages int, headless bool, wait time.Duration, log *zap.Logger) *Source {
	return &Source{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		MaxPages: maxPages,
		Headless: headless,
		Wait:     wait,
		Log:      log,
	}
}

func (s *Source) Name() string { return sourceName }

func (s *Source) Origin() string {
	return strings.TrimPrefix(strings.TrimPrefix(s.BaseURL, "https://"), "http://")
}

func (s *Source) Pages() int { return s.MaxPages }

// FetchPage owns a browser session for exactly one page: the allocator and
// browser context are created here and released on every exit path, so a
// cancelled run can never leak a Chrome process.
func (s *Source) FetchPage(ctx context.Context, page int, _ domain.Preferences) ([]domain.Listing, error) {
	pageURL := s.BaseURL + "/internships"
	if page > 1 {
		pageURL += fmt.Sprintf("?page=%d", page)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(httpx.RandomUserAgent()),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, s.Wait)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("div.opportunity-card, div.card", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		if stderrors.Is(ctx.Err(), context.Canceled) {
			return nil, errors.Cancelled("browser fetch cancelled", err)
		}
		// navigation failures and content-wait timeouts are transient
		return nil, errors.Transient("browser navigation", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Permanent("parsing unstop page", err)
	}

	return s.parseCards(doc, page), nil
}

func (s *Source) parseCards(doc *goquery.Document, page int) []domain.Listing {
	cards := doc.Find("div.opportunity-card")
	if cards.Length() == 0 {
		cards = doc.Find("div.card")
	}

	listings := make([]domain.Listing, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		title := text(card, "h2.opportunity-title", "h3", "h2", "div.title")
		href, _ := card.Find("a[href]").First().Attr("href")
		href = strings.TrimSpace(href)
		if title == "" && href == "" {
			s.Log.Debug("skipping unparsable unstop card", zap.Int("page", page))
			return
		}

		listings = append(listings, domain.Listing{
			Title:       title,
			Company:     text(card, "p.company-name", "div.company", "span.company"),
			StipendText: text(card, "div.prize, div.stipend", "span.stipend"),
			Location:    text(card, "div.location", "span.location"),
			Description: text(card, "div.description", "p.description"),
			PostedText:  text(card, "span.days-left", "div.posted"),
			URL:         absolutize(s.BaseURL, href),
			Source:      sourceName,
		})
	})

	s.Log.Debug("fetched unstop page",
		zap.Int("page", page),
		zap.Int("listings", len(listings)))

	return listings
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
