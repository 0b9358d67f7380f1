// backend/internal/scraping/collectors/editais/collector.go
package editais

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"github.com/ps-vitor/editais-sys/backend/internal/config"
	"github.com/ps-vitor/editais-sys/backend/internal/domain"
	"github.com/ps-vitor/editais-sys/backend/pkg/logger"
)

// Collector fetches a single listing page and extracts its cards using the
// selector rules of the configured site.
type Collector struct {
	client *resty.Client
	site   config.SiteConfig
	log    *logger.Logger
}

func NewCollector(site config.SiteConfig, log *logger.Logger) *Collector {
	client := resty.New()
	client.SetTimeout(site.TimeoutDuration())
	client.SetHeaders(site.Headers)
	if site.UserAgent != "" {
		client.SetHeader("User-Agent", site.UserAgent)
	}
	if site.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	return &Collector{
		client: client,
		site:   site,
		log:    log,
	}
}

// Collect performs one GET against the site. It never returns an error:
// failures are reported as a TransportFailure outcome.
func (c *Collector) Collect(ctx context.Context) domain.Outcome {
	url := c.site.URL

	res, err := c.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return domain.TransportFailure(url, err)
	}
	if !res.IsSuccess() {
		return domain.TransportFailure(url, fmt.Errorf("unexpected status %d for %s", res.StatusCode(), url))
	}
	c.log.DebugContext(ctx, "page fetched", "url", url, "status", res.StatusCode(), "bytes", len(res.Body()))

	// decode using the declared charset, falling back to sniffing the page
	body, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return domain.TransportFailure(url, fmt.Errorf("decode body of %s: %w", url, err))
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return domain.TransportFailure(url, fmt.Errorf("read body of %s: %w", url, err))
	}

	return domain.Matched(url, ExtractCards(doc, c.site.Selectors))
}

// ExtractCards applies the selector rules to a parsed page. Only the first
// match of each field selector inside a card is used.
func ExtractCards(doc *goquery.Document, rules config.SelectorRules) []domain.Card {
	var cards []domain.Card

	doc.Find(rules.Card).Each(func(_ int, s *goquery.Selection) {
		card := domain.Card{}

		if title := s.Find(rules.Title).First(); title.Length() > 0 {
			card.Title = strings.TrimSpace(title.Text())
			card.HasTitle = true
		}

		if deadline := s.Find(rules.Deadline).First(); deadline.Length() > 0 {
			card.Deadline = strings.TrimSpace(deadline.Text())
			card.HasDeadline = true
		}

		// anchors without href count as missing
		if href, ok := s.Find(rules.Link).First().Attr("href"); ok {
			card.Link = href
			card.HasLink = true
		}

		cards = append(cards, card)
	})

	return cards
}
