package service

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/logger"
	"org-simulator/internal/metrics"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

const (
	// DefaultCompanySourceURL lists the S&P 500 constituents
	DefaultCompanySourceURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"

	constituentsTableID = "constituents"
	browserUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// FallbackCompanyNames is served when the live source is unusable
var FallbackCompanyNames = []string{
	"Acme Corp", "Globex Corporation", "Soylent Corp", "Initech",
	"Umbrella Corp", "Stark Industries", "Wayne Enterprises",
}

// CompanyNameSource returns up to limit real-world company names. An empty
// result is valid and not an error.
type CompanyNameSource interface {
	FetchCompanyNames(ctx context.Context, limit int) []string
}

// WikipediaCompanySource scrapes the constituents table of a Wikipedia list page
type WikipediaCompanySource struct {
	client *resty.Client
	url    string
	mu     sync.Mutex
	rng    *rand.Rand
}

// NewWikipediaCompanySource creates a scraper for url. seed drives the shuffle.
func NewWikipediaCompanySource(url string, timeout time.Duration, seed uint64) *WikipediaCompanySource {
	return &WikipediaCompanySource{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", browserUserAgent),
		url: url,
		rng: rand.New(rand.NewPCG(seed, seed+1)),
	}
}

// Fetch downloads the page and returns up to limit shuffled names from the
// second column of the constituents table
func (s *WikipediaCompanySource) Fetch(ctx context.Context, limit int) ([]string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: status %d", s.url, resp.StatusCode())
	}

	names, err := parseConstituents(resp.Body())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	s.mu.Unlock()

	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func parseConstituents(body []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse company page: %w", err)
	}

	table := findElementByID(doc, "table", constituentsTableID)
	if table == nil {
		return nil, apperrors.ErrNoCompanyNames
	}

	var names []string
	walk(table, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "tr" {
			return
		}
		var cells []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "td" {
				cells = append(cells, c)
			}
		}
		if len(cells) < 2 {
			return
		}
		if name := nodeText(cells[1]); name != "" {
			names = append(names, name)
		}
	})
	return names, nil
}

func findElementByID(root *html.Node, tag, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode || n.Data != tag {
			return
		}
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				found = n
				return
			}
		}
	})
	return found
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// nodeText concatenates the trimmed text nodes under n
func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(c.Data))
		}
	})
	return b.String()
}

// StaticCompanySource serves a fixed list
type StaticCompanySource struct {
	names []string
}

// NewStaticCompanySource creates a source over names
func NewStaticCompanySource(names []string) *StaticCompanySource {
	return &StaticCompanySource{names: names}
}

func (s *StaticCompanySource) FetchCompanyNames(_ context.Context, limit int) []string {
	n := min(limit, len(s.names))
	if n <= 0 {
		return nil
	}
	return append([]string(nil), s.names[:n]...)
}

// CompanyFetcher is a live source that can fail
type CompanyFetcher interface {
	Fetch(ctx context.Context, limit int) ([]string, error)
}

// ResilientCompanySource uses the live fetcher and switches to the fallback
// source on any error. Callers only see whether names came back.
type ResilientCompanySource struct {
	live     CompanyFetcher
	fallback CompanyNameSource
	metrics  *metrics.Recorder
}

// NewResilientCompanySource creates a source. live may be nil.
func NewResilientCompanySource(live CompanyFetcher, fallback CompanyNameSource, rec *metrics.Recorder) *ResilientCompanySource {
	return &ResilientCompanySource{live: live, fallback: fallback, metrics: rec}
}

func (s *ResilientCompanySource) FetchCompanyNames(ctx context.Context, limit int) []string {
	if s.live == nil {
		return s.fallback.FetchCompanyNames(ctx, limit)
	}
	names, err := s.live.Fetch(ctx, limit)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Company name source failed, using fallback names")
		s.metrics.CollaboratorFallback("company_names")
		return s.fallback.FetchCompanyNames(ctx, limit)
	}
	return names
}
