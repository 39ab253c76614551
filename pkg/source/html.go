package source

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/jwickham/text-sanitizer/pkg/storage"
)

// NewHTML extracts readable article text from an HTML document and wraps it
// as a text source. ref is either an http(s) URL, fetched over the network,
// or a local file path. go-readability isolates the main content and goquery
// pulls the text out of its content-bearing tags.
func NewHTML(ref string) (*Bytes, error) {
	raw, base, err := loadHTML(ref)
	if err != nil {
		return nil, err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(raw)), base)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted content: %w", err)
	}

	var sb strings.Builder
	if title := normalizeText(article.Title); title != "" {
		sb.WriteString(title)
		sb.WriteByte('\n')
	}
	doc.Find("h1,h2,h3,h4,p,li,pre,td").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			sb.WriteString(text)
			sb.WriteByte('\n')
		}
	})

	return NewBytes(sb.String()), nil
}

// loadHTML fetches ref over HTTP when it looks like a URL, otherwise reads
// it from the local filesystem. The returned base URL is what readability
// uses to resolve relative links.
func loadHTML(ref string) ([]byte, *url.URL, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		base, err := url.Parse(ref)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid HTML source URL: %w", err)
		}
		raw, err := fetchHTML(ref)
		if err != nil {
			return nil, nil, err
		}
		return raw, base, nil
	}

	s := &storage.Storage{}
	raw, err := s.ReadFile(ref)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load HTML file %s: %w", ref, err)
	}
	base, _ := url.Parse("file://" + ref)
	return raw, base, nil
}

func fetchHTML(rawURL string) ([]byte, error) {
	resp, err := http.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// normalizeText collapses a block of text to single-space-separated lines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
