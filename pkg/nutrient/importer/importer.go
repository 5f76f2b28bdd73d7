// Package importer builds catalog entries from a manufacturer's product page.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"growlog/pkg/apperr"
)

var (
	ErrDomainNotAllowed = errors.New("domain not allowed")
	// ErrFetchFailed covers everything that goes wrong on the remote side.
	ErrFetchFailed = errors.New("fetch failed")
)

// Page is what could be read off a product page.
type Page struct {
	Name   string
	Detail string
}

type Importer struct {
	client   *http.Client
	allow    map[string]bool
	maxBytes int
}

func New(allowed []string, maxBytes int) *Importer {
	allow := map[string]bool{}
	for _, h := range allowed {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			allow[h] = true
		}
	}
	return &Importer{client: &http.Client{Timeout: 20 * time.Second}, allow: allow, maxBytes: maxBytes}
}

// Fetch reads the product page at raw. A malformed URL is a validation
// error; remote failures wrap ErrFetchFailed.
func (im *Importer) Fetch(ctx context.Context, raw string) (*Page, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return nil, apperr.NewValidation("url", "enter a valid URL")
	}
	if !im.allow[strings.ToLower(u.Hostname())] {
		return nil, fmt.Errorf("%s: %w", u.Hostname(), ErrDomainNotAllowed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, apperr.NewValidation("url", "enter a valid URL")
	}
	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetchFailed, u, resp.StatusCode)
	}
	if resp.ContentLength > int64(im.maxBytes) {
		return nil, fmt.Errorf("%w: page too large", ErrFetchFailed)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("%w: unsupported content-type: %s", ErrFetchFailed, ct)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(im.maxBytes)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return parse(doc), nil
}

func parse(doc *goquery.Document) *Page {
	p := &Page{
		Name:   meta(doc, `meta[property="og:title"]`),
		Detail: meta(doc, `meta[name="description"]`),
	}
	if p.Name == "" {
		p.Name = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if p.Name == "" {
		p.Name = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if p.Detail == "" {
		var parts []string
		sel := doc.Find("main, article")
		if sel.Length() == 0 {
			sel = doc.Selection
		}
		sel.Find("p,li").Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				parts = append(parts, t)
			}
		})
		p.Detail = cleanWhitespace(strings.Join(parts, "\n"))
	}
	return p
}

func meta(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}

var wsRX = regexp.MustCompile(`[ \t]+`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, " ")
}
