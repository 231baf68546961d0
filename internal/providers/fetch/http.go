package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/secretowatch/internal/core"
)

const (
	maxResponseSize     = 4 << 20 // 4MB limit
	maxExcerptRunes     = 200
	defaultFetchTimeout = 15 * time.Second
)

// HTTP fetches documents with a single GET. Failures are never retried
// here; the next scheduled cycle is the retry.
type HTTP struct {
	client *http.Client
}

func NewHTTP(timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTP{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (f *HTTP) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &core.FetchError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", core.AppUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &core.FetchError{URL: url, Err: fmt.Errorf("failed to fetch url: %w", err)}
	}
	defer resp.Body.Close()

	// One byte over the limit tells a complete page from a cut one
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return "", &core.FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return "", &core.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Excerpt:    excerpt(body),
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if len(body) > maxResponseSize {
		return "", &core.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response exceeds %d bytes", maxResponseSize),
		}
	}

	return string(body), nil
}

// excerpt renders the start of an error page as a single line of text.
func excerpt(body []byte) string {
	text, err := html2text.FromString(string(body), html2text.Options{OmitLinks: true})
	if err != nil {
		text = string(body)
	}

	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > maxExcerptRunes {
		text = string(runes[:maxExcerptRunes]) + "..."
	}
	return text
}
