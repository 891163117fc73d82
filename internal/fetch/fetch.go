package fetch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	UserAgent = "friidrett-stats/1.0 (github.com/pfrederiksen/friidrett-stats)"
	Timeout   = 60 * time.Second

	maxRetries = 3
)

// Client fetches pages through an on-disk cache. When Refresh is set, cached
// copies are ignored and rewritten.
type Client struct {
	http     *http.Client
	cacheDir string
	refresh  bool
}

func New(cacheDir string, refresh bool) *Client {
	return &Client{
		http:     &http.Client{Timeout: Timeout},
		cacheDir: cacheDir,
		refresh:  refresh,
	}
}

// Get returns the page bytes for url, from cache when available. fromCache
// lets callers skip politeness delays for pages that never hit the network.
func (c *Client) Get(ctx context.Context, url string) (data []byte, fromCache bool, err error) {
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		return nil, false, fmt.Errorf("creating cache dir: %w", err)
	}
	cachePath := filepath.Join(c.cacheDir, CacheFilename(url))

	if !c.refresh {
		if cached, err := os.ReadFile(cachePath); err == nil {
			return cached, true, nil
		}
	}

	data, err = c.download(ctx, url)
	if err != nil {
		return nil, false, err
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return nil, false, fmt.Errorf("writing cache file: %w", err)
	}
	return data, false, nil
}

func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return body, nil
}

var nonAlnumRE = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// CacheFilename builds a stable, readable cache filename for a URL: a slug of
// the URL without its scheme plus a short content-independent digest.
func CacheFilename(url string) string {
	sum := sha1.Sum([]byte(url))
	digest := hex.EncodeToString(sum[:])[:16]

	path := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	slug := strings.ToLower(strings.Trim(nonAlnumRE.ReplaceAllString(path, "_"), "_"))
	if len(slug) > 80 {
		slug = slug[:80]
	}
	if slug == "" {
		slug = "page"
	}
	return slug + "_" + digest + ".html"
}

// DecodeHTML converts possibly legacy-encoded page bytes (ISO-8859-1 is
// common on the older sources) to UTF-8, sniffing the charset from the
// document itself when contentType gives no hint.
func DecodeHTML(raw []byte, contentType string) ([]byte, error) {
	enc, _, _ := charset.DetermineEncoding(raw, contentType)
	if enc == nil || enc == encoding.Nop {
		return raw, nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}
	return decoded, nil
}
