package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mvdan.cc/xurls/v2"
)

var (
	ErrNoURL      = errors.New("url not found")
	ErrNoRedirect = errors.New("url has no redirect")
)

// FindURLs returns every url in text. Urls without a scheme get http://.
func FindURLs(text string) ([]string, error) {
	urls := xurls.Relaxed().FindAllString(text, -1)
	for i, u := range urls {
		if !strings.HasPrefix(u, "http") {
			urls[i] = "http://" + u
		}
	}

	if len(urls) == 0 {
		return []string{}, ErrNoURL
	}
	return urls, nil
}

// StripURLs blanks out every url of text.
func StripURLs(text string) string {
	return xurls.Relaxed().ReplaceAllString(text, " ")
}

// Resolver expands short urls by following their redirects.
type Resolver struct {
	client       *http.Client
	maxRedirects int
}

// NewResolver returns a Resolver giving up after timeout or maxRedirects hops.
func NewResolver(timeout time.Duration, maxRedirects int) *Resolver {
	return &Resolver{
		client:       &http.Client{Timeout: timeout},
		maxRedirects: maxRedirects,
	}
}

// Resolve returns shortURL followed by every redirect hop that changed the
// path.
func (r *Resolver) Resolve(ctx context.Context, shortURL string) ([]string, error) {
	if _, err := url.Parse(shortURL); err != nil {
		return []string{}, err
	}

	result := append(make([]string, 0), shortURL)
	client := *r.client
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= r.maxRedirects {
			return fmt.Errorf("stopped after %d redirects", r.maxRedirects)
		}

		newRaw := req.URL.String()
		valid, err := isChangeValid(result[len(result)-1], newRaw)
		if err != nil {
			return http.ErrUseLastResponse
		}
		if valid {
			result = append(result, newRaw)
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		return []string{}, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return []string{}, err
	}
	defer resp.Body.Close()

	if len(result) > 1 {
		return result, nil
	}
	return []string{}, fmt.Errorf("%w: %s", ErrNoRedirect, shortURL)
}

func isChangeValid(oldRaw string, newRaw string) (bool, error) {
	oldURL, err := url.Parse(oldRaw)
	if err != nil {
		return false, err
	}

	newURL, err := url.Parse(newRaw)
	if err != nil {
		return false, err
	}

	if oldURL.Path == newURL.Path {
		return false, nil
	}
	return true, nil
}
