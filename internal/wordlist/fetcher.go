package wordlist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/wordlist/mock_fetcher.go -package=mock_wordlist Fetcher

// Fetcher returns the raw text behind a resource locator, decoded to UTF-8.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// TransportError reports a word list that could not be fetched.
type TransportError struct {
	Locator string
	// StatusCode is set when an HTTP server answered with a non-success status.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: HTTP status %d", e.Locator, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Locator, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FileFetcher reads word lists from the local file system.
type FileFetcher struct {
	charset string
}

func NewFileFetcher(fallbackCharset string) *FileFetcher {
	return &FileFetcher{charset: fallbackCharset}
}

func (f *FileFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Locator: locator, Err: err}
	}

	contents, err := os.ReadFile(locator)
	if err != nil {
		return nil, &TransportError{Locator: locator, Err: fmt.Errorf("os.ReadFile > %w", err)}
	}
	decoded, err := decodeText(contents, "", f.charset)
	if err != nil {
		return nil, &TransportError{Locator: locator, Err: err}
	}
	return decoded, nil
}

// HTTPFetcher downloads word lists over HTTP.
type HTTPFetcher struct {
	client  *resty.Client
	charset string
}

func NewHTTPFetcher(timeout time.Duration, fallbackCharset string) *HTTPFetcher {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPFetcher{
		client:  client,
		charset: fallbackCharset,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(locator)
	if err != nil {
		return nil, &TransportError{Locator: locator, Err: fmt.Errorf("client.R.Get > %w", err)}
	}
	if !res.IsSuccess() {
		return nil, &TransportError{Locator: locator, StatusCode: res.StatusCode()}
	}

	decoded, err := decodeText(res.Body(), res.Header().Get("Content-Type"), f.charset)
	if err != nil {
		return nil, &TransportError{Locator: locator, Err: err}
	}
	return decoded, nil
}

// SchemeFetcher sends http and https locators to an HTTP fetcher and everything else to a file fetcher.
type SchemeFetcher struct {
	HTTP Fetcher
	File Fetcher
}

func (f *SchemeFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if IsRemote(locator) {
		return f.HTTP.Fetch(ctx, locator)
	}
	return f.File.Fetch(ctx, locator)
}

// IsRemote reports whether locator points at an HTTP resource.
func IsRemote(locator string) bool {
	lower := strings.ToLower(locator)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// decodeText converts contents to UTF-8. The charset of contentType wins;
// without one, fallbackCharset is assumed. A byte order mark overrides both.
func decodeText(contents []byte, contentType string, fallbackCharset string) ([]byte, error) {
	if len(contents) == 0 {
		return contents, nil
	}

	mediaType := "text/plain"
	params := map[string]string{}
	if contentType != "" {
		if mt, p, err := mime.ParseMediaType(contentType); err == nil {
			mediaType = mt
			params = p
		}
	}
	if _, ok := params["charset"]; !ok {
		if fallbackCharset == "" {
			fallbackCharset = "utf-8"
		}
		params["charset"] = fallbackCharset
	}

	reader, err := charset.NewReader(bytes.NewReader(contents), mime.FormatMediaType(mediaType, params))
	if err != nil {
		return nil, fmt.Errorf("charset.NewReader > %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return decoded, nil
}
