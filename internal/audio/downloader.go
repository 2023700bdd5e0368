package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// Downloader fetches pronunciation audio and keeps it in a FileCache.
type Downloader struct {
	httpClient       *resty.Client
	baseURL          string
	cache            *FileCache
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewDownloader(baseURL string, cacheDirectory string, timeout time.Duration, retryAttempts uint) *Downloader {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Downloader{
		httpClient:       client,
		baseURL:          baseURL,
		cache:            NewFileCache(cacheDirectory),
		maxRetryAttempts: retryAttempts,
		retryDelay:       200 * time.Millisecond,
	}
}

func (d *Downloader) Close() error {
	return d.httpClient.Close()
}

type statusError struct {
	statusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("response error %d", e.statusCode)
}

// isRetryableError reports whether a failed download may succeed on another attempt.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.statusCode >= http.StatusInternalServerError ||
			statusErr.statusCode == http.StatusTooManyRequests
	}
	return !errors.Is(err, context.Canceled)
}

// Download returns the path of a local file holding the pronunciation of term.
func (d *Downloader) Download(ctx context.Context, term string, accent Accent) (string, error) {
	path, err := d.cache.cache(term, accent, func() ([]byte, error) {
		var body []byte
		if err := retry.Do(
			func() error {
				contents, err := d.download(ctx, term, accent)
				if err != nil {
					if !isRetryableError(err) {
						return retry.Unrecoverable(err)
					}
					return err
				}
				body = contents
				return nil
			},
			retry.Context(ctx),
			retry.Attempts(d.maxRetryAttempts+1),
			retry.Delay(d.retryDelay),
			retry.LastErrorOnly(true),
			retry.OnRetry(func(n uint, err error) {
				slog.Default().Debug("retrying a pronunciation download",
					slog.String("term", term),
					slog.Uint64("attempt", uint64(n+1)),
					slog.Any("error", err),
				)
			}),
			retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
				return retry.BackOffDelay(n, err, config)
			}),
		); err != nil {
			return nil, err
		}
		return body, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache > %w", err)
	}
	return path, nil
}

func (d *Downloader) download(ctx context.Context, term string, accent Accent) ([]byte, error) {
	u, err := URL(d.baseURL, term, accent)
	if err != nil {
		return nil, err
	}

	response, err := d.httpClient.R().
		SetContext(ctx).
		Get(u)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &statusError{statusCode: response.StatusCode()}
	}
	body := response.Bytes()
	if len(body) == 0 {
		return nil, fmt.Errorf("empty audio for %s", term)
	}
	return body, nil
}
