package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"vocab-drills/internal/domain"
)

// maxDumpSize bounds how much of a remote dump is read.
const maxDumpSize = 16 << 20

// HTTPSource downloads the question dump, e.g. a static file served by the site.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string {
	return "http:" + s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", domain.NewSourceUnavailableError(s.Name(), err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", domain.NewSourceUnavailableError(s.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domain.NewSourceUnavailableError(s.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode)).
			WithContext("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDumpSize))
	if err != nil {
		return "", domain.NewSourceUnavailableError(s.Name(), err)
	}
	return string(body), nil
}
