package dataset

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

const DefaultTimeout = 15 * time.Second

// HTTPSource fetches the dataset from a JSON endpoint such as /data.
type HTTPSource struct {
	URL     string
	Timeout time.Duration
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{URL: url, Timeout: DefaultTimeout}
}

func (s *HTTPSource) String() string { return s.URL }

// Fetch decodes the body as JSON whatever Content-Type the server sends.
func (s *HTTPSource) Fetch(ctx context.Context) (Dataset, error) {
	client := resty.New()
	defer client.Close()
	if s.Timeout > 0 {
		client.SetTimeout(s.Timeout)
	}

	var d Dataset
	res, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetForceResponseContentType("application/json").
		SetResult(&d).
		Get(s.URL)
	if err != nil {
		return nil, &SourceError{Source: s.URL, Wrapped: err}
	}
	if res.IsError() {
		return nil, &SourceError{Source: s.URL, Wrapped: fmt.Errorf("unexpected status %s", res.Status())}
	}
	return d, nil
}
