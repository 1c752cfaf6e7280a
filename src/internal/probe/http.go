package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/utils"
)

// HTTPChecker treats any HTTP response from its URL as reachable, whatever
// the status code. Redirects are not followed.
type HTTPChecker struct {
	url    string
	client *http.Client
}

// NewHTTPChecker creates an HTTP check against url.
func NewHTTPChecker(url string, timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		url: url,
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *HTTPChecker) IsReachable(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false, errors.NewProbeError("failed to build request", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errors.NewProbeError("request failed", err)
	}
	utils.CloseOrWarn(resp.Body, "probe response body")
	return true, nil
}

func (c *HTTPChecker) Target() string {
	return c.url
}
