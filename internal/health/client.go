package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrHTTPStatusCodeNotOK = errors.New("status code is not OK")

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Query sends an HTTP request to the health server of the other,
// long running, instance of the program.
func (c *Client) Query(ctx context.Context, address string) (err error) {
	url := "http://" + address
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("querying health server: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return fmt.Errorf("%w: %d %s: %s", ErrHTTPStatusCodeNotOK, response.StatusCode,
		http.StatusText(response.StatusCode), strings.TrimSpace(string(b)))
}
