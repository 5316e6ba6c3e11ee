// Package healthchecksio pings a healthchecks.io check so that
// a missed or failed renewal run raises an alert.
package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		uuid:       uuid,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

var (
	ErrStatusCode = errors.New("bad status code")
)

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

func (c *Client) Ping(ctx context.Context, state State) (err error) {
	return c.ping(ctx, state, "")
}

// Finish signals the end of a run, with the run error message
// attached to the ping when runErr is not nil.
func (c *Client) Finish(ctx context.Context, runErr error) (err error) {
	if runErr == nil {
		return c.ping(ctx, Exit0, "")
	}
	return c.ping(ctx, Exit1, runErr.Error())
}

func (c *Client) ping(ctx context.Context, state State, message string) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if state != Ok {
		url += "/" + string(state)
	}

	method := http.MethodGet
	var body *strings.Reader
	if message != "" {
		method = http.MethodPost
		body = strings.NewReader(message)
	}

	var request *http.Request
	if body == nil {
		request, err = http.NewRequestWithContext(ctx, method, url, nil)
	} else {
		request, err = http.NewRequestWithContext(ctx, method, url, body)
	}
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return fmt.Errorf("closing response body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d %s", ErrStatusCode,
			response.StatusCode, http.StatusText(response.StatusCode))
	}

	return nil
}
