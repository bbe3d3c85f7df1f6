package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Kotlang/opsGo/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ApiError is a non-2xx backend response normalized into an error. Message is
// taken from the body's "message" or "error" field, falling back to the HTTP
// status text.
type ApiError struct {
	Status  int
	Body    string
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

var apiCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ops_backend_requests_total",
	Help: "Requests made to the marketplace backend by method and status code.",
}, []string{"method", "code"})

// Client is the single funnel for marketplace backend calls. It attaches the
// operator bearer token from the request context to every call, so no call
// site can forget it.
type Client struct {
	baseUrl    string
	httpClient *http.Client
}

func NewClient(baseUrl string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// HTTPClient exposes the underlying client for tests.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

func Call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) (*T, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	requestUrl := c.baseUrl + path
	if len(query) > 0 {
		requestUrl += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestUrl, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if session := auth.GetSession(ctx); session != nil {
		req.Header.Set("Authorization", "bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiCalls.WithLabelValues(method, "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	apiCalls.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newApiError(resp.StatusCode, raw, resp.Status)
	}

	result := new(T)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func newApiError(status int, body []byte, statusText string) *ApiError {
	message := statusText

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			message = parsed.Message
		} else if parsed.Error != "" {
			message = parsed.Error
		}
	}

	return &ApiError{Status: status, Body: string(body), Message: message}
}
