package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	DefaultTimeout = 10 * time.Second
	defaultBackoff = 100 * time.Millisecond
	maxBodyBytes   = 1 << 20
)

// Client envuelve *http.Client para adapters que hablan JSON con servicios externos.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	// Headers se envían en cada request (p.ej. Authorization del relay de mail).
	Headers map[string]string

	attempts int
	backoff  time.Duration
}

type Option func(*Client)

// WithRetry reintenta errores de red y respuestas 429/502/503/504.
// La espera crece lineal: backoff, 2*backoff, ...
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(c *Client) {
		if attempts > 1 {
			if backoff <= 0 {
				backoff = defaultBackoff
			}
			c.attempts = attempts
			c.backoff = backoff
		}
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(c *Client) { c.HTTP.Transport = tr }
}

func WithHeader(k, v string) Option {
	return func(c *Client) {
		if strings.TrimSpace(k) != "" {
			c.Headers[k] = v
		}
	}
}

// New valida baseURL (puede ser vacío si siempre se usan URLs absolutas).
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		HTTP:     &http.Client{Timeout: timeout},
		Headers:  map[string]string{},
		attempts: 1,
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
		c.BaseURL = strings.TrimRight(baseURL, "/")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// DoJSON serializa in (si no es nil), ejecuta el request y decodifica en out (si no es nil).
// Respuestas no-2xx devuelven *HTTPError, después de agotar los reintentos configurados.
func (c *Client) DoJSON(ctx context.Context, method, pathOrURL string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var payload []byte
	if in != nil {
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
	}

	var raw []byte
	call := func(ctx context.Context) error {
		var err error
		raw, err = c.do(ctx, method, fullURL, payload, in != nil)
		if err != nil && retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	}
	if err := retry.Do(ctx, c.policy(), call); err != nil {
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// policy: espera lineal (backoff, 2*backoff, ...) hasta attempts intentos en total.
func (c *Client) policy() retry.Backoff {
	if c.attempts <= 1 {
		return retry.WithMaxRetries(0, retry.NewConstant(defaultBackoff))
	}
	return retry.WithMaxRetries(uint64(c.attempts-1), retry.NewLinear(c.backoff))
}

func (c *Client) do(ctx context.Context, method, fullURL string, payload []byte, hasBody bool) ([]byte, error) {
	var body io.Reader
	if hasBody {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

func retryable(err error) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		// red o timeout; un ctx cancelado no se reintenta
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	switch httpErr.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	switch {
	case pathOrURL == "":
		return "", errors.New("httpclient: empty url")
	case strings.HasPrefix(pathOrURL, "http://"), strings.HasPrefix(pathOrURL, "https://"):
		return pathOrURL, nil
	case c.BaseURL == "":
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
