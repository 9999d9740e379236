package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/guttosm/kol-client/internal/metrics"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie the game uses to identify a login.
const SessionCookieName = "PHPSESSID"

// maxBodySize caps how much of a page is read into memory.
const maxBodySize = 4 << 20

// errServerFault marks 5xx answers so the breaker counts them.
var errServerFault = errors.New("game server fault")

// ClientConfig holds the transport settings.
type ClientConfig struct {
	BaseURL       string
	SessionCookie string
	UserAgent     string
	Timeout       time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithCircuitBreaker guards every submission with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

// Client is the Transport backed by net/http.
type Client struct {
	base      *url.URL
	userAgent string
	http      *http.Client
	breaker   *circuitbreaker.CircuitBreaker
}

// NewClient creates a Client for the game at cfg.BaseURL.
func NewClient(cfg ClientConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", cfg.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if cfg.SessionCookie != "" {
		jar.SetCookies(base, []*http.Cookie{{Name: SessionCookieName, Value: cfg.SessionCookie}})
	}

	c := &Client{
		base:      base,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Jar: jar, Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewRequest creates an empty form request for page (for example "sellstuff.php").
func (c *Client) NewRequest(page string) FormRequest {
	return &Request{client: c, page: page, fields: url.Values{}}
}

// Breaker returns the circuit breaker guarding the client, if any.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

func (c *Client) do(ctx context.Context, r *Request) error {
	target := c.base.JoinPath(r.page)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), strings.NewReader(r.fields.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordGameRequest(r.page, 0, time.Since(start))
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, truncated, err := readBody(resp.Body, maxBodySize)
	metrics.RecordGameRequest(r.page, resp.StatusCode, time.Since(start))
	if err != nil {
		return err
	}
	if truncated {
		log.Warn().
			Str("page", r.page).
			Int("limit_bytes", maxBodySize).
			Msg("Game response truncated")
	}

	r.status = resp.StatusCode
	r.body = string(body)

	log.Debug().
		Str("page", r.page).
		Int("status_code", r.status).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Game request completed")

	if resp.StatusCode >= http.StatusInternalServerError {
		return errServerFault
	}
	return nil
}

// readBody reads at most limit bytes of rc and reports whether more were left.
func readBody(rc io.Reader, limit int64) ([]byte, bool, error) {
	body, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(body)) > limit {
		return body[:limit], true, nil
	}
	return body, false, nil
}

// Request is a FormRequest bound to a Client.
type Request struct {
	client *Client
	page   string
	fields url.Values
	status int
	body   string
}

// AddField sets a form field.
func (r *Request) AddField(name, value string) {
	r.fields.Set(name, value)
}

// Submit posts the form. A 5xx answer is recorded but not returned as an error;
// callers inspect ResponseStatus.
func (r *Request) Submit(ctx context.Context) error {
	r.status = 0
	r.body = ""

	call := func() error { return r.client.do(ctx, r) }

	var err error
	if r.client.breaker != nil {
		err = r.client.breaker.Execute(ctx, call)
	} else {
		err = call()
	}
	if errors.Is(err, errServerFault) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("submit %s: %w", r.page, err)
	}
	return nil
}

// ResponseStatus returns the HTTP status of the last submission.
func (r *Request) ResponseStatus() int {
	return r.status
}

// ResponseBody returns the body of the last submission.
func (r *Request) ResponseBody() string {
	return r.body
}

// Fields returns a copy of the accumulated form fields.
func (r *Request) Fields() url.Values {
	out := make(url.Values, len(r.fields))
	for k, v := range r.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Page returns the page the request targets.
func (r *Request) Page() string {
	return r.page
}
