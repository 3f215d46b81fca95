// Package api is the dashboard's client for the marketplace backend. Every
// authenticated call goes through a pipeline.Pipeline; login and signup
// inputs are validated locally before anything is sent.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-admin-dashboard/catalog"
	"github.com/jrsteele09/go-admin-dashboard/internal/config"
	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
	"github.com/jrsteele09/go-admin-dashboard/pipeline"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	headerRequestID = "X-Request-ID"
	maxBodyBytes    = 10 << 20
)

// Payload is an already encoded request body. It is kept in memory so the
// pipeline can resend it after a token refresh.
type Payload struct {
	ContentType string
	Body        []byte
}

// JSONPayload encodes v as a JSON body.
func JSONPayload(v any) (*Payload, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Payload{ContentType: "application/json", Body: b}, nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *session.Credentials
	prefs      *session.Preferences
	pipeline   *pipeline.Pipeline
	notifier   Notifier
}

type Option func(*Client)

// WithHTTPClient replaces the default client built from the configured timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithNotifier receives a localized message for every failed request.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithBaseURL overrides the configured API base URL, including the /api prefix.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func New(cfg config.APIConfig, creds *session.Credentials, prefs *session.Preferences, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.GetAPIBaseURL(), "/"),
		httpClient: &http.Client{Timeout: cfg.GetRequestTimeout()},
		creds:      creds,
		prefs:      prefs,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pipeline = pipeline.New(creds, c)
	return c
}

// Pipeline exposes the request pipeline, mainly for its Stats.
func (c *Client) Pipeline() *pipeline.Pipeline {
	return c.pipeline
}

// Language is the active UI language, English without preferences.
func (c *Client) Language() catalog.Language {
	if c.prefs == nil {
		return catalog.DefaultLanguage
	}
	return c.prefs.Language()
}

// AssetURL resolves a backend relative asset path such as a product image.
// Assets are served from the host root, not under /api.
func (c *Client) AssetURL(path string) string {
	if path == "" {
		return ""
	}
	root := strings.TrimSuffix(c.baseURL, "/api")
	return root + "/" + strings.TrimLeft(path, "/")
}

// send performs one HTTP round trip and reads the whole body. bearer may be
// empty for the unauthenticated auth endpoints.
func (c *Client) send(ctx context.Context, method, path string, body *Payload, bearer string) (*pipeline.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, catalog.Wrap(catalog.GenUnknown, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", body.ContentType)
	}
	if bearer != "" {
		(&oauth2.Token{AccessToken: bearer, TokenType: "Bearer"}).SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", apperrors.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s %s: %w", apperrors.ErrTransport, method, path, err)
	}

	return &pipeline.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
	}, nil
}

// public sends an unauthenticated request and classifies failures the same
// way the pipeline does.
func (c *Client) public(ctx context.Context, method, path string, body *Payload) (*pipeline.Response, error) {
	resp, err := c.send(ctx, method, path, body, "")
	if err != nil {
		return nil, classify(err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return resp, catalog.FromResponse(resp.StatusCode, resp.Body)
	}
	return resp, nil
}

// authenticated runs the request through the pipeline with the current token.
func (c *Client) authenticated(ctx context.Context, method, path string, body *Payload) (*pipeline.Response, error) {
	return c.pipeline.Execute(ctx, func(ctx context.Context, bearer string) (*pipeline.Response, error) {
		return c.send(ctx, method, path, body, bearer)
	})
}

// fail logs and reports a request failure and hands it back to the caller.
func (c *Client) fail(err error, method, path string) error {
	log.Warn().Err(err).
		Str("method", method).
		Str("path", path).
		Str("code", catalog.CodeOf(err).String()).
		Msg("Request failed")
	if c.notifier != nil {
		c.notifier.Notify(catalog.Describe(err, c.Language()))
	}
	return err
}

func classify(err error) error {
	var coded catalog.Coded
	if errors.As(err, &coded) {
		return err
	}
	return catalog.Wrap(catalog.GenUnknown, err)
}

// decode unmarshals a success body. Bodies that do not match degrade to the
// generic unknown error.
func decode(resp *pipeline.Response, v any) error {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return catalog.Wrap(catalog.GenUnknown, fmt.Errorf("%w: empty body", apperrors.ErrInvalidResponse))
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return catalog.Wrap(catalog.GenUnknown, fmt.Errorf("%w: %w", apperrors.ErrInvalidResponse, err))
	}
	return nil
}
