// Package pipeline runs authenticated backend calls: it refreshes an expired
// access token before the call, retries once after a 401, tears the session
// down when the token cannot be renewed, and classifies every other failure.
package pipeline

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/jrsteele09/go-admin-dashboard/catalog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Response is a fully read backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Operation performs one authenticated call with the given bearer token. It
// may be invoked twice by a single Execute, so it must be repeatable.
type Operation func(ctx context.Context, bearer string) (*Response, error)

// TokenPair is what a refresh returns. RefreshToken is nil unless the
// backend rotated it.
type TokenPair struct {
	AccessToken  string
	RefreshToken *string
}

// Refresher exchanges a refresh token for a new access token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// CredentialStore is the part of session.Credentials the pipeline uses.
type CredentialStore interface {
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
	SetTokens(access string, refresh *string) error
	Clear() error
	IsAccessTokenValid() bool
}

// Stats counts pipeline activity since creation.
type Stats struct {
	Executions int64
	Refreshes  int64
	Retries    int64
	Teardowns  int64
}

type Pipeline struct {
	creds     CredentialStore
	refresher Refresher

	// refreshes in flight, keyed by the access token they replace
	inflight singleflight.Group

	executions atomic.Int64
	refreshes  atomic.Int64
	retries    atomic.Int64
	teardowns  atomic.Int64
}

func New(creds CredentialStore, refresher Refresher) *Pipeline {
	return &Pipeline{
		creds:     creds,
		refresher: refresher,
	}
}

// Execute runs op with the current access token.
//
// It returns ErrNoCredential when there is no token and ErrSessionExpired
// when a needed refresh fails. A response with status >= 400 is returned
// together with a *catalog.Error describing it. A transport error becomes a
// *catalog.Error with catalog.GenUnknown.
func (p *Pipeline) Execute(ctx context.Context, op Operation) (*Response, error) {
	p.executions.Add(1)

	bearer, ok := p.creds.AccessToken()
	if !ok {
		return nil, ErrNoCredential
	}

	st := stateValid
	if !p.creds.IsAccessTokenValid() {
		st = stateExpired
	}

	refreshed := false
	for {
		switch st {
		case stateExpired:
			log.Debug().Msg("Access token expired, refreshing before request")
			st = stateRefreshing

		case stateRefreshing:
			refreshed = true
			next, err := p.refresh(ctx, bearer)
			if err != nil {
				log.Warn().Err(err).Msg("Token refresh failed, clearing session")
				st = stateFailed
				continue
			}
			bearer = next
			st = stateValid

		case stateFailed:
			p.teardown()
			return nil, ErrSessionExpired

		case stateValid:
			resp, err := op(ctx, bearer)
			if err != nil {
				return nil, classifyTransport(err)
			}
			if resp == nil {
				return nil, catalog.Wrap(catalog.GenUnknown, errNoResponse)
			}
			if resp.StatusCode == http.StatusUnauthorized && !refreshed {
				log.Debug().Msg("Request unauthorized, refreshing and retrying once")
				p.retries.Add(1)
				st = stateRefreshing
				continue
			}
			if resp.StatusCode >= http.StatusBadRequest {
				return resp, catalog.FromResponse(resp.StatusCode, resp.Body)
			}
			return resp, nil
		}
	}
}

// refresh replaces stale with a new access token. Concurrent callers holding
// the same stale token share one refresh call. The refresh is detached from
// the caller's cancellation so one caller leaving does not fail the rest.
func (p *Pipeline) refresh(ctx context.Context, stale string) (string, error) {
	ctx = context.WithoutCancel(ctx)
	v, err, shared := p.inflight.Do(stale, func() (any, error) {
		// a caller that finished just before us may already have replaced it
		if current, ok := p.creds.AccessToken(); ok && current != stale && p.creds.IsAccessTokenValid() {
			return current, nil
		}

		refreshToken, ok := p.creds.RefreshToken()
		if !ok {
			return "", errNoRefreshToken
		}

		p.refreshes.Add(1)
		pair, err := p.refresher.Refresh(ctx, refreshToken)
		if err != nil {
			return "", err
		}
		if pair == nil || pair.AccessToken == "" {
			return "", errEmptyAccess
		}
		if err := p.creds.SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
			return "", err
		}
		log.Debug().Bool("rotated_refresh", pair.RefreshToken != nil).Msg("Access token refreshed")
		return pair.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		log.Debug().Msg("Joined in-flight token refresh")
	}
	return v.(string), nil
}

func (p *Pipeline) teardown() {
	p.teardowns.Add(1)
	if err := p.creds.Clear(); err != nil {
		log.Err(err).Msg("Failed to clear session after refresh failure")
	}
}

func classifyTransport(err error) error {
	var coded catalog.Coded
	if errors.As(err, &coded) {
		return err
	}
	return catalog.Wrap(catalog.GenUnknown, err)
}

// Stats returns a snapshot of the counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Executions: p.executions.Load(),
		Refreshes:  p.refreshes.Load(),
		Retries:    p.retries.Load(),
		Teardowns:  p.teardowns.Load(),
	}
}
