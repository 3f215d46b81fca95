package session

import (
	"errors"
	"fmt"
	"sync"

	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
	"github.com/rs/zerolog/log"
)

// Session is a point in time copy of the stored credentials.
type Session struct {
	AccessToken  string
	RefreshToken string
	PendingPhone string
}

// Authenticated reports whether an access token is present.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// Credentials is the single owner of the session keys in a Store. Every
// mutation goes straight to the store so it survives a restart and is seen
// by the next read. Create one per process and share it.
type Credentials struct {
	store Store
	lock  sync.RWMutex
}

func NewCredentials(store Store) *Credentials {
	return &Credentials{store: store}
}

// AccessToken returns the current bearer token. Older sessions that only
// stored the legacy key are still honoured.
func (c *Credentials) AccessToken() (string, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.accessTokenLocked()
}

func (c *Credentials) accessTokenLocked() (string, bool) {
	if token, ok := c.get(keyAccessToken); ok {
		return token, true
	}
	return c.get(keyLegacyToken)
}

func (c *Credentials) RefreshToken() (string, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.get(keyRefreshToken)
}

// PendingPhone is the normalized phone that requested an OTP and has not yet
// verified it.
func (c *Credentials) PendingPhone() (string, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.get(keyPendingPhone)
}

// Snapshot reads every session field under one lock.
func (c *Credentials) Snapshot() Session {
	c.lock.RLock()
	defer c.lock.RUnlock()
	access, _ := c.accessTokenLocked()
	refresh, _ := c.get(keyRefreshToken)
	phone, _ := c.get(keyPendingPhone)
	return Session{AccessToken: access, RefreshToken: refresh, PendingPhone: phone}
}

// SetTokens stores a server issued access token. A nil refresh token leaves
// the stored one untouched, which is what access-only flows expect.
func (c *Credentials) SetTokens(access string, refresh *string) error {
	if access == "" {
		return apperrors.ErrEmptyToken
	}

	values := map[string]string{
		keyAccessToken: access,
		keyLegacyToken: access,
	}
	if refresh != nil && *refresh != "" {
		values[keyRefreshToken] = *refresh
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if err := c.store.Put(values); err != nil {
		return fmt.Errorf("%w: storing tokens: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (c *Credentials) SetPendingPhone(phone string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if err := c.store.Put(map[string]string{keyPendingPhone: phone}); err != nil {
		return fmt.Errorf("%w: storing pending phone: %w", apperrors.ErrStorage, err)
	}
	return nil
}

// Clear removes every session field in one store call. It is safe to call on
// an empty session. The language preference is not part of the session.
func (c *Credentials) Clear() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if err := c.store.Delete(sessionKeys...); err != nil {
		return fmt.Errorf("%w: clearing session: %w", apperrors.ErrStorage, err)
	}
	return nil
}

// Claims decodes the current access token.
func (c *Credentials) Claims() (*Claims, error) {
	token, ok := c.AccessToken()
	if !ok {
		return nil, apperrors.ErrEmptyToken
	}
	return ParseClaims(token)
}

// IsAccessTokenValid is false when there is no token, when it cannot be
// decoded, or when its expiry is not after now. It never fails.
func (c *Credentials) IsAccessTokenValid() bool {
	claims, err := c.Claims()
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmptyToken) {
			log.Debug().Err(err).Msg("Access token could not be decoded")
		}
		return false
	}
	return !claims.Expired(NowTimeFunc())
}

// get treats storage failures as an absent value so callers fail closed.
func (c *Credentials) get(key string) (string, bool) {
	value, err := c.store.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("key", key).Msg("Session store read failed")
		}
		return "", false
	}
	return value, value != ""
}
