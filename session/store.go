// Package session owns the dashboard's durable, process-wide session state:
// the access and refresh tokens, the phone awaiting OTP confirmation and the
// UI language preference.
package session

import (
	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
)

// ErrNotFound is returned by Store.Get for a missing key.
var ErrNotFound = apperrors.ErrNotFound

// Storage keys. keyLegacyToken mirrors the access token for older clients
// that only read "token".
const (
	keyAccessToken  = "accessToken"
	keyLegacyToken  = "token"
	keyRefreshToken = "refreshToken"
	keyPendingPhone = "phone"
	keyLanguage     = "language"
)

var sessionKeys = []string{keyAccessToken, keyLegacyToken, keyRefreshToken, keyPendingPhone}

// Store is a durable key/value backend. Writes must be visible to the next
// read, and Put and Delete must apply all keys or none.
type Store interface {
	// Get returns ErrNotFound when the key is absent
	Get(key string) (string, error)

	// Put writes every value in one operation
	Put(values map[string]string) error

	// Delete removes the keys. Missing keys are not an error.
	Delete(keys ...string) error
}
