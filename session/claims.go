package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
	"golang.org/x/oauth2"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims is what the dashboard reads from an access token payload. The
// signature is not checked here; the backend does that on every call.
type Claims struct {
	Subject   string
	Role      string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ParseClaims decodes the payload segment of a JWT. Tokens that are not three
// segments, not JSON, or that carry no exp claim are rejected.
func ParseClaims(rawToken string) (*Claims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, apperrors.ErrEmptyToken
	}

	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}
	if exp == nil {
		return nil, fmt.Errorf("%w: missing exp claim", apperrors.ErrInvalidToken)
	}

	c := &Claims{ExpiresAt: exp.Time}
	c.Subject, _ = claims.GetSubject()
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	c.Role, _ = claims["role"].(string)
	if roles, ok := claims["roles"].([]any); ok {
		for _, r := range roles {
			if name, ok := r.(string); ok {
				c.Roles = append(c.Roles, name)
			}
		}
	}
	return c, nil
}

// Expired reports whether the token is at or past its expiry.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// HasRole checks the single role claim and the roles list, ignoring case.
func (c *Claims) HasRole(role string) bool {
	if strings.EqualFold(c.Role, role) {
		return true
	}
	for _, r := range c.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// OAuth2Token wraps the raw access token with the decoded expiry.
func (c *Claims) OAuth2Token(rawToken string) *oauth2.Token {
	return &oauth2.Token{
		AccessToken: rawToken,
		TokenType:   "Bearer",
		Expiry:      c.ExpiresAt,
	}
}
