package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-admin-dashboard/catalog"
	apperrors "github.com/jrsteele09/go-admin-dashboard/internal/errors"
	"github.com/jrsteele09/go-admin-dashboard/internal/utils"
	"github.com/jrsteele09/go-admin-dashboard/pipeline"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/jrsteele09/go-admin-dashboard/validation"
	"github.com/rs/zerolog/log"
)

const (
	pathRegister  = "/auth/register"
	pathLogin     = "/auth/login"
	pathVerifyOTP = "/auth/verify-otp"
	pathRefresh   = "/auth/refresh"

	userSourceDashboard = "dashboard"
)

type accountError string

func (e accountError) Error() string {
	return string(e)
}

func (accountError) ErrorCode() catalog.Code {
	return catalog.AuthInsufficientPermissions
}

// ErrAccountUnderReview is returned by VerifyOTP when the account exists but
// is not an admin yet. The session is cleared before it is returned.
var ErrAccountUnderReview error = accountError("account is under review, please wait for approval")

type RegisterRequest struct {
	Name  string
	Phone string
}

type RegisterResult struct {
	// Phone is the normalized phone the OTP was sent to.
	Phone string
	Data  json.RawMessage
}

type registerBody struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	UserSource string `json:"user_source"`
}

// Register creates a dashboard account and records the phone awaiting OTP.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	name := strings.TrimSpace(req.Name)
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidatePhone(req.Phone); err != nil {
		return nil, err
	}
	phone := validation.NormalizePhone(req.Phone)

	payload, err := JSONPayload(registerBody{Name: name, Phone: phone, UserSource: userSourceDashboard})
	if err != nil {
		return nil, catalog.Wrap(catalog.GenUnknown, err)
	}
	resp, err := c.public(ctx, http.MethodPost, pathRegister, payload)
	if err != nil {
		return nil, c.fail(err, http.MethodPost, pathRegister)
	}

	if err := c.creds.SetPendingPhone(phone); err != nil {
		return nil, catalog.Wrap(catalog.GenUnknown, err)
	}
	log.Info().Str("phone", phone).Msg("Registration submitted, OTP pending")
	return &RegisterResult{Phone: phone, Data: json.RawMessage(resp.Body)}, nil
}

type phoneBody struct {
	Phone string `json:"phone"`
}

// Login requests an OTP for phone and records it as the pending phone. It
// returns the normalized phone.
func (c *Client) Login(ctx context.Context, phone string) (string, error) {
	if err := validation.ValidatePhone(phone); err != nil {
		return "", err
	}
	normalized := validation.NormalizePhone(phone)

	payload, err := JSONPayload(phoneBody{Phone: normalized})
	if err != nil {
		return "", catalog.Wrap(catalog.GenUnknown, err)
	}
	if _, err := c.public(ctx, http.MethodPost, pathLogin, payload); err != nil {
		return "", c.fail(err, http.MethodPost, pathLogin)
	}

	if err := c.creds.SetPendingPhone(normalized); err != nil {
		return "", catalog.Wrap(catalog.GenUnknown, err)
	}
	log.Info().Str("phone", normalized).Msg("OTP requested")
	return normalized, nil
}

type verifyBody struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// VerifyOTP confirms the OTP for phone, or for the pending phone when phone
// is empty, and stores the issued tokens. Only admins keep their session.
func (c *Client) VerifyOTP(ctx context.Context, otp, phone string) (*TokenResponse, error) {
	if phone == "" {
		pending, ok := c.creds.PendingPhone()
		if !ok {
			return nil, catalog.New(catalog.ValInvalidPhone)
		}
		phone = pending
	}
	phone = validation.NormalizePhone(phone)
	if err := validation.ValidateCanonicalPhone(phone); err != nil {
		return nil, err
	}
	otp = strings.TrimSpace(otp)
	if err := validation.ValidateOTP(otp); err != nil {
		return nil, err
	}

	payload, err := JSONPayload(verifyBody{Phone: phone, OTP: otp})
	if err != nil {
		return nil, catalog.Wrap(catalog.GenUnknown, err)
	}
	resp, err := c.public(ctx, http.MethodPost, pathVerifyOTP, payload)
	if err != nil {
		return nil, c.fail(err, http.MethodPost, pathVerifyOTP)
	}

	var tokens TokenResponse
	if err := decode(resp, &tokens); err != nil {
		return nil, c.fail(err, http.MethodPost, pathVerifyOTP)
	}
	if tokens.AccessToken == nil || *tokens.AccessToken == "" {
		return nil, c.fail(catalog.Wrap(catalog.GenUnknown, fmt.Errorf("%w: no access token", apperrors.ErrInvalidResponse)), http.MethodPost, pathVerifyOTP)
	}
	if err := c.creds.SetTokens(*tokens.AccessToken, tokens.RefreshToken); err != nil {
		return nil, catalog.Wrap(catalog.GenUnknown, err)
	}

	if !isAdmin(&tokens, *tokens.AccessToken) {
		if err := c.creds.Clear(); err != nil {
			log.Err(err).Msg("Failed to clear non-admin session")
		}
		log.Info().Str("phone", phone).Msg("Account is not an admin yet")
		return &tokens, ErrAccountUnderReview
	}

	log.Info().Str("phone", phone).Msg("Admin signed in")
	return &tokens, nil
}

// isAdmin trusts the user object the backend returned and falls back to the
// role claims in the access token.
func isAdmin(tokens *TokenResponse, accessToken string) bool {
	if tokens.User != nil && tokens.User.Role != "" {
		return strings.EqualFold(tokens.User.Role, RoleAdmin)
	}
	claims, err := session.ParseClaims(accessToken)
	if err != nil {
		return false
	}
	return claims.HasRole(RoleAdmin)
}

type refreshBody struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh exchanges refreshToken for a new access token. It is the
// pipeline's Refresher and does not touch the stored session itself.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*pipeline.TokenPair, error) {
	payload, err := JSONPayload(refreshBody{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	resp, err := c.public(ctx, http.MethodPost, pathRefresh, payload)
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decode(resp, &tokens); err != nil {
		return nil, err
	}
	if tokens.AccessToken == nil || *tokens.AccessToken == "" {
		return nil, fmt.Errorf("%w: refresh returned no access token", apperrors.ErrInvalidResponse)
	}
	// an empty refresh_token means the backend did not rotate it
	return &pipeline.TokenPair{
		AccessToken:  *tokens.AccessToken,
		RefreshToken: utils.NonEmpty(utils.Value(tokens.RefreshToken)),
	}, nil
}

// Logout forgets the session locally. The backend keeps no session to end.
func (c *Client) Logout() error {
	if err := c.creds.Clear(); err != nil {
		return err
	}
	log.Info().Msg("Signed out")
	return nil
}

// Authenticated reports whether a usable access token is stored.
func (c *Client) Authenticated() bool {
	return c.creds.IsAccessTokenValid()
}
