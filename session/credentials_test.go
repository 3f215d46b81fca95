package session_test

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-admin-dashboard/catalog"
	"github.com/jrsteele09/go-admin-dashboard/internal/utils"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/jrsteele09/go-admin-dashboard/session/storefake"
	"github.com/stretchr/testify/require"
)

const secretStr = "1234"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func freezeTime(t *testing.T) {
	t.Helper()
	orig := session.NowTimeFunc
	session.NowTimeFunc = func() time.Time { return fixedNow }
	t.Cleanup(func() { session.NowTimeFunc = orig })
}

func mintToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secretStr))
	require.NoError(t, err)
	return token
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	return mintToken(t, jwtlib.MapClaims{"sub": "user-1", "role": "admin", "exp": exp.Unix()})
}

func TestCredentials_IsAccessTokenValid(t *testing.T) {
	freezeTime(t)

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "absent", token: "", want: false},
		{name: "not a jwt", token: "not-a-jwt", want: false},
		{name: "undecodable payload", token: "eyJhbGc.eyJzdWI.signature", want: false},
		{name: "no exp claim", token: mintToken(t, jwtlib.MapClaims{"sub": "user-1"}), want: false},
		{name: "exp not a number", token: mintToken(t, jwtlib.MapClaims{"exp": "tomorrow"}), want: false},
		{name: "expired", token: tokenExpiringAt(t, fixedNow.Add(-time.Minute)), want: false},
		{name: "expires now", token: tokenExpiringAt(t, fixedNow), want: false},
		{name: "valid", token: tokenExpiringAt(t, fixedNow.Add(time.Hour)), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storefake.NewFakeStore()
			creds := session.NewCredentials(store)
			if tc.token != "" {
				require.NoError(t, store.Put(map[string]string{"accessToken": tc.token}))
			}
			require.Equal(t, tc.want, creds.IsAccessTokenValid())
		})
	}
}

func TestCredentials_SetTokens(t *testing.T) {
	store := storefake.NewFakeStore()
	creds := session.NewCredentials(store)

	require.NoError(t, creds.SetTokens("access-1", utils.Ptr("refresh-1")))
	access, ok := creds.AccessToken()
	require.True(t, ok)
	require.Equal(t, "access-1", access)
	require.Equal(t, "access-1", store.Values()["token"])

	t.Run("nil refresh keeps the stored one", func(t *testing.T) {
		require.NoError(t, creds.SetTokens("access-2", nil))
		refresh, ok := creds.RefreshToken()
		require.True(t, ok)
		require.Equal(t, "refresh-1", refresh)
	})

	t.Run("rotated refresh replaces it", func(t *testing.T) {
		require.NoError(t, creds.SetTokens("access-3", utils.Ptr("refresh-2")))
		require.Equal(t, session.Session{AccessToken: "access-3", RefreshToken: "refresh-2"}, creds.Snapshot())
	})

	t.Run("empty access token is rejected", func(t *testing.T) {
		require.Error(t, creds.SetTokens("", utils.Ptr("refresh-3")))
		refresh, _ := creds.RefreshToken()
		require.Equal(t, "refresh-2", refresh)
	})
}

func TestCredentials_LegacyTokenKey(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.Put(map[string]string{"token": "old-access"}))
	creds := session.NewCredentials(store)

	access, ok := creds.AccessToken()
	require.True(t, ok)
	require.Equal(t, "old-access", access)

	require.NoError(t, creds.Clear())
	_, ok = creds.AccessToken()
	require.False(t, ok)
}

func TestCredentials_Clear(t *testing.T) {
	store := storefake.NewFakeStore()
	creds := session.NewCredentials(store)
	prefs := session.NewPreferences(store)

	require.NoError(t, prefs.SetLanguage(catalog.Arabic))
	require.NoError(t, creds.SetPendingPhone("+966512345678"))
	require.NoError(t, creds.SetTokens("access", utils.Ptr("refresh")))

	require.NoError(t, creds.Clear())
	require.Equal(t, session.Session{}, creds.Snapshot())
	require.False(t, creds.Snapshot().Authenticated())
	require.Equal(t, map[string]string{"language": "ar"}, store.Values())

	// idempotent
	require.NoError(t, creds.Clear())
}

func TestCredentials_StoreFailuresFailClosed(t *testing.T) {
	freezeTime(t)
	store := storefake.NewFakeStore()
	creds := session.NewCredentials(store)
	require.NoError(t, creds.SetTokens(tokenExpiringAt(t, fixedNow.Add(time.Hour)), nil))
	require.True(t, creds.IsAccessTokenValid())

	store.SetError(errors.New("disk gone"))
	_, ok := creds.AccessToken()
	require.False(t, ok)
	require.False(t, creds.IsAccessTokenValid())
	require.Error(t, creds.SetTokens("access", nil))
	require.Error(t, creds.Clear())
}

func TestParseClaims(t *testing.T) {
	token := mintToken(t, jwtlib.MapClaims{
		"sub":   "user-42",
		"role":  "Admin",
		"roles": []any{"seller", 7, "auditor"},
		"iat":   fixedNow.Unix(),
		"exp":   fixedNow.Add(time.Hour).Unix(),
	})

	claims, err := session.ParseClaims(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.Subject)
	require.Equal(t, []string{"seller", "auditor"}, claims.Roles)
	require.True(t, claims.HasRole("admin"))
	require.True(t, claims.HasRole("AUDITOR"))
	require.False(t, claims.HasRole("buyer"))
	require.True(t, claims.IssuedAt.Equal(fixedNow))
	require.False(t, claims.Expired(fixedNow))
	require.True(t, claims.Expired(fixedNow.Add(time.Hour)))

	oauthToken := claims.OAuth2Token(token)
	require.Equal(t, "Bearer", oauthToken.Type())
	require.True(t, oauthToken.Expiry.Equal(fixedNow.Add(time.Hour)))

	_, err = session.ParseClaims("   ")
	require.Error(t, err)
}

func TestPreferences(t *testing.T) {
	store := storefake.NewFakeStore()
	prefs := session.NewPreferences(store)

	require.Equal(t, catalog.English, prefs.Language())

	lang, err := prefs.ToggleLanguage()
	require.NoError(t, err)
	require.Equal(t, catalog.Arabic, lang)
	require.Equal(t, catalog.Arabic, prefs.Language())
	require.Equal(t, "rtl", prefs.Language().Direction())

	err = prefs.SetLanguage("fr")
	require.ErrorIs(t, err, session.ErrUnsupportedLanguage)
	require.Equal(t, catalog.Arabic, prefs.Language())

	require.NoError(t, store.Put(map[string]string{"language": "klingon"}))
	require.Equal(t, catalog.English, prefs.Language())
}
