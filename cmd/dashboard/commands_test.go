package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-admin-dashboard/api"
	"github.com/jrsteele09/go-admin-dashboard/catalog"
	"github.com/jrsteele09/go-admin-dashboard/internal/config"
	"github.com/jrsteele09/go-admin-dashboard/internal/utils"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/jrsteele09/go-admin-dashboard/session/storefake"
	"github.com/stretchr/testify/require"
)

func newTestCommands() (*commands, *bytes.Buffer, *bytes.Buffer) {
	store := storefake.NewFakeStore()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := &commands{
		creds:  session.NewCredentials(store),
		prefs:  session.NewPreferences(store),
		out:    out,
		errOut: errOut,
	}
	cmd.client = api.New(config.New(), cmd.creds, cmd.prefs, api.WithNotifier(api.NotifierFunc(cmd.notify)))
	return cmd, out, errOut
}

func Test_Lang(t *testing.T) {
	cmd, out, _ := newTestCommands()

	require.NoError(t, cmd.dispatch(context.Background(), "lang", nil))
	require.Equal(t, catalog.Arabic, cmd.prefs.Language())
	require.Contains(t, out.String(), "ar (rtl)")

	require.NoError(t, cmd.dispatch(context.Background(), "lang", []string{"EN"}))
	require.Equal(t, catalog.English, cmd.prefs.Language())

	err := cmd.dispatch(context.Background(), "lang", []string{"fr"})
	require.ErrorIs(t, err, errUsage)
}

func Test_Status(t *testing.T) {
	cmd, out, _ := newTestCommands()
	require.NoError(t, cmd.creds.SetPendingPhone("+966501234567"))

	require.NoError(t, cmd.dispatch(context.Background(), "status", nil))
	require.Contains(t, out.String(), "Pending phone: +966501234567")
	require.Contains(t, out.String(), "Not signed in.")

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": "admin-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("1234"))
	require.NoError(t, err)
	require.NoError(t, cmd.creds.SetTokens(token, utils.Ptr("refresh-1")))

	out.Reset()
	require.NoError(t, cmd.dispatch(context.Background(), "status", nil))
	require.Contains(t, out.String(), "Signed in as admin-1, Bearer token valid")
	require.Contains(t, out.String(), "refresh token stored: true")
}

func Test_Dispatch(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		cmd, _, _ := newTestCommands()
		require.ErrorIs(t, cmd.dispatch(context.Background(), "nope", nil), errUsage)
	})

	t.Run("local validation is rendered in the active language", func(t *testing.T) {
		cmd, _, errOut := newTestCommands()
		require.NoError(t, cmd.prefs.SetLanguage(catalog.Arabic))

		err := cmd.dispatch(context.Background(), "login", []string{"-phone", "123"})
		require.EqualError(t, err, catalog.Localize(catalog.ValInvalidPhone, catalog.Arabic))
		require.Empty(t, errOut.String())
	})

	t.Run("no session points to login", func(t *testing.T) {
		cmd, _, errOut := newTestCommands()

		err := cmd.dispatch(context.Background(), "products", nil)
		require.ErrorIs(t, err, errReported)
		require.Contains(t, errOut.String(), catalog.Localize(catalog.AuthTokenRequired, catalog.English))
		require.Contains(t, errOut.String(), "dashboard login")
	})
}
