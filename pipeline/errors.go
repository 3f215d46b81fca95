package pipeline

import (
	"errors"

	"github.com/jrsteele09/go-admin-dashboard/catalog"
)

// sessionError is a terminal session outcome. It carries a catalog code so
// catalog.Describe can render it like any other failure.
type sessionError struct {
	code catalog.Code
	msg  string
}

func (e *sessionError) Error() string {
	return e.msg
}

func (e *sessionError) ErrorCode() catalog.Code {
	return e.code
}

var (
	// ErrNoCredential means there is no access token at all. Send the user to login.
	ErrNoCredential error = &sessionError{code: catalog.AuthTokenRequired, msg: "no authentication token found, please log in again"}

	// ErrSessionExpired means the token could not be refreshed. The session has
	// already been cleared; send the user to login.
	ErrSessionExpired error = &sessionError{code: catalog.AuthTokenExpired, msg: "authentication expired, please log in again"}
)

var (
	errNoRefreshToken = errors.New("no refresh token available")
	errEmptyAccess    = errors.New("refresh returned no access token")
	errNoResponse     = errors.New("operation returned no response")
)

// IsSessionError reports whether err should send the user back to login.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNoCredential) || errors.Is(err, ErrSessionExpired)
}
