package catalog

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Failure is what is known about a transport failure when classifying it.
// Status is zero when no response was received.
type Failure struct {
	Status int
	Code   Code
}

var statusCodes = map[int]Code{
	http.StatusBadRequest:          GenBadRequest,
	http.StatusUnauthorized:        AuthInvalidToken,
	http.StatusForbidden:           AuthAccessDenied,
	http.StatusNotFound:            GenNotFound,
	http.StatusRequestTimeout:      GenTimeout,
	http.StatusConflict:            GenConflict,
	http.StatusTooManyRequests:     SysRateLimited,
	http.StatusInternalServerError: GenInternal,
	http.StatusBadGateway:          SysExternalService,
	http.StatusServiceUnavailable:  SysUnavailable,
	http.StatusInsufficientStorage: SysStorageFull,
}

// Classify resolves a failure to a code. A server supplied code wins and is
// used verbatim, then the status table, then GenUnknown.
func Classify(f Failure) Code {
	if f.Code != "" {
		return f.Code
	}
	return CodeForStatus(f.Status)
}

// CodeForStatus maps an HTTP status to its code, GenUnknown when unmapped.
func CodeForStatus(status int) Code {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return GenUnknown
}

// errorBody covers the two shapes the backend uses:
// {"error": {"code": "..."}} and {"code": "...", "detail": "..."}.
type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Code   string          `json:"code"`
	Detail json.RawMessage `json:"detail"`
}

// ParseFailure extracts the server code from a response body. Bodies that
// are not JSON or carry no code yield a Failure with only the status.
func ParseFailure(status int, body []byte) (Failure, string) {
	f := Failure{Status: status}
	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return f, ""
	}
	switch {
	case eb.Error != nil && eb.Error.Code != "":
		f.Code = Code(strings.TrimSpace(eb.Error.Code))
	case eb.Code != "":
		f.Code = Code(strings.TrimSpace(eb.Code))
	}

	var detail string
	if len(eb.Detail) > 0 {
		// detail may be a list of field errors; only plain strings are surfaced
		_ = json.Unmarshal(eb.Detail, &detail)
	}
	if detail == "" && eb.Error != nil {
		detail = eb.Error.Message
	}
	return f, detail
}

// FromResponse classifies a failed response into an *Error.
func FromResponse(status int, body []byte) *Error {
	f, detail := ParseFailure(status, body)
	return &Error{
		Code:   Classify(f),
		Status: status,
		Detail: detail,
	}
}
