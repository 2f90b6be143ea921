package upstream

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for upstream calls.
var (
	ErrTransport = errors.New("upstream: request failed")
	ErrStatus    = errors.New("upstream: non-success status")
	ErrNotFound  = errors.New("upstream: not found")
	ErrDecode    = errors.New("upstream: malformed response")
	ErrRejected  = errors.New("upstream: request rejected")
)

// statusBodyLimit is how much of an error body is shown to users.
const statusBodyLimit = 120

// Error wraps a failed call with its context.
type Error struct {
	Service string // listings, sitters, blog
	Op      string // QueryListings, CreatePost, ...
	Status  int    // HTTP status, 0 when no response arrived
	Body    string // response body or service message
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s %s [%d]: %v", e.Service, e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("upstream %s %s: %v", e.Service, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(service, op string, status int, body string, err error) error {
	return &Error{Service: service, Op: op, Status: status, Body: body, Err: err}
}

// StatusMessage renders a failed write for the user: "Error: " followed by
// at most 120 characters of the service's error body.
func StatusMessage(err error) string {
	var ue *Error
	if errors.As(err, &ue) && strings.TrimSpace(ue.Body) != "" {
		return "Error: " + truncateRunes(ue.Body, statusBodyLimit)
	}
	switch {
	case errors.Is(err, ErrTransport):
		return "Error: service unavailable"
	case err != nil:
		return "Error: " + truncateRunes(err.Error(), statusBodyLimit)
	default:
		return ""
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
