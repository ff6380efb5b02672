package apperrors

import (
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/lib/pq"
)

// Kind classifies a failure so the HTTP layer can pick a status code
// without inspecting message text.
type Kind int

const (
	Validation Kind = iota
	Conflict
	Unauthorized
	NotFound
	Unavailable
	Internal
)

// Messages surfaced for store-connectivity failures. The pre-flight check
// and the mid-operation classifier use different wording, matching the
// two ways the condition is detected.
const (
	MsgStoreDown    = "Database not connected. Please start the database and restart the server."
	MsgStoreConnErr = "Database connection error. Please ensure the database is running."
)

// Error carries a failure kind and the human-readable message returned to
// the client. Err holds the underlying cause, if any; it is surfaced as the
// error detail for 5xx responses and deliberately absent for credential
// failures.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// StoreDown is the failure returned when the pre-operation availability
// probe fails.
func StoreDown() *Error {
	return New(Unavailable, MsgStoreDown)
}

// FromStore classifies an error returned by the persistence layer during an
// operation: connection loss becomes Unavailable with the dedicated message,
// anything else is Internal with the operation's fallback message.
func FromStore(err error, fallback string) *Error {
	if isConnError(err) {
		return Wrap(Unavailable, MsgStoreConnErr, err)
	}
	return Wrap(Internal, fallback, err)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (a lost race on a unique index).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isConnError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := err.Error()
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"driver: bad connection",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
