// Package apperr defines the error taxonomy shared by controllers and the
// HTTP response helpers.
package apperr

import "net/http"

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindUpstream
	KindNotImplemented
)

// Status maps a Kind onto its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Error is an error that is safe to show to API callers. Message is what the
// caller sees; Err keeps the underlying cause for logs.
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

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind and Message so sentinel errors survive wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// Wrap attaches a cause to a sentinel error, keeping its kind and message.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: err}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func InvalidInput(message string) *Error { return New(KindInvalidInput, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Forbidden(message string) *Error { return New(KindForbidden, message) }

// Upstream marks a failure of an external service or the database. The
// message is returned to the caller; err is only logged.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

var (
	ErrInvalidWalletAddress  = InvalidInput("Invalid wallet address")
	ErrDuplicateWallet       = InvalidInput("Wallet address already registered")
	ErrNoNFTOwnership        = Forbidden("No NFT ownership verified")
	ErrMissingToken          = New(KindUnauthorized, "Access token required")
	ErrInvalidOrExpiredToken = Forbidden("Invalid or expired token")
	ErrTeamNotOwned          = Forbidden("You do not own this NFT")
	ErrNotImplemented        = New(KindNotImplemented, "Not implemented yet")
)
