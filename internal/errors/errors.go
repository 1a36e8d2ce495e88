package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a slangbot failure.
type Kind string

const (
	KindValidation        Kind = "VALIDATION"         // 400
	KindDecode            Kind = "DECODE"             // 400
	KindNotFound          Kind = "NOT_FOUND"          // 404
	KindBusy              Kind = "BUSY"               // 409
	KindGateway           Kind = "GATEWAY"            // 502
	KindMalformedResponse Kind = "MALFORMED_RESPONSE" // 502
	KindEmptyResponse     Kind = "EMPTY_RESPONSE"     // 502
	KindPersistence       Kind = "PERSISTENCE"        // 500
)

// Error is a classified error. Message is safe to show to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindDecode:
		return 400
	case KindNotFound:
		return 404
	case KindBusy:
		return 409
	case KindGateway, KindMalformedResponse, KindEmptyResponse:
		return 502
	default:
		return 500
	}
}

func NewValidation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewDecode(msg string, err error) *Error {
	return &Error{Kind: KindDecode, Message: msg, Err: err}
}

func NewNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewBusy() *Error {
	return &Error{Kind: KindBusy, Message: "a submission is already in flight"}
}

func NewGateway(msg string, err error) *Error {
	return &Error{Kind: KindGateway, Message: msg, Err: err}
}

func NewMalformedResponse(msg string, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Message: msg, Err: err}
}

func NewEmptyResponse(msg string) *Error {
	return &Error{Kind: KindEmptyResponse, Message: msg}
}

func NewPersistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// WithPrefix returns a copy of err whose message starts with prefix. Errors
// that are not classified become gateway errors.
func WithPrefix(prefix string, err error) *Error {
	if e, ok := As(err); ok {
		return &Error{Kind: e.Kind, Message: prefix + e.Message, Err: e.Err}
	}
	return &Error{Kind: KindGateway, Message: prefix + err.Error()}
}

// Is reports whether err wraps an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrors.As(err, &e)
	return e, ok
}
