package status

import "errors"

// Kind classifies an error by its contract, which dictates how it must be
// propagated: protocol faults abort the connection, illegal states fail
// fast, invalid arguments and unimplemented capabilities are reported back
// to the caller as-is.
type Kind uint8

const (
	// KindProtocol marks malformed or prematurely ended input. The connection
	// owner is expected to abort the connection upon receiving one.
	KindProtocol Kind = iota + 1
	// KindIllegalState marks a programming-contract violation, e.g. consuming
	// the body twice through different accessors.
	KindIllegalState
	// KindInvalidArgument marks values that cannot be interpreted as requested.
	KindInvalidArgument
	// KindUnimplemented marks capabilities intentionally left out of scope,
	// distinct from runtime failures.
	KindUnimplemented
)

type Error struct {
	Message string
	Kind    Kind
	Code    Code
}

func New(kind Kind, code Code, message string) error {
	return Error{
		Message: message,
		Kind:    kind,
		Code:    code,
	}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e Error
	return errors.As(err, &e) && e.Kind == kind
}

var (
	ErrNoRequestLine        = New(KindProtocol, BadRequest, "unexpected end of stream while reading the request line")
	ErrMalformedRequestLine = New(KindProtocol, BadRequest, "malformed request line")
	ErrTooLongLine          = New(KindProtocol, RequestEntityTooLarge, "line exceeds the allowed length")
	ErrIncompleteBody       = New(KindProtocol, BadRequest, "stream ended before the declared body length was received")
	ErrURLDecoding          = New(KindProtocol, BadRequest, "invalid urlencoded sequence")

	ErrStreamTaken = New(KindIllegalState, InternalServerError, "the body has already been consumed as a byte stream")
	ErrTextTaken   = New(KindIllegalState, InternalServerError, "the body has already been consumed as text")
	ErrNoAlias     = New(KindIllegalState, InternalServerError, "no alias is registered for the request path")

	ErrBadDate = New(KindInvalidArgument, BadRequest, "cannot interpret the header value as a date")

	ErrSessionsUnsupported = New(KindUnimplemented, NotImplemented, "sessions are not supported")
	ErrRealPathUnsupported = New(KindUnimplemented, NotImplemented, "real path resolution is not supported")
	ErrEncodingUnsupported = New(KindUnimplemented, NotImplemented, "character encoding override is not supported")
)
