package errprocess

import "errors"

// Kind classifies an error for the request boundary
type Kind int

const (
	// KindInternal anything not classified, including external service failures
	KindInternal Kind = iota
	// KindValidation missing or empty required field
	KindValidation
	// KindNotFound id does not resolve
	KindNotFound
	// KindConflict duplicate subscribe / like / dislike, or removing something absent
	KindConflict
	// KindPrecondition caller state does not allow the operation (e.g. upload without channel)
	KindPrecondition
	// KindUnauthorized missing or invalid credential
	KindUnauthorized
	// KindBadRequest malformed identifier
	KindBadRequest
)

// Error carries a kind and a short client facing message
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New create a classified error
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap classify err and keep it as the cause
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, KindInternal otherwise
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client facing message of err
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
