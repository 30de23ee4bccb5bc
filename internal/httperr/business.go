package httperr

import "errors"

// ===============================
// Business Errors
// ===============================

// Kind classifies a business error. Transport status codes are derived
// from the kind only at the HTTP boundary.
type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnprocessable
	KindUpstream
	KindInternal
)

type BusinessError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func ErrInvalidArgument(field, message string) error {
	return &BusinessError{Kind: KindInvalidArgument, Field: field, Message: message}
}

func ErrNotFound(field, message string) error {
	return &BusinessError{Kind: KindNotFound, Field: field, Message: message}
}

func ErrConflict(field, message string) error {
	return &BusinessError{Kind: KindConflict, Field: field, Message: message}
}

func ErrUnprocessable(field, message string) error {
	return &BusinessError{Kind: KindUnprocessable, Field: field, Message: message}
}

func ErrUpstream(field, message string) error {
	return &BusinessError{Kind: KindUpstream, Field: field, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func KindOf(err error) Kind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}
