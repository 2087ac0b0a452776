package submitter

import (
	"errors"
	"fmt"

	dErrors "memberreg/pkg/domain-errors"
)

// Category is the normalized submission failure taxonomy.
type Category string

const (
	// CategoryRejected means the API answered with a field-keyed error map.
	CategoryRejected Category = "rejected"

	// CategoryServerError is any other non-success response.
	CategoryServerError Category = "server_error"

	// CategoryTransport means no response was received.
	CategoryTransport Category = "transport"

	// CategoryTimeout is a transport failure caused by the deadline.
	CategoryTimeout Category = "timeout"

	// CategoryBadResponse means a success status carried a non-JSON body.
	CategoryBadResponse Category = "bad_response"
)

// Error is a failed submission. Message is what the user is shown: the
// server's first field message, the status code, or the transport error text.
type Error struct {
	Category   Category
	StatusCode int
	Field      string
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("submission [%s]: %s: %v", e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("submission [%s]: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// DomainCode maps the category onto the domain error codes used by the API.
func (e *Error) DomainCode() dErrors.Code {
	if e.Category == CategoryTimeout {
		return dErrors.CodeTimeout
	}
	return dErrors.CodeUpstream
}

func newError(category Category, status int, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		StatusCode: status,
		Message:    message,
		Underlying: underlying,
	}
}

// CategoryOf extracts the submission category, or "" for other errors.
func CategoryOf(err error) Category {
	var se *Error
	if errors.As(err, &se) {
		return se.Category
	}
	return ""
}
