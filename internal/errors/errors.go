package errors

import "errors"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

var (
	// ErrUnknownPage is returned when no template is registered for a page.
	ErrUnknownPage = errors.New("unknown page")
	// ErrDataMismatch is returned when page data is not the view model the page expects.
	ErrDataMismatch = errors.New("page data has unexpected type")
	// ErrFixtureNotFound is returned by fixture sources for missing names.
	ErrFixtureNotFound = errors.New("fixture not found")
)
