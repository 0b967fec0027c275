package errors

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// StatusCode returns the embedded status code if err is an
// ErrorWithStatusCode, otherwise the provided fallback.
func StatusCode(err error, fallback int) int {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return fallback
}
