package core

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEmptyWorkload    = errors.New("empty workload")
)

// ErrorKind names the failure class of err for callers that report it.
// Errors carrying several kinds report the most specific one.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyWorkload):
		return "empty_workload"
	case errors.Is(err, ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	}
	return "internal"
}
