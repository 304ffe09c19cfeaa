// Package errors provides the internal error type used across the codebase.
// Errors are built fluently and marked with a sentinel so callers can branch
// with errors.Is while handlers surface the hint and reportable details.
package errors

import "errors"

var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrDatabase         = errors.New("database_error")
	ErrHTTPClient       = errors.New("http_client_error")
	ErrPermissionDenied = errors.New("permission_denied")
	ErrInternal         = errors.New("internal_error")
)

// InternalError is the concrete error produced by the builder in this package.
type InternalError struct {
	message           string
	hint              string
	reportableDetails map[string]interface{}
	cause             error
	mark              error
}

func (e *InternalError) Error() string {
	if e.message != "" {
		return e.message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	if e.mark != nil {
		return e.mark.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the wrapped cause and the sentinel mark to errors.Is.
func (e *InternalError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	if e.mark != nil {
		errs = append(errs, e.mark)
	}
	return errs
}

// Hint returns the human readable hint attached to the error, if any.
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns structured details safe to expose to API callers.
func (e *InternalError) ReportableDetails() map[string]interface{} {
	return e.reportableDetails
}

// Hint extracts the hint from any error produced by this package. It falls
// back to the error message for foreign errors.
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) && ie.hint != "" {
		return ie.hint
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// ReportableDetails extracts the reportable details from any error produced
// by this package.
func ReportableDetails(err error) map[string]interface{} {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.reportableDetails
	}
	return nil
}

func IsValidation(err error) bool       { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsAlreadyExists(err error) bool    { return errors.Is(err, ErrAlreadyExists) }
func IsDatabase(err error) bool         { return errors.Is(err, ErrDatabase) }
func IsPermissionDenied(err error) bool { return errors.Is(err, ErrPermissionDenied) }
