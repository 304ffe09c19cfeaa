package errors

// ErrorBuilder builds an InternalError fluently. The terminal Mark call
// attaches the sentinel and returns the finished error.
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder from a message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{message: message},
	}
}

// NewErrorf starts a builder from a formatted message.
func NewErrorf(format string, args ...interface{}) *ErrorBuilder {
	return NewError(sprintf(format, args...))
}

// WithError starts a builder wrapping an underlying cause.
func WithError(cause error) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{cause: cause},
	}
}

// WithHint attaches a human readable hint shown to API callers.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.hint = hint
	return b
}

// WithHintf attaches a formatted hint.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.err.hint = sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured details safe to expose to callers.
func (b *ErrorBuilder) WithReportableDetails(details map[string]interface{}) *ErrorBuilder {
	b.err.reportableDetails = details
	return b
}

// Mark attaches the sentinel and returns the error.
func (b *ErrorBuilder) Mark(sentinel error) error {
	b.err.mark = sentinel
	return b.err
}
