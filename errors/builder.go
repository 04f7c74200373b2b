package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder enriches a base error with hints, safe context and an exit code.
type ErrorBuilder struct {
	err       error
	hints     []string
	context   map[string]any
	exitCode  *int
	sentinels []error
}

// Build starts an ErrorBuilder from err.
// A leaf error (nothing wrapped) is treated as a sentinel and marked on the result,
// so errors.Is keeps matching after hints and details are layered on top.
func Build(err error) *ErrorBuilder {
	b := &ErrorBuilder{err: err}
	if err != nil && errors.UnwrapOnce(err) == nil {
		b.sentinels = append(b.sentinels, err)
	}
	return b
}

// WithHint adds a user-facing hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted user-facing hint.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	return b.WithHint(fmt.Sprintf(format, args...))
}

// WithExplanation attaches a detail line describing what went wrong.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	b.err = errors.WithDetail(b.err, explanation)
	return b
}

// WithContext records a key/value pair that is safe to print in verbose output.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]any)
	}
	b.context[key] = value
	return b
}

// WithExitCode sets the process exit code reported by GetExitCode.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel marks the result so errors.Is(result, sentinel) holds.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// WithCause wraps cause under the builder's error message.
func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	if cause != nil {
		b.err = errors.Wrapf(cause, "%s", b.err.Error())
	}
	return b
}

// Err returns the enriched error, or nil if the builder was started from nil.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err
	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		keys := make([]string, 0, len(b.context))
		for k := range b.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		values := make([]any, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"=%s")
			values = append(values, errors.Safe(b.context[k]))
		}
		err = errors.WithSafeDetails(err, strings.Join(parts, " "), values...)
	}

	// Marks go last so they sit at the top of the chain.
	for _, sentinel := range b.sentinels {
		err = errors.Mark(err, sentinel)
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}
	return err
}

// exitCoder carries a process exit code alongside its cause.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string { return e.cause.Error() }
func (e *exitCoder) Cause() error  { return e.cause }
func (e *exitCoder) Unwrap() error { return e.cause }

// WithExitCode attaches an exit code to err.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode returns 0 for nil, the attached exit code if any, and 1 otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.code
	}
	return 1
}
