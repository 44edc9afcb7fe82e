// Package errors provides error annotation with structured logging attributes.
//
// It wraps the standard library errors package so that callers only need a
// single import. Wrap attaches a message, [slog.Attr] annotations, and the
// call site to an error; SlogError turns the resulting chain into a single
// [slog.Attr] suitable for logging.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError carries a message, structured annotations and the program
// counter of the Wrap call site.
type annotatedError struct {
	msg   string
	err   error
	attrs []slog.Attr
	pc    uintptr
}

// Wrap annotates err with a message and optional [slog.Attr] annotations.
// The call site is recorded for logging with [SlogError].
func Wrap(err error, message string, attrs ...slog.Attr) error {
	var pcs [1]uintptr
	// Skip runtime.Callers and Wrap itself so the recorded frame is the caller.
	runtime.Callers(2, pcs[:]) //nolint:mnd // skip count documented above.
	return &annotatedError{
		msg:   message,
		err:   err,
		attrs: attrs,
		pc:    pcs[0],
	}
}

// NewSentinel creates an error intended for use as a sentinel value with
// [Is]. It carries no annotations or call site.
func NewSentinel(message string) error {
	return stderrors.New(message)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// SlogError renders err as a single "error" group attribute containing the
// message, the source location of the outermost [Wrap] call, and the
// annotations gathered from the whole error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	attrs := []any{slog.String("message", err.Error())}

	if source := outermostSource(err); source != "" {
		attrs = append(attrs, slog.String("source", source))
	}

	if annotations := collectAnnotations(err); len(annotations) > 0 {
		args := make([]any, 0, len(annotations))
		for _, a := range annotations {
			args = append(args, a)
		}
		attrs = append(attrs, slog.Group("annotations", args...))
	}

	return slog.Group("error", attrs...)
}

// outermostSource returns "file.go:line" for the first annotated error in the
// chain, i.e. the Wrap call closest to the caller.
func outermostSource(err error) string {
	var annotated *annotatedError
	if !stderrors.As(err, &annotated) || annotated.pc == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{annotated.pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// collectAnnotations walks the error chain and gathers annotations from every
// annotated error, outermost first.
func collectAnnotations(err error) []slog.Attr {
	var attrs []slog.Attr
	for err != nil {
		var annotated *annotatedError
		if !stderrors.As(err, &annotated) {
			break
		}
		attrs = append(attrs, annotated.attrs...)
		err = annotated.err
	}
	return attrs
}
