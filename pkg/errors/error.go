package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"text/template"
	"time"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   make(map[string]any),
		Stack:     captureStack(),
		Timestamp: time.Now(),
	}
}

// WithPrefix returns a generator of sequential codes under the given prefix,
// one generator per package ("APP_0001", "APP_0002", ...).
func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

// Error is a coded error whose message may reference detail keys through
// text/template placeholders ("{{.name}}").
type Error struct {
	Code      Code           `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     error          `json:"-"`
	Stack     string         `json:"-"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *Error) Error() string {
	msg := e.renderMessage()
	if msg == "" {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) renderMessage() string {
	t, err := template.New("error").Parse(e.Message)
	if err != nil {
		return e.Message
	}

	var output bytes.Buffer
	if err = t.Execute(&output, e.Details); err != nil {
		return e.Message
	}
	return output.String()
}

// WithDetail returns a copy carrying an additional detail value, so shared
// sentinel errors are never mutated in place.
func (e *Error) WithDetail(key string, value any) *Error {
	clone := e.clone()
	clone.Details[key] = value
	return clone
}

// WithCause returns a copy wrapping the given cause.
func (e *Error) WithCause(err error) *Error {
	clone := e.clone()
	clone.Cause = err
	return clone
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any error carrying the same code, so sentinel comparison works
// across WithDetail/WithCause copies.
func (e *Error) Is(target error) bool {
	var other *Error
	if !As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

func (e *Error) clone() *Error {
	details := make(map[string]any, len(e.Details))
	for k, v := range e.Details {
		details[k] = v
	}
	return &Error{
		Code:      e.Code,
		Message:   e.Message,
		Details:   details,
		Cause:     e.Cause,
		Stack:     captureStack(),
		Timestamp: time.Now(),
	}
}

func captureStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
