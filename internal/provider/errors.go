package provider

import (
	"errors"
	"fmt"
)

// Kind classifies adapter failures so callers can decide on retries and
// HTTP status codes without inspecting upstream-specific error shapes.
type Kind int

const (
	// KindUnknown is any failure the adapters did not classify.
	KindUnknown Kind = iota
	// KindInvalidRequest is malformed caller input. Never retried.
	KindInvalidRequest
	// KindNotConfigured means a required credential is missing.
	KindNotConfigured
	// KindRateLimited is a quota/rate-limit rejection from upstream.
	KindRateLimited
	// KindUpstream is any other non-2xx or malformed upstream response.
	KindUpstream
	// KindUnreachable is a transport-level failure before any response.
	KindUnreachable
	// KindNoAudio means a synthesis call returned neither an audio URL
	// nor inline audio.
	KindNoAudio
)

// Error is the single failure type returned by every adapter operation.
// Adapters never mix structured-failure returns with plain errors.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "provider error"
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error that keeps the upstream cause for logging
// while presenting msg to callers.
func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the classification of err, or KindUnknown if err was
// not produced by an adapter.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// NotConfiguredError reports a missing credential for the named provider.
func NotConfiguredError(name string) *Error {
	return Errorf(KindNotConfigured, "%s API key is not configured", name)
}
