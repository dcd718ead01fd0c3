// Package timexerr defines the four error kinds the pipeline can
// raise, each wrapping its underlying cause with %w so callers can
// unwrap with errors.As.
package timexerr

import "fmt"

// GrammarLoadFailure means grammar compilation or cache load failed.
// It is fatal at construction.
type GrammarLoadFailure struct {
	Lang string
	Err  error
}

func (e *GrammarLoadFailure) Error() string {
	return fmt.Sprintf("timexerr: grammar load failed for %s: %v", e.Lang, e.Err)
}

func (e *GrammarLoadFailure) Unwrap() error { return e.Err }

// InvalidBaseTime means a caller-supplied base time string failed to
// parse. It is surfaced at the boundary that accepts a string base
// time (e.g. the CLI's --base-time flag), never from Extract, which
// only ever accepts a time.Time.
type InvalidBaseTime struct {
	Input string
	Err   error
}

func (e *InvalidBaseTime) Error() string {
	return fmt.Sprintf("timexerr: invalid base time %q: %v", e.Input, e.Err)
}

func (e *InvalidBaseTime) Unwrap() error { return e.Err }

// InternalTagParseError means a tag produced by the tagger did not
// parse against the tag schema. Recoverable: the tag is logged and
// skipped, extraction continues.
type InternalTagParseError struct {
	Detail string
	Err    error
}

func (e *InternalTagParseError) Error() string {
	return fmt.Sprintf("timexerr: internal tag parse error (%s): %v", e.Detail, e.Err)
}

func (e *InternalTagParseError) Unwrap() error { return e.Err }

// ResolverOutOfRange means a resolved instant fell outside
// [0001-01-01, 9999-12-31]. Recoverable: the tag is dropped, extraction
// continues.
type ResolverOutOfRange struct {
	Detail string
	Err    error
}

func (e *ResolverOutOfRange) Error() string {
	return fmt.Sprintf("timexerr: resolved instant out of range (%s): %v", e.Detail, e.Err)
}

func (e *ResolverOutOfRange) Unwrap() error { return e.Err }
