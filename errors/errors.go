// Package errors provides error handling for vectype.
//
// It re-exports github.com/cockroachdb/errors, giving stack traces, error
// wrapping, and assertion failures for programming-contract violations.
//
// Usage:
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	if errors.Is(err, errors.ErrUnresolvedAlias) {
//	    // generated output cannot be trusted; abort the run
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages
var (
	WithHint   = crdb.WithHint
	WithHintf  = crdb.WithHintf
	WithDetail = crdb.WithDetail
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the two fatal conditions of the generator. Everything
// else (unknown type tokens, missing per-parameter documentation) falls back
// silently; these two mean the generated output would misdescribe the
// analyzed API, so the run must abort.
var (
	// ErrMalformedMatch indicates the extraction pattern produced a match
	// whose capture shape is outside the expected schema.
	ErrMalformedMatch = New("malformed declaration match")

	// ErrUnresolvedAlias indicates alias resolution could not find the
	// referenced method in an already-registered class map.
	ErrUnresolvedAlias = New("unresolved alias target")
)

// IsFatal reports whether err is one of the conditions that must halt the
// run rather than degrade to a fallback.
func IsFatal(err error) bool {
	return err != nil && IsAny(err, ErrMalformedMatch, ErrUnresolvedAlias)
}
