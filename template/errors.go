package template

import "errors"

// Sentinel errors identifying the taxonomy of failures this package can
// return. Concrete failures wrap one of these with fmt.Errorf("%w: ...")
// so callers can match with errors.Is.
var (
	// ErrDefinition indicates a malformed template definition: bracket
	// imbalance, an optional section with no key reference, a reference
	// to an undefined key name, or two keys sharing a name within one
	// template.
	ErrDefinition = errors.New("template: invalid definition")

	// ErrMissingFields indicates Apply was invoked without values for
	// every required key of any variation.
	ErrMissingFields = errors.New("template: missing required fields")

	// ErrConversion indicates a Key rejected a value during
	// ValueFromStr or StrFromValue.
	ErrConversion = errors.New("template: conversion failed")

	// ErrParseFailure indicates an input string does not fit any
	// variation of a template.
	ErrParseFailure = errors.New("template: parse failure")

	// ErrAmbiguousParse indicates an input string resolves to more than
	// one distinct, internally consistent field mapping.
	ErrAmbiguousParse = errors.New("template: ambiguous parse")

	// ErrNoRoot indicates a path template has no root registered for
	// the requested platform.
	ErrNoRoot = errors.New("template: no root for platform")
)
