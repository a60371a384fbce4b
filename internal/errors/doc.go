// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// arithmetic domain, parsing, verification) and for carrying the underlying
// cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Typed errors that stand for a domain sentinel implement Unwrap() so that
// errors.Is() matches the sentinel and errors.As() recovers the details.
package apperrors
