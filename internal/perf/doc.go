// Package perf normalizes performance strings from wildly inconsistent
// sources into comparable values.
//
// Normalization runs in three stages: Clean strips annotations and repairs
// separators on the raw token, Normalize resolves time-like separator
// ambiguity using the event as a hint, and ToValue folds the result into a
// single sortable float (seconds for times, plain value otherwise). Each
// stage is total: malformed input is reported as not-ok, never panicked on.
package perf
