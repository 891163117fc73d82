// Package record defines the raw result row emitted by every source parser.
//
// A Row carries everything a parser could extract from a single listing line
// before canonicalization: the event label as printed by the source, the raw
// and cleaned performance strings, and whatever athlete, club, venue and date
// information the source exposed. Canonicalization, scoring and storage all
// happen downstream of this type.
package record
