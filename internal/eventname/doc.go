// Package eventname maps free-text event labels to canonical event names and
// external scoring-event codes.
//
// Sources print the same event a dozen ways ("100 METER - Elektronisk tid",
// "Kule (Shot Put)", "3000 m hinder / SC"). Canonical reduces a label to the
// single stable name results are stored under, including gender-dependent
// implement weights and hurdle heights. ScoringCode separately derives the
// external code used for points lookup, and InferOrientation decides sort
// direction from textual cues when no scoring code is available.
package eventname
