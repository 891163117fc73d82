// Package identity derives stable athlete identities for sources that carry
// no native athlete ID, and resolves abbreviated repeated-row references
// inside a single table to previously seen full rows.
package identity
