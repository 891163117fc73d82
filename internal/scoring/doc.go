// Package scoring adapts an external scoring-table database: event metadata
// (orientation, precision) and points lookup for normalized performances.
// The points mathematics live in the table data, not here.
package scoring
