// Package store is the canonical results database: athletes, clubs, events,
// competitions and result rows in SQLite, with idempotent upserts keyed on a
// NULL-safe natural index so repeated ingestion never duplicates rows.
package store
