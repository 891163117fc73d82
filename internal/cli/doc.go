// Package cli implements the command-line interface for friidrett-stats.
//
// The cli package provides the Cobra-based CLI with commands for syncing the
// track-and-field national lists, the road-running year lists and the
// transcribed archive files, plus maintenance and inspection commands. It
// coordinates the fetch, scraper, scoring, ingest and store packages.
package cli
