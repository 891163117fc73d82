// Package scraper extracts raw result rows from the four source families:
// the statbank ranking pages, the legacy Word-HTML federation pages, the
// road-running stats pages and the hand-transcribed pre-2000 archive files.
//
// Each parser tolerates several incompatible layouts within its family by
// running candidate extraction strategies and keeping whichever produces the
// most valid rows.
package scraper
