// Package fetch downloads source pages with a local byte-for-byte cache so
// repeated ingestion runs do not hammer the source sites.
package fetch
