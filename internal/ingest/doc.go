// Package ingest drives the package ingestion pipeline: archive extraction,
// manifest location and parsing, and course persistence. Each ingestion is
// independent and all-or-nothing.
package ingest
