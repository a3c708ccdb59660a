package domain

import "time"

// AccountError records a per-account ingestion failure. One account failing
// never prevents the others from being processed.
type AccountError struct {
	Handle string `json:"handle"`
	Error  string `json:"error"`
}

// IngestStats holds statistics about one ingestion run.
//
// Inserted counts attempted rows; duplicates silently dropped by the
// insert-if-absent write are not distinguished from fresh inserts.
type IngestStats struct {
	Fetched      int
	Inserted     int
	TouchedDates int
	Errors       []AccountError
	Duration     time.Duration
}
