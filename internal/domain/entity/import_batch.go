package entity

import "time"

// ImportBatch is the audit record of one import invocation. It is created
// before any flight row that references it, its counters are finalized once
// at the end, and it then becomes immutable history.
type ImportBatch struct {
	ID            string // UUID
	Source        string
	Filename      string
	ImportedAt    time.Time
	RowsProcessed int
	RowsImported  int
	RowsSkipped   int
	RowsDuplicate int
}

// ImportError is one parse or validation failure, keyed by the 1-based line
// number in the source file.
type ImportError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult is returned to the caller of an import invocation.
type ImportResult struct {
	BatchID         string
	Filename        string
	Source          string
	RowsProcessed   int
	RowsImported    int
	RowsSkipped     int
	RowsDuplicate   int
	Errors          []ImportError
	NewBlockMinutes int
	DateRangeStart  string
	DateRangeEnd    string
}
