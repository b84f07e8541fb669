package history

import "time"

// Entry represents one imported line of shell history.
// A zero Timestamp means the source line carried no timestamp; the importer
// substitutes the import time before the entry is persisted.
type Entry struct {
	ID        int64
	Timestamp time.Time
	Command   string
}

// CommandCount pairs a distinct command text with its number of occurrences.
type CommandCount struct {
	Command string `json:"command"`
	Count   int64  `json:"count"`
}

// ImportRun records one invocation of the importer.
type ImportRun struct {
	RunID     string    `json:"run_id"`
	Source    string    `json:"source"` // file path, or "-" for standard input
	StartedAt time.Time `json:"started_at"`
	Imported  int64     `json:"imported"`
	Skipped   int64     `json:"skipped"`
}

// Stats summarizes the history database.
type Stats struct {
	DatabaseSize   int64          `json:"database_size"` // bytes on disk
	Terms          int64          `json:"terms"`         // tokens in the full-text index
	UniqueTerms    int64          `json:"unique_terms"`  // distinct tokens in the full-text index
	Commands       int64          `json:"commands"`
	UniqueCommands int64          `json:"unique_commands"`
	LastImport     *ImportRun     `json:"last_import,omitempty"` // nil when nothing has been imported
	Frequent       []CommandCount `json:"frequent_commands"`
}
