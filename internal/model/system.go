package model

import "time"

// VersionInfo contains version and feature information for the application.
type VersionInfo struct {
	AppVersion       string          `json:"app_version"`
	DbVersion        string          `json:"db_version"`
	Features         map[string]bool `json:"features"`
	MigrationNeeded  bool            `json:"migration_needed"`
	MigrationMessage *string         `json:"migration_message,omitempty"`
}

// DatasetInfo summarizes the rate table the server was started with.
// LastImport is nil when the import history is empty or could not be read.
type DatasetInfo struct {
	Rows       int           `json:"rows"`
	Columns    int           `json:"columns"`
	DateAxis   DateAxis      `json:"dateAxis"`
	LastImport *ImportRecord `json:"lastImport,omitempty"`
}

// ImportRecord describes one completed rate file import.
type ImportRecord struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	RowCount    int       `json:"rowCount"`
	ColumnCount int       `json:"columnCount"`
	DateAxis    DateAxis  `json:"dateAxis"`
	ImportedAt  time.Time `json:"importedAt"`
}
