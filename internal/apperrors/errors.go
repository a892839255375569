package apperrors

import "errors"

// Lookup errors represent a requested column or dataset that does not exist.
var (
	// ErrInvalidColumn indicates that a currency column is not part of the loaded rate table.
	ErrInvalidColumn = errors.New("currency column not found")

	// ErrNoRateData indicates that neither the configured CSV nor the database held a rate table.
	ErrNoRateData = errors.New("no exchange rate data loaded")
)

// Input errors represent a rate file or request that cannot be used as given.
var (
	// ErrInvalidCSVHeaders indicates that the header row of a rate file is empty,
	// contains a blank or duplicate name, or has no currency columns.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")

	// ErrDuplicateDate indicates that a rate table was constructed with the same date twice.
	ErrDuplicateDate = errors.New("duplicate date in rate table")

	// ErrRowWidthMismatch indicates that a rate row does not carry one value per column.
	ErrRowWidthMismatch = errors.New("rate row width does not match column count")

	// ErrUnsupportedExportFormat indicates an export format other than csv, xlsx or pdf.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	ErrInvalidCurrency = errors.New("currency parameter is required")
)

// Operation failure errors represent system-level failures when building or serving data.
var (
	ErrFailedToLoadRates      = errors.New("failed to load exchange rates")
	ErrFailedToImportRates    = errors.New("failed to import exchange rates")
	ErrFailedToBuildDashboard = errors.New("failed to build dashboard")
	ErrFailedToExportSeries   = errors.New("failed to export series")
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
