package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
)

// RateRepository provides data access methods for the currency, rate_row,
// exchange_rate and rate_import tables.
// It persists an imported RateTable and rebuilds it at startup.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new RateRepository with the provided database connection.
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// ReplaceTable atomically replaces the stored rate table with the given one and
// records the import. Missing cells are not stored.
func (r *RateRepository) ReplaceTable(ctx context.Context, table *model.RateTable, source string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{"DELETE FROM exchange_rate", "DELETE FROM rate_row", "DELETE FROM currency"} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear rate tables: %w", err)
		}
	}

	columns := table.Columns()
	for i, code := range columns {
		if _, err = tx.ExecContext(ctx, `INSERT INTO currency (code, position) VALUES (?, ?)`, code, i); err != nil {
			return fmt.Errorf("failed to insert currency %s: %w", code, err)
		}
	}

	rowStmt, err := tx.PrepareContext(ctx, `INSERT INTO rate_row (id, label, date, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare rate_row insert: %w", err)
	}
	defer rowStmt.Close()

	rateStmt, err := tx.PrepareContext(ctx, `INSERT INTO exchange_rate (id, rate_row_id, currency, rate) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare exchange_rate insert: %w", err)
	}
	defer rateStmt.Close()

	for i := 0; i < table.Len(); i++ {
		date, label := table.Key(i)

		var dateArg any
		if table.Axis() == model.DateAxisDate {
			dateArg = date.Format(model.DateLayout)
		}

		rowID := uuid.New().String()
		if _, err = rowStmt.ExecContext(ctx, rowID, label, dateArg, i); err != nil {
			return fmt.Errorf("failed to insert rate row %s: %w", label, err)
		}

		for col, code := range columns {
			v := table.Value(i, col)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if _, err = rateStmt.ExecContext(ctx, uuid.New().String(), rowID, code, v); err != nil {
				return fmt.Errorf("failed to insert rate %s/%s: %w", label, code, err)
			}
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO rate_import (id, source, row_count, column_count, date_axis, imported_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), source, table.Len(), len(columns), string(table.Axis()), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rate import: %w", err)
	}
	return nil
}

// LoadTable rebuilds the stored rate table.
// Returns nil and no error when no currencies are stored.
// The table has a text axis when any stored row lacks a date.
func (r *RateRepository) LoadTable(ctx context.Context) (*model.RateTable, error) {
	columns, err := r.loadColumns(ctx)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, nil
	}

	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		colIndex[c] = i
	}

	rows, rowIndex, axis, err := r.loadRows(ctx, len(columns))
	if err != nil {
		return nil, err
	}

	cells, err := r.db.QueryContext(ctx, `SELECT rate_row_id, currency, rate FROM exchange_rate`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange_rate table: %w", err)
	}
	defer cells.Close()

	for cells.Next() {
		var rowID, currency string
		var rate float64
		if err := cells.Scan(&rowID, &currency, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan exchange_rate table results: %w", err)
		}
		ri, okRow := rowIndex[rowID]
		ci, okCol := colIndex[currency]
		if !okRow || !okCol {
			continue
		}
		rows[ri].Values[ci] = rate
	}
	if err := cells.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange_rate table: %w", err)
	}

	return model.NewRateTable(columns, rows, axis)
}

func (r *RateRepository) loadColumns(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code FROM currency ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency table: %w", err)
	}
	defer rows.Close()

	columns := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan currency table results: %w", err)
		}
		columns = append(columns, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency table: %w", err)
	}
	return columns, nil
}

func (r *RateRepository) loadRows(ctx context.Context, width int) ([]model.RateRow, map[string]int, model.DateAxis, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label, date FROM rate_row ORDER BY position ASC`)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to query rate_row table: %w", err)
	}
	defer rows.Close()

	var result []model.RateRow
	index := make(map[string]int)
	axis := model.DateAxisDate

	for rows.Next() {
		var id, label string
		var dateStr sql.NullString
		if err := rows.Scan(&id, &label, &dateStr); err != nil {
			return nil, nil, "", fmt.Errorf("failed to scan rate_row table results: %w", err)
		}

		row := model.RateRow{Label: label, Values: make([]float64, width)}
		for i := range row.Values {
			row.Values[i] = math.NaN()
		}

		if dateStr.Valid {
			row.Date, err = ParseTime(dateStr.String)
			if err != nil {
				return nil, nil, "", fmt.Errorf("failed to parse date of row %s: %w", label, err)
			}
		} else {
			axis = model.DateAxisText
		}

		index[id] = len(result)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, "", fmt.Errorf("error iterating rate_row table: %w", err)
	}

	return result, index, axis, nil
}

// LastImport returns the most recent import record, or nil when nothing was imported.
func (r *RateRepository) LastImport(ctx context.Context) (*model.ImportRecord, error) {
	var rec model.ImportRecord
	var axis, importedAt string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, source, row_count, column_count, date_axis, imported_at
		FROM rate_import
		ORDER BY imported_at DESC
		LIMIT 1
	`).Scan(&rec.ID, &rec.Source, &rec.RowCount, &rec.ColumnCount, &axis, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rate_import table: %w", err)
	}

	rec.DateAxis = model.DateAxis(axis)
	rec.ImportedAt, err = ParseTime(importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse import time: %w", err)
	}
	return &rec, nil
}
