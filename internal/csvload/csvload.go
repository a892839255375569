// Package csvload reads a delimited exchange rate file into a RateTable.
//
// The file has one date column (named "Date", otherwise the first column) in a
// day-first textual format and one numeric column per currency code. Cells that
// are empty or not numeric become missing values instead of failing the load.
package csvload

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
)

// dateLayouts are tried in order. Day-first layouts use single-digit verbs so
// "5/1/2012" and "05/01/2012" both parse.
var dateLayouts = []string{
	"2006-01-02",
	"2-1-2006",
	"2/1/2006",
	"2.1.2006",
	"2-Jan-2006",
	"2 Jan 2006",
	"2-1-06",
	"2/1/06",
	"2.1.06",
	"2-Jan-06",
}

var (
	headerPolicy     *bluemonday.Policy
	headerPolicyOnce sync.Once
)

func getHeaderPolicy() *bluemonday.Policy {
	headerPolicyOnce.Do(func() {
		headerPolicy = bluemonday.StrictPolicy()
	})
	return headerPolicy
}

// Loader parses rate files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader that reports skipped rows to logger.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadFile opens path and parses it with Parse.
func (l *Loader) LoadFile(path string) (*model.RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rate file: %w", err)
	}
	defer f.Close()

	table, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a rate table from r.
//
// The delimiter is a comma unless the header line holds semicolons and no commas.
// Rows whose date cannot be parsed are dropped when at least one other row has a
// valid date; when no row date parses, the table keeps a text axis with rows in
// file order. Rows repeating an earlier date are dropped.
func (l *Loader) Parse(r io.Reader) (*model.RateTable, error) {
	br := bufio.NewReader(r)
	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrInvalidCSVHeaders)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	dateCol, columns, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	type rawRow struct {
		line   int
		label  string
		date   time.Time
		parsed bool
		values []float64
	}

	var raw []rawRow
	parsedCount := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) > len(header) {
			l.logger.Warn("rate row has extra cells, ignoring them",
				zap.Int("line", line), zap.Int("cells", len(record)), zap.Int("expected", len(header)))
		}

		label := ""
		if dateCol < len(record) {
			label = strings.TrimSpace(record[dateCol])
		}
		if label == "" {
			l.logger.Warn("rate row has no date, skipping", zap.Int("line", line))
			continue
		}

		row := rawRow{line: line, label: label, values: make([]float64, 0, len(columns))}
		row.date, row.parsed = ParseDate(label)
		if row.parsed {
			parsedCount++
		}

		for i := range header {
			if i == dateCol {
				continue
			}
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			row.values = append(row.values, ParseRate(cell))
		}
		raw = append(raw, row)
	}

	axis := model.DateAxisDate
	if parsedCount == 0 && len(raw) > 0 {
		axis = model.DateAxisText
		l.logger.Warn("no row date could be parsed, keeping dates as text", zap.Int("rows", len(raw)))
	}

	rows := make([]model.RateRow, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, rr := range raw {
		key := rr.label
		if axis == model.DateAxisDate {
			if !rr.parsed {
				l.logger.Warn("unparseable date, skipping row", zap.Int("line", rr.line), zap.String("date", rr.label))
				continue
			}
			key = rr.date.Format(model.DateLayout)
		}
		if seen[key] {
			l.logger.Warn("duplicate date, keeping first row", zap.Int("line", rr.line), zap.String("date", rr.label))
			continue
		}
		seen[key] = true
		rows = append(rows, model.RateRow{Date: rr.date, Label: rr.label, Values: rr.values})
	}

	return model.NewRateTable(columns, rows, axis)
}

// parseHeader locates the date column and returns the cleaned currency names.
func parseHeader(header []string) (int, []string, error) {
	cleaned := make([]string, len(header))
	for i, h := range header {
		cleaned[i] = CleanHeader(h)
	}

	dateCol := 0
	for i, h := range cleaned {
		if strings.EqualFold(h, "date") {
			dateCol = i
			break
		}
	}

	columns := make([]string, 0, len(cleaned))
	seen := make(map[string]bool, len(cleaned))
	for i, h := range cleaned {
		if i == dateCol {
			continue
		}
		if h == "" {
			return 0, nil, fmt.Errorf("%w: blank column name at position %d", apperrors.ErrInvalidCSVHeaders, i+1)
		}
		if seen[h] {
			return 0, nil, fmt.Errorf("%w: duplicate column %q", apperrors.ErrInvalidCSVHeaders, h)
		}
		seen[h] = true
		columns = append(columns, h)
	}
	if len(columns) == 0 {
		return 0, nil, fmt.Errorf("%w: no currency columns", apperrors.ErrInvalidCSVHeaders)
	}
	return dateCol, columns, nil
}

// CleanHeader strips markup, a UTF-8 byte order mark and surrounding whitespace
// from a header cell.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = html.UnescapeString(getHeaderPolicy().Sanitize(h))
	return strings.TrimSpace(h)
}

// ParseDate parses a day-first date such as "05-01-2012" or "5/1/12".
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseRate parses a rate cell. Empty, non-numeric and non-finite cells are NaN.
func ParseRate(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// sniffDelimiter peeks at the header line without consuming it.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		peek = peek[:i]
	}
	if bytes.IndexByte(peek, ',') < 0 && bytes.IndexByte(peek, ';') >= 0 {
		return ';'
	}
	return ','
}
