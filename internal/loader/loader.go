// Package loader reads the catalog and order CSV files.
//
// Both files start with a header row which is skipped. Catalog rows are
// (identifier, name, price, ...) with extra columns ignored; order rows are
// (identifier, quantity).
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inkom-receipt/internal/model"
	"github.com/fairyhunter13/inkom-receipt/internal/store"
)

var (
	errNoHeader      = errors.New("missing header row")
	errNegativePrice = errors.New("must be >= 0")
	errQuantity      = errors.New("must be > 0")
)

// LoadCatalog parses the catalog file at path.
func LoadCatalog(path string) (*store.Catalog, error) {
	rows, err := readRows(path, KindCatalog)
	if err != nil {
		return nil, err
	}
	c := store.New()
	for _, rec := range rows {
		row, line := rec.fields, rec.line
		if len(row) < 3 {
			return nil, &ParseError{Path: path, Line: line, Err: fmt.Errorf("expected at least 3 columns, got %d", len(row))}
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Field: "price", Err: err}
		}
		if price.IsNegative() {
			return nil, &ParseError{Path: path, Line: line, Field: "price", Err: errNegativePrice}
		}
		c.Put(model.Product{ProductID: row[0], Name: row[1], Price: price})
	}
	return c, nil
}

// LoadOrder parses the order file at path, preserving row order.
func LoadOrder(path string) ([]model.OrderLine, error) {
	rows, err := readRows(path, KindOrder)
	if err != nil {
		return nil, err
	}
	lines := make([]model.OrderLine, 0, len(rows))
	for _, rec := range rows {
		row, line := rec.fields, rec.line
		if len(row) < 2 {
			return nil, &ParseError{Path: path, Line: line, Err: fmt.Errorf("expected 2 columns, got %d", len(row))}
		}
		q, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Field: "quantity", Err: err}
		}
		if q <= 0 {
			return nil, &ParseError{Path: path, Line: line, Field: "quantity", Err: errQuantity}
		}
		lines = append(lines, model.OrderLine{ProductID: row[0], Quantity: q, Line: line})
	}
	return lines, nil
}

// record is one CSV data row and the 1-based file line it starts on.
type record struct {
	fields []string
	line   int
}

// readRows returns the data rows of a CSV file with the header removed.
// The file is closed before returning.
func readRows(path string, kind Kind) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Kind: kind, Path: path}
		}
		return nil, fmt.Errorf("open %s file: %w", kind, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, &ParseError{Path: path, Err: errNoHeader}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	var rows []record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv errors already carry their own line and column.
			return nil, &ParseError{Path: path, Err: err}
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, record{fields: row, line: line})
	}
	return rows, nil
}
