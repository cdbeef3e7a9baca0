// Package csv reads and writes plant tables as CSV with a header row.
package csv

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/raingarden/plantfill"
)

// ReadTable reads a CSV plant table. The first row names the columns.
// Every record carries every known field, so fields absent from the file are
// created empty; unknown columns are carried through unchanged.
func ReadTable(r io.Reader) (*plantfill.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, plantfill.Errorf(plantfill.EINVALID, "table has no header row")
	}
	if err != nil {
		return nil, plantfill.Errorf(plantfill.EINVALID, "reading header: %v", err)
	}

	header := make([]plantfill.Field, 0, len(names))
	for i, name := range names {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		f := plantfill.Field(strings.TrimSpace(name))
		if f == "" {
			return nil, plantfill.Errorf(plantfill.EINVALID, "column %d has an empty name", i+1)
		}
		if slices.Contains(header, f) {
			return nil, plantfill.Errorf(plantfill.EINVALID, "duplicate column %q", f)
		}
		header = append(header, f)
	}

	t := &plantfill.Table{Header: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, plantfill.Errorf(plantfill.EINVALID, "reading row %d: %v", len(t.Records)+1, err)
		}

		values := make(map[plantfill.Field]string, len(header))
		for i, f := range header {
			if i < len(row) {
				values[f] = row[i]
			}
		}
		t.Records = append(t.Records, plantfill.NewRecord(values))
	}
	return t, nil
}

// WriteTable writes t as CSV. Columns follow t.Header, then any other field a
// record carries in canonical order, so values filled into pre-created
// fields are kept. Rows keep their order.
func WriteTable(w io.Writer, t *plantfill.Table) error {
	columns := Columns(t)

	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, f := range columns {
		header[i] = string(f)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, rec := range t.Records {
		for i, f := range columns {
			row[i] = rec.Get(f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Columns returns the column order WriteTable uses for t.
func Columns(t *plantfill.Table) []plantfill.Field {
	columns := slices.Clone(t.Header)
	for _, rec := range t.Records {
		for _, f := range rec.Fields() {
			if !slices.Contains(columns, f) {
				columns = append(columns, f)
			}
		}
	}
	return columns
}
