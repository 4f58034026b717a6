// Package csvx provides streaming access to header-mapped CSV files.
package csvx

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is a single CSV record keyed by trimmed header column name.
// Columns absent from the file (or missing from a short record) are not present
// in the map, which lets callers distinguish "column omitted" from "empty value".
type Row map[string]string

// Has reports whether the column was present in this record.
func (r Row) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// Get returns the value for column, or the empty string when absent.
func (r Row) Get(column string) string {
	return r[column]
}

// ForEach opens the CSV file at path and calls fn for every data row in file
// order. The first record is consumed as the header. Iteration stops on the
// first error returned by fn.
func ForEach(path string, fn func(row Row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	br := stripUTF8BOM(bufio.NewReader(f))

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("csv %s: missing header", path)
		}
		return fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read csv record: %w", err)
		}

		row := make(Row, len(header))
		for i, value := range record {
			if i >= len(header) {
				break
			}
			row[header[i]] = value
		}

		if err := fn(row); err != nil {
			return err
		}
	}
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
