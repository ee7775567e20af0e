// Package sink writes generated measurement rows as CSV.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fieldlab/combine/internal/domain/model"
)

// outputDirPermission is used when creating missing parent directories.
const outputDirPermission = 0o755

// header is the fixed measurement CSV column order.
var header = []string{
	"firstName", "lastName", "gender", "teamName", "date", "age",
	"metric", "value", "units", "flyInDistance", "notes",
}

// CSV streams measurement rows to an underlying writer.
type CSV struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSV wraps w and writes the header row immediately.
func NewCSV(w io.Writer) (*CSV, error) {
	s := &CSV{w: csv.NewWriter(w)}
	if err := s.w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return s, nil
}

// Create opens path for writing, creating parent directories as needed.
func Create(path string) (*CSV, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outputDirPermission); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	s, err := NewCSV(f)
	if err != nil {
		f.Close() //nolint:errcheck // already failing
		return nil, err
	}
	s.closer = f
	return s, nil
}

// Write emits one measurement row.
func (s *CSV) Write(m model.Measurement) error {
	record := []string{
		m.FirstName,
		m.LastName,
		m.Gender,
		m.TeamName,
		m.Date,
		m.Age,
		m.Metric,
		strconv.FormatFloat(m.Value, 'f', -1, 64),
		m.Units,
		m.FlyInDistance,
		m.Notes,
	}
	if err := s.w.Write(record); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the underlying file when Create
// opened one.
func (s *CSV) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("flush rows: %w", err)
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	return nil
}
