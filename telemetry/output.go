package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CSVWriter writes samples as CSV rows, with a header before the first.
type CSVWriter struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{out: out}
}

// CreateCSV creates (or truncates) path and returns a writer for it.
func CreateCSV(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &CSVWriter{out: f, closer: f}, nil
}

func (cw *CSVWriter) Write(s Sample) error {
	if cw == nil {
		return nil
	}
	records := []Sample{s}

	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.out); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}
		cw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, cw.out); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	return nil
}

func (cw *CSVWriter) Close() error {
	if cw == nil || cw.closer == nil {
		return nil
	}
	return cw.closer.Close()
}

// ReadCSV parses a trace written by CSVWriter.
func ReadCSV(in io.Reader) ([]Sample, error) {
	var samples []Sample
	if err := gocsv.Unmarshal(in, &samples); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return samples, nil
}
