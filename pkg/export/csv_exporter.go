package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// utf8BOM lets spreadsheet software detect UTF-8 and keep accented names intact.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
	// Widths holds relative column weights for PDF and XLSX layouts. Optional.
	Widths   []float64
	Subtitle string
	Footer   string
}

// CSVOptions tweaks the CSV dialect.
type CSVOptions struct {
	Delimiter rune
	BOM       bool
}

// CSVExporter renders Dataset records into CSV bytes.
type CSVExporter struct {
	opts CSVOptions
}

// NewCSVExporter builds a CSV exporter using the semicolon dialect expected by French spreadsheets.
func NewCSVExporter() *CSVExporter {
	return NewCSVExporterWithOptions(CSVOptions{Delimiter: ';', BOM: true})
}

// NewCSVExporterWithOptions builds a CSV exporter with an explicit dialect.
func NewCSVExporterWithOptions(opts CSVOptions) *CSVExporter {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &CSVExporter{opts: opts}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	if e.opts.BOM {
		buf.Write(utf8BOM)
	}
	writer := csv.NewWriter(buf)
	writer.Comma = e.opts.Delimiter
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		if err := writer.Write(data.record(row)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (d Dataset) record(row map[string]string) []string {
	record := make([]string, len(d.Headers))
	for i, header := range d.Headers {
		record[i] = row[header]
	}
	return record
}

// weights returns one positive weight per header.
func (d Dataset) weights() []float64 {
	out := make([]float64, len(d.Headers))
	for i := range out {
		out[i] = 1
		if i < len(d.Widths) && d.Widths[i] > 0 {
			out[i] = d.Widths[i]
		}
	}
	return out
}
