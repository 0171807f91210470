package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	maxSheetName  = 31
	minColWidth   = 10.0
	maxColWidth   = 60.0
	defaultSheet  = "Sheet1"
	headerFill    = "E0ECF8"
	headerBorder  = "94A3B8"
	fallbackSheet = "Export"
)

// Sheet is one worksheet of a workbook.
type Sheet struct {
	Name string
	Data Dataset
}

// XLSXExporter renders datasets into Excel workbooks.
type XLSXExporter struct{}

// NewXLSXExporter constructs an XLSX exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Render produces a single-sheet workbook.
func (e *XLSXExporter) Render(data Dataset, sheetName string) ([]byte, error) {
	return e.RenderSheets([]Sheet{{Name: sheetName, Data: data}})
}

// RenderSheets produces a workbook with one worksheet per entry, in order.
func (e *XLSXExporter) RenderSheets(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one sheet")
	}
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    borders(headerBorder),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx header style: %w", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    borders(headerBorder),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx body style: %w", err)
	}

	used := make(map[string]int, len(sheets))
	for i, sheet := range sheets {
		if len(sheet.Data.Headers) == 0 {
			return nil, fmt.Errorf("xlsx sheet %q requires at least one header", sheet.Name)
		}
		name := uniqueSheetName(sheet.Name, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, sheet.Data, headerStyle, bodyStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func borders(color string) []excelize.Border {
	out := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "top", "right", "bottom"} {
		out = append(out, excelize.Border{Type: side, Color: color, Style: 1})
	}
	return out
}

func writeSheet(f *excelize.File, name string, data Dataset, headerStyle, bodyStyle int) error {
	header := make([]interface{}, len(data.Headers))
	for i, h := range data.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	widths := make([]float64, len(data.Headers))
	for i, h := range data.Headers {
		widths[i] = textWidth(h)
	}
	for r, row := range data.Rows {
		record := data.record(row)
		values := make([]interface{}, len(record))
		for i, v := range record {
			values[i] = v
			if w := textWidth(v); w > widths[i] {
				widths[i] = w
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", r+1, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(data.Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style xlsx header: %w", err)
	}
	if len(data.Rows) > 0 {
		if err := f.SetCellStyle(name, "A2", fmt.Sprintf("%s%d", lastCol, len(data.Rows)+1), bodyStyle); err != nil {
			return fmt.Errorf("style xlsx body: %w", err)
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, clampWidth(w)); err != nil {
			return fmt.Errorf("size xlsx column %s: %w", col, err)
		}
	}
	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// textWidth estimates a column width from the longest line of a value.
func textWidth(v string) float64 {
	longest := 0
	for _, line := range strings.Split(v, "\n") {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return float64(longest) + 2
}

func clampWidth(w float64) float64 {
	if w < minColWidth {
		return minColWidth
	}
	if w > maxColWidth {
		return maxColWidth
	}
	return w
}

// SheetName makes a worksheet name acceptable to Excel: no []:*?/\ and at most 31 characters.
func SheetName(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return ' '
		}
		return r
	}, raw)
	cleaned = strings.Trim(strings.Join(strings.Fields(cleaned), " "), "'")
	if cleaned == "" {
		cleaned = fallbackSheet
	}
	if utf8.RuneCountInString(cleaned) > maxSheetName {
		cleaned = string([]rune(cleaned)[:maxSheetName])
	}
	return cleaned
}

func uniqueSheetName(raw string, used map[string]int) string {
	name := SheetName(raw)
	key := strings.ToLower(name)
	used[key]++
	if used[key] == 1 {
		return name
	}
	suffix := fmt.Sprintf(" (%d)", used[key])
	runes := []rune(name)
	if len(runes)+len(suffix) > maxSheetName {
		runes = runes[:maxSheetName-len(suffix)]
	}
	candidate := string(runes) + suffix
	used[strings.ToLower(candidate)]++
	return candidate
}
