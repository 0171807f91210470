package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfMargin     = 12.0
	pdfLineHeight = 5.0
	pdfCellPad    = 1.5
)

// PDFOptions configures page setup.
type PDFOptions struct {
	// Orientation is "P" or "L".
	Orientation string
	Creator     string
}

// PDFExporter renders datasets into tabular PDFs and convocation documents.
type PDFExporter struct {
	opts PDFOptions
}

// NewPDFExporter constructs a portrait PDF exporter.
func NewPDFExporter() *PDFExporter {
	return NewPDFExporterWithOptions(PDFOptions{})
}

// NewPDFExporterWithOptions constructs a PDF exporter with explicit page setup.
func NewPDFExporterWithOptions(opts PDFOptions) *PDFExporter {
	if opts.Orientation != "L" {
		opts.Orientation = "P"
	}
	if opts.Creator == "" {
		opts.Creator = "exam-logistics-api"
	}
	return &PDFExporter{opts: opts}
}

type pdfDoc struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func (e *PDFExporter) newDoc(title string) pdfDoc {
	pdf := gofpdf.New(e.opts.Orientation, "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+4)
	pdf.SetCreator(e.opts.Creator, true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.AliasNbPages("{nb}")
	doc := pdfDoc{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	return doc
}

func (d pdfDoc) contentWidth() float64 {
	width, _ := d.GetPageSize()
	left, _, right, _ := d.GetMargins()
	return width - left - right
}

// fits reports whether h millimetres still fit above the bottom margin.
func (d pdfDoc) fits(h float64) bool {
	_, height := d.GetPageSize()
	_, margin := d.GetAutoPageBreak()
	return d.GetY()+h <= height-margin
}

func (d pdfDoc) split(text string, width float64) []string {
	out := make([]string, 0, 1)
	for _, paragraph := range strings.Split(d.tr(text), "\n") {
		lines := d.SplitLines([]byte(paragraph), width)
		if len(lines) == 0 {
			out = append(out, "")
			continue
		}
		for _, line := range lines {
			out = append(out, string(line))
		}
	}
	return out
}

func (d pdfDoc) output() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := d.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d pdfDoc) heading(title, subtitle string) {
	if title != "" {
		d.SetFont(pdfFont, "B", 14)
		d.MultiCell(0, 7, d.tr(title), "", "C", false)
	}
	if subtitle != "" {
		d.SetFont(pdfFont, "", 10)
		d.SetTextColor(80, 80, 80)
		d.MultiCell(0, 5, d.tr(subtitle), "", "C", false)
		d.SetTextColor(0, 0, 0)
	}
	d.Ln(4)
}

// Render creates a PDF document with an optional title and a table body. Cells wrap on
// several lines and the header row repeats on every page.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	doc := e.newDoc(title)
	doc.AddPage()
	doc.heading(title, data.Subtitle)

	widths := columnWidths(data.weights(), doc.contentWidth())
	header := func() {
		doc.SetFont(pdfFont, "B", 9)
		doc.SetFillColor(224, 236, 248)
		doc.tableRow(data.Headers, widths, true)
		doc.SetFont(pdfFont, "", 9)
	}
	header()
	for _, row := range data.Rows {
		cells := data.record(row)
		if !doc.fits(doc.rowHeight(cells, widths)) {
			doc.AddPage()
			header()
		}
		doc.tableRow(cells, widths, false)
	}

	if data.Footer != "" {
		doc.Ln(4)
		doc.SetFont(pdfFont, "I", 9)
		doc.MultiCell(0, pdfLineHeight, doc.tr(data.Footer), "", "L", false)
	}
	return doc.output()
}

func columnWidths(weights []float64, total float64) []float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = total * w / sum
	}
	return out
}

func (d pdfDoc) rowHeight(cells []string, widths []float64) float64 {
	lines := 1
	for i, cell := range cells {
		if n := len(d.split(cell, widths[i]-2*pdfCellPad)); n > lines {
			lines = n
		}
	}
	return float64(lines)*pdfLineHeight + 2*pdfCellPad
}

func (d pdfDoc) tableRow(cells []string, widths []float64, fill bool) {
	height := d.rowHeight(cells, widths)
	x, y := d.GetX(), d.GetY()
	style := "D"
	if fill {
		style = "FD"
	}
	for i, cell := range cells {
		d.Rect(x, y, widths[i], height, style)
		for n, line := range d.split(cell, widths[i]-2*pdfCellPad) {
			d.SetXY(x+pdfCellPad, y+pdfCellPad+float64(n)*pdfLineHeight)
			d.CellFormat(widths[i]-2*pdfCellPad, pdfLineHeight, line, "", 0, "L", false, 0, "")
		}
		x += widths[i]
	}
	left, _, _, _ := d.GetMargins()
	d.SetXY(left, y+height)
}

// RenderDocuments renders one or more letter-style documents, each starting on a new page.
func (e *PDFExporter) RenderDocuments(docs []Document) ([]byte, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("pdf requires at least one document")
	}
	out := e.newDoc(docs[0].Title)
	for _, doc := range docs {
		out.AddPage()
		out.document(doc)
	}
	return out.output()
}

func (d pdfDoc) document(doc Document) {
	d.heading(doc.Title, doc.Subtitle)
	if doc.Badge != "" {
		d.badge(doc.Badge)
	}
	for _, block := range doc.Blocks {
		d.block(block)
	}
}

func (d pdfDoc) badge(text string) {
	d.SetFont(pdfFont, "B", 10)
	label := d.tr(text)
	w := d.GetStringWidth(label) + 8
	left, _, _, _ := d.GetMargins()
	d.SetX(left + (d.contentWidth()-w)/2)
	d.SetFillColor(224, 242, 254)
	d.SetTextColor(3, 105, 161)
	d.CellFormat(w, 7, label, "", 1, "C", true, 0, "")
	d.SetTextColor(0, 0, 0)
	d.Ln(4)
}

func (d pdfDoc) block(b Block) {
	width := d.contentWidth()
	if b.Boxed {
		d.box(b, width)
		return
	}
	if b.Heading != "" {
		d.SetFont(pdfFont, "B", 11)
		d.MultiCell(0, 6, d.tr(b.heading()), "", "L", false)
	}
	d.SetFont(pdfFont, "", 10)
	for _, line := range b.Lines {
		d.MultiCell(0, pdfLineHeight+0.5, d.tr(line), "", "L", false)
	}
	d.bullets(b.Bullets, 0)
	d.Ln(3)
}

func (d pdfDoc) bullets(items []string, indent float64) {
	left, _, _, _ := d.GetMargins()
	for _, item := range items {
		d.SetX(left + indent + 4)
		d.MultiCell(d.contentWidth()-indent-8, pdfLineHeight+0.5, d.tr("• "+item), "", "L", false)
	}
}

// box draws a bordered card and keeps it on a single page.
func (d pdfDoc) box(b Block, width float64) {
	inner := width - 8
	d.SetFont(pdfFont, "", 10)
	lines := 0
	for _, line := range b.Lines {
		lines += len(d.split(line, inner))
	}
	for _, item := range b.Bullets {
		lines += len(d.split("• "+item, inner-4))
	}
	height := float64(lines)*(pdfLineHeight+0.5) + 8
	if b.Heading != "" {
		height += 7
	}
	if !d.fits(height) {
		d.AddPage()
	}

	left, _, _, _ := d.GetMargins()
	y := d.GetY()
	d.SetDrawColor(203, 213, 225)
	d.Rect(left, y, width, height, "D")
	d.SetDrawColor(0, 0, 0)
	d.SetXY(left+4, y+4)
	if b.Heading != "" {
		d.SetFont(pdfFont, "B", 11)
		d.CellFormat(inner, 6, d.tr(b.heading()), "", 1, "L", false, 0, "")
		d.Ln(1)
	}
	d.SetFont(pdfFont, "", 10)
	for _, line := range b.Lines {
		d.SetX(left + 4)
		d.MultiCell(inner, pdfLineHeight+0.5, d.tr(line), "", "L", false)
	}
	d.bullets(b.Bullets, 4)
	d.SetXY(left, y+height+3)
}
