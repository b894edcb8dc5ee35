package render

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry shared by every report type: landscape A4, uniform margins.
const (
	marginLeft   = 10.0
	marginTop    = 15.0
	marginRight  = 10.0
	marginBottom = 15.0

	tableRowHeight = 7.0
)

// Table is one tabular block: a header row that repeats across page
// breaks, fixed column widths in millimetres, and per-column body
// alignment.
type Table struct {
	Headers []string
	Widths  []float64
	Rows    [][]string
	Aligns  []string // per column: "L", "C" or "R"; empty means "L"

	FontSize  float64 // header and body size; 0 selects the default 9pt
	HeaderRGB [3]int  // header background tint; zero value selects #F3F3F3
}

var defaultHeaderTint = [3]int{0xF3, 0xF3, 0xF3}

// gridRGB is the thin uniform cell border color.
var gridRGB = [3]int{0xCE, 0xD4, 0xDA}

// Doc assembles paragraphs and tables into a paginated landscape-A4
// document. Rendering is a pure function of the appended blocks plus the
// style catalog; document metadata is pinned so equal inputs serialize to
// equal bytes.
type Doc struct {
	pdf    *fpdf.Fpdf
	styles *Styles
}

func NewDoc(styles *Styles) *Doc {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	// Both timestamps must be pinned: the writer stamps /ModDate with the
	// wall clock unless overridden, which would leak into the bytes.
	epoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	pdf.SetCreationDate(epoch)
	pdf.SetModificationDate(epoch)
	if styles.hasFonts {
		pdf.AddUTF8Font(FamilyKR, "", styles.fonts.Regular)
		pdf.AddUTF8Font(FamilyKR, "B", styles.fonts.Bold)
	}
	pdf.AddPage()
	return &Doc{pdf: pdf, styles: styles}
}

func (d *Doc) setStyle(s Style) {
	weight := ""
	if s.Bold {
		weight = "B"
	}
	d.pdf.SetFont(s.Family, weight, s.Size)
}

func (d *Doc) contentWidth() float64 {
	pageW, _ := d.pdf.GetPageSize()
	return pageW - marginLeft - marginRight
}

// Paragraph writes a text block spanning the printable width; '\n' forces
// line breaks within the block.
func (d *Doc) Paragraph(text string, s Style) {
	d.setStyle(s)
	lineH := s.Size * 0.5
	d.pdf.MultiCell(d.contentWidth(), lineH, text, "", s.Align, false)
}

// Spacer advances the cursor by h millimetres.
func (d *Doc) Spacer(h float64) {
	d.pdf.Ln(h)
}

// PageBreak starts a new page.
func (d *Doc) PageBreak() {
	d.pdf.AddPage()
}

// Table lays out one tabular block. An empty row set still renders the
// header plus exactly one blank row; a header-only table is never emitted.
// When rows overflow the page the header row is redrawn on the next page.
func (d *Doc) Table(t Table) {
	rows := t.Rows
	if len(rows) == 0 {
		rows = [][]string{make([]string, len(t.Headers))}
	}

	size := t.FontSize
	if size == 0 {
		size = 9
	}
	tint := t.HeaderRGB
	if tint == [3]int{} {
		tint = defaultHeaderTint
	}

	d.pdf.SetDrawColor(gridRGB[0], gridRGB[1], gridRGB[2])
	d.pdf.SetLineWidth(0.2)

	bodyStyle := Style{Family: d.styles.Body.Family, Size: size}

	_, pageH := d.pdf.GetPageSize()
	breakAt := pageH - marginBottom

	d.tableHeader(t, size, tint)
	d.setStyle(bodyStyle)

	for _, row := range rows {
		if d.pdf.GetY()+tableRowHeight > breakAt {
			d.pdf.AddPage()
			d.tableHeader(t, size, tint)
			d.setStyle(bodyStyle)
		}
		for i, width := range t.Widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			align := "L"
			if i < len(t.Aligns) && t.Aligns[i] != "" {
				align = t.Aligns[i]
			}
			d.pdf.CellFormat(width, tableRowHeight, cell, "1", lastCellLn(i, len(t.Widths)), align+"M", false, 0, "")
		}
	}
}

func (d *Doc) tableHeader(t Table, size float64, tint [3]int) {
	d.setStyle(Style{Family: d.styles.Body.Family, Bold: true, Size: size})
	d.pdf.SetFillColor(tint[0], tint[1], tint[2])
	for i, header := range t.Headers {
		d.pdf.CellFormat(t.Widths[i], tableRowHeight, header, "1", lastCellLn(i, len(t.Headers)), "CM", true, 0, "")
	}
}

// lastCellLn moves the cursor to the next line after the final cell of a
// row, staying on the same line otherwise.
func lastCellLn(i, n int) int {
	if i == n-1 {
		return 1
	}
	return 0
}

// Output serializes the document. Layout errors accumulated by the
// underlying writer surface here rather than mid-render.
func (d *Doc) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
