package trip

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// A4 metrics and palette used by the voucher layout.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
	marginX    = 40.0
	boxWidth   = 515.0
	bottomEdge = 60.0
)

type rgbColor struct{ r, g, b float64 }

var (
	headerColor     = rgbColor{0.0, 0.25, 0.50}
	primaryColor    = rgbColor{0.0, 0.48, 0.80}
	backgroundColor = rgbColor{0.89, 0.95, 0.99}
	lightGray       = rgbColor{0.96, 0.96, 0.96}
	darkGray        = rgbColor{0.29, 0.29, 0.29}
)

// voucherWriter accumulates PDF content streams, one per A4 page, and
// assembles them into a single PDF 1.4 document.
type voucherWriter struct {
	pages []*bytes.Buffer
	page  *bytes.Buffer
	y     float64
}

func newVoucherWriter() *voucherWriter {
	w := &voucherWriter{}
	w.newPage()
	return w
}

func (w *voucherWriter) newPage() {
	w.page = &bytes.Buffer{}
	w.pages = append(w.pages, w.page)
	w.y = pageHeight - 60
}

// ensureSpace starts a new page when the next block would cross the bottom
// margin.
func (w *voucherWriter) ensureSpace(height float64) {
	if w.y-height < bottomEdge {
		w.newPage()
	}
}

func (w *voucherWriter) text(x, y, size float64, bold bool, color rgbColor, value string) {
	font := "/F1"
	if bold {
		font = "/F2"
	}
	fmt.Fprintf(w.page, "BT\n%s %.1f Tf\n%.3f %.3f %.3f rg\n%.1f %.1f Td\n(%s) Tj\nET\n",
		font, size, color.r, color.g, color.b, x, y, pdfEscape(value))
}

// centeredText approximates Helvetica glyph widths at half the point size.
func (w *voucherWriter) centeredText(y, size float64, bold bool, color rgbColor, value string) {
	width := float64(len(value)) * size * 0.5
	x := (pageWidth - width) / 2
	if x < marginX {
		x = marginX
	}
	w.text(x, y, size, bold, color, value)
}

func (w *voucherWriter) rect(x, y, width, height float64, fill rgbColor) {
	fmt.Fprintf(w.page, "%.3f %.3f %.3f rg\n%.1f %.1f %.1f %.1f re\nf\n",
		fill.r, fill.g, fill.b, x, y, width, height)
}

func (w *voucherWriter) heading(value string) {
	w.ensureSpace(40)
	w.text(marginX, w.y, 16, true, headerColor, value)
	w.y -= 24
}

// boxedLines draws a filled panel with one text line per entry.
func (w *voucherWriter) boxedLines(lines []string, fill rgbColor) {
	height := float64(len(lines))*18 + 16
	w.ensureSpace(height + 10)

	top := w.y
	w.rect(marginX, top-height, boxWidth, height, fill)

	textY := top - 20
	for _, line := range lines {
		w.text(marginX+10, textY, 12, false, darkGray, line)
		textY -= 18
	}
	w.y = top - height - 16
}

func (w *voucherWriter) plainLine(indent float64, size float64, color rgbColor, value string) {
	w.ensureSpace(18)
	w.text(marginX+indent, w.y, size, false, color, value)
	w.y -= 16
}

// buildVoucherPDF renders the travel voucher for an assembled trip view.
func buildVoucherPDF(view TripView) ([]byte, error) {
	w := newVoucherWriter()

	w.centeredText(w.y, 24, true, headerColor, "Comprovante de Viagem")
	w.y -= 22
	w.centeredText(w.y, 12, false, primaryColor, "Seu comprovante oficial de viagem")
	w.y -= 36

	w.heading("Informações do Viajante")
	w.boxedLines([]string{
		fmt.Sprintf("Nome: %s", view.User.Name),
		fmt.Sprintf("Município de Saída: %s, %s", view.DepartureMunicipalityName, view.DepartureFederativeUnit),
		fmt.Sprintf("Status da Viagem: %s", view.StatusName),
	}, lightGray)

	w.heading("Detalhes da Viagem")
	w.boxedLines([]string{
		fmt.Sprintf("Data de Partida: %s", displayDate(view.StartDate)),
		fmt.Sprintf("Data de Chegada: %s", displayDate(view.EndDate)),
	}, lightGray)

	w.heading("Destinos")
	for i, destination := range view.Destinations {
		w.boxedLines([]string{
			fmt.Sprintf("Destino %d: %s, %s", i+1, destination.Municipality.Name, destination.FederativeUnit.Name),
			fmt.Sprintf("Data de Chegada: %s", displayDate(&destination.ArrivalDate)),
		}, backgroundColor)

		if len(destination.Costs) == 0 {
			continue
		}

		w.plainLine(0, 12, primaryColor, "Custos:")
		for _, cost := range destination.Costs {
			w.plainLine(10, 12, darkGray, fmt.Sprintf("- Tipo de Custo: %s", cost.CostTypeName))
			w.plainLine(10, 12, darkGray, fmt.Sprintf("- Valor: %s", formatBRL(cost.Amount)))
		}
		w.y -= 8
	}

	w.ensureSpace(80)
	w.y -= 20
	w.centeredText(w.y, 12, true, headerColor, "Emitido por:")
	w.y -= 18
	w.centeredText(w.y, 12, false, darkGray, "Sistema de Gestão de Viagens")
	w.y -= 16
	voucherNumber := "-"
	if view.ID != nil {
		voucherNumber = fmt.Sprintf("%d", *view.ID)
	}
	w.centeredText(w.y, 12, false, darkGray, fmt.Sprintf("Número do comprovante: %s", voucherNumber))

	return w.assemble()
}

// displayDate converts the wire YYYY-MM-DD form to DD/MM/YYYY for print.
func displayDate(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	t, err := parseDate(*value)
	if err != nil {
		return *value
	}
	return formatDate(t)
}

func (w *voucherWriter) assemble() ([]byte, error) {
	pageCount := len(w.pages)

	// 1 catalog, 2 pages root, 3 F1, 4 F2, then page/content pairs.
	kids := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 5+2*i))
	}

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), pageCount),
		"3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>\nendobj\n",
	}

	for i, page := range w.pages {
		pageNum := 5 + 2*i
		contentNum := pageNum + 1
		objects = append(objects, fmt.Sprintf(
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.0f %.0f] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageNum, pageWidth, pageHeight, contentNum,
		))

		stream := page.String()
		objects = append(objects, fmt.Sprintf(
			"%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentNum, len(stream), stream,
		))
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

var winAnsiEncoder = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

var pdfStringReplacer = strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")

// pdfEscape converts text to the WinAnsi byte form the Type1 fonts declare and
// escapes the string delimiters. Characters outside Windows-1252 degrade to
// the encoder's substitute rune.
func pdfEscape(v string) string {
	encoded, err := winAnsiEncoder.String(v)
	if err == nil {
		v = encoded
	}
	return pdfStringReplacer.Replace(v)
}
