package report

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin    = 14.0
	pdfRowHeight = 6.0
	pdfFont      = "Helvetica"
	pdfBodySize  = 8
	pdfTitleSize = 14
)

var pdfHeaderFill = [3]int{59, 130, 246}

func writePDF(title string, cols []column, rows []fields, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetTitle(title, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)

	// Core fonts are cp1252; translate UTF-8 input so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont(pdfFont, "B", pdfBodySize)
		pdf.SetFillColor(pdfHeaderFill[0], pdfHeaderFill[1], pdfHeaderFill[2])
		pdf.SetTextColor(255, 255, 255)
		for _, c := range cols {
			pdf.CellFormat(c.width, pdfRowHeight, tr(c.header), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", pdfBodySize)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, row := range rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		for _, c := range cols {
			text := fitText(pdf, tr(c.value(row)), c.width-2)
			pdf.CellFormat(c.width, pdfRowHeight, text, "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitText shortens s with a trailing ellipsis until it fits in width.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	b := []byte(s)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+ellipsis) > width {
		b = b[:len(b)-1]
	}
	return string(b) + ellipsis
}
