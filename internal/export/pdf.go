package export

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/nyayai/LegalAPI/internal/metrics"
)

const (
	fontFamily = "Times"
	fontSize   = 11
	marginMM   = 20
	lineHeight = 5
)

// FromText renders plain text onto A4 pages: Times 11pt, 2cm margins, word
// wrap, blank line between paragraphs. Nothing touches disk.
func FromText(content string) ([]byte, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("pdf_export", time.Since(start)) }()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(true, marginMM)
	doc.AddPage()
	doc.SetFont(fontFamily, "", fontSize)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, paragraph := range strings.Split(content, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			doc.Ln(lineHeight)
			continue
		}
		doc.MultiCell(0, lineHeight, tr(paragraph), "", "L", false)
		doc.Ln(2.5)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
