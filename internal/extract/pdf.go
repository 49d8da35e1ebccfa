package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"

	"github.com/nyayai/LegalAPI/internal/config"
)

func (e *Extractor) extractPDF(ctx context.Context, path string, opts Options) (string, int, string, error) {
	text, pages, err := e.pdfTextLayer(path)
	if err != nil {
		return "", 0, "", err
	}

	if opts.ForceOCR || strings.TrimSpace(text) == "" {
		e.logger.Debug("extractPDF", "falling back to OCR", path)
		ocrText, ocrPages, ocrErr := e.ocrPDF(ctx, path)
		if ocrErr != nil {
			// keep the text layer result when only the fallback failed
			if strings.TrimSpace(text) != "" {
				return text, pages, "pdf-text", nil
			}
			return "", 0, "", ocrErr
		}
		return ocrText, ocrPages, "pdf-ocr", nil
	}
	return text, pages, "pdf-text", nil
}

func (e *Extractor) pdfTextLayer(path string) (string, int, error) {
	f, err := pdf.Open(path)
	if err != nil {
		e.logger.Error("failed opening of pdf file")
		return "", 0, fmt.Errorf("failed to open pdf: %w", err)
	}

	var parts []string
	numPages := f.NumPage()
	e.logger.Debug("pdfTextLayer", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// Log warning but continue with other pages
			e.logger.Error("Error parsing page content", "page #", i, "Error", err)
			continue
		}
		if strings.TrimSpace(content) != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, "\n"), numPages, nil
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		return "", errors.New("timeout")
	}
}
