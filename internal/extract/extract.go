package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lu4p/cat"

	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/domain/docmodel"
	"github.com/nyayai/LegalAPI/internal/metrics"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailed  = errors.New("text extraction failed")
)

type Options struct {
	// ForceOCR rasterizes PDF pages and runs OCR even when a text layer exists.
	ForceOCR bool
}

type Config struct {
	Tesseract string
	Pdftoppm  string
	Lang      string
	DPI       int
}

type Extractor struct {
	runner Runner
	cfg    Config
	logger *logger_i.Logger
}

func NewExtractor(cfg Config, runner Runner) *Extractor {
	if runner == nil {
		runner = execRunner{}
	}
	if cfg.DPI == 0 {
		cfg.DPI = config.OCRDefaultDPI
	}
	return &Extractor{
		runner: runner,
		cfg:    cfg,
		logger: logger_i.NewLogger("Extractor"),
	}
}

func DocTypeFor(path string) docmodel.DocType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return docmodel.PDF
	case ".jpg", ".jpeg", ".png":
		return docmodel.IMAGE
	case ".docx", ".txt", ".rtf":
		return docmodel.DOC
	default:
		return docmodel.ERR
	}
}

// Extract dispatches on the file extension and returns plain text. The caller
// owns the file at path and removes it after extraction on every exit path.
func (e *Extractor) Extract(ctx context.Context, path string, opts Options) (docmodel.ExtractionResult, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("extraction", time.Since(start)) }()

	docType := DocTypeFor(path)
	e.logger.Debug("Extracting document", "path", path, "type", docType)

	var text, method string
	var pages int
	var err error

	switch docType {
	case docmodel.PDF:
		text, pages, method, err = e.extractPDF(ctx, path, opts)
	case docmodel.IMAGE:
		text, err = e.ocrImage(ctx, path)
		pages, method = 1, "image-ocr"
	case docmodel.DOC:
		text, err = extractDoc(path)
		pages, method = 1, "doc"
	default:
		return docmodel.ExtractionResult{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, strings.ToLower(filepath.Ext(path)))
	}

	if err != nil {
		e.logger.Error("Extraction failed", "path", path, "error", err)
		return docmodel.ExtractionResult{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	text = strings.TrimSpace(text)
	if len(text) < config.MinExtractedChars {
		return docmodel.ExtractionResult{}, fmt.Errorf("%w: document yielded no readable text", ErrExtractionFailed)
	}

	metrics.CountExtraction(method)
	return docmodel.ExtractionResult{
		Text:             text,
		Pages:            pages,
		Method:           method,
		DetectedLanguage: DetectLanguage(text),
	}, nil
}

// File reads a .docx, .txt or .rtf file and returns the content as a string
func extractDoc(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract document: %w", err)
	}
	return text, nil
}
