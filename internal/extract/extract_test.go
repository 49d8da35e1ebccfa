package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nyayai/LegalAPI/internal/domain/docmodel"
)

// fakeRunner stands in for tesseract/pdftoppm
type fakeRunner struct {
	onRun func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f.onRun(ctx, name, args...)
}

func testConfig() Config {
	return Config{Tesseract: "tesseract", Pdftoppm: "pdftoppm", Lang: "eng", DPI: 150}
}

func TestDocTypeFor(t *testing.T) {
	tests := []struct {
		path     string
		expected docmodel.DocType
	}{
		{"notice.pdf", docmodel.PDF},
		{"NOTICE.PDF", docmodel.PDF},
		{"scan.jpg", docmodel.IMAGE},
		{"scan.jpeg", docmodel.IMAGE},
		{"scan.png", docmodel.IMAGE},
		{"agreement.docx", docmodel.DOC},
		{"agreement.txt", docmodel.DOC},
		{"agreement.rtf", docmodel.DOC},
		{"archive.zip", docmodel.ERR},
		{"noextension", docmodel.ERR},
	}

	for _, tc := range tests {
		if got := DocTypeFor(tc.path); got != tc.expected {
			t.Errorf("DocTypeFor(%q) = %v, want %v", tc.path, got, tc.expected)
		}
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	e := NewExtractor(testConfig(), &fakeRunner{})

	_, err := e.Extract(context.Background(), "somefile.zip", Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtract_PlainTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agreement.txt")
	content := "This rental agreement is made between the landlord and the tenant."
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(testConfig(), &fakeRunner{})
	result, err := e.Extract(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(result.Text, "rental agreement") {
		t.Errorf("Got text %q", result.Text)
	}
	if result.Method != "doc" {
		t.Errorf("Got method %q, want doc", result.Method)
	}
	if result.DetectedLanguage != "English" {
		t.Errorf("Got language %q, want English", result.DetectedLanguage)
	}
}

func TestExtract_ImageOCR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, []byte("not really a png"), 0600); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{
		onRun: func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			if name != "tesseract" {
				t.Errorf("Expected a tesseract invocation, got %q", name)
			}
			if args[0] != path || args[1] != "stdout" {
				t.Errorf("Unexpected tesseract args: %v", args)
			}
			return []byte("Text recognized from the scanned notice."), nil, nil
		},
	}

	e := NewExtractor(testConfig(), runner)
	result, err := e.Extract(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if result.Method != "image-ocr" {
		t.Errorf("Got method %q, want image-ocr", result.Method)
	}
	if result.Text != "Text recognized from the scanned notice." {
		t.Errorf("Got text %q", result.Text)
	}
}

func TestExtract_OCRFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, []byte("img"), 0600); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{
		onRun: func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			return nil, []byte("Error opening data file eng.traineddata"), errors.New("exit status 1")
		},
	}

	e := NewExtractor(testConfig(), runner)
	_, err := e.Extract(context.Background(), path, Options{})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("Expected ErrExtractionFailed, got %v", err)
	}
}

func TestExtract_TooLittleText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, []byte("img"), 0600); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{
		onRun: func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			return []byte("  a  "), nil, nil
		},
	}

	e := NewExtractor(testConfig(), runner)
	_, err := e.Extract(context.Background(), path, Options{})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("Expected ErrExtractionFailed for near-empty output, got %v", err)
	}
}

func TestOcrPDF_CollectsPagesInOrder(t *testing.T) {
	pdfPath := filepath.Join(t.TempDir(), "scanned.pdf")
	if err := os.WriteFile(pdfPath, []byte("fake pdf"), 0600); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{
		onRun: func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			if name == "pdftoppm" {
				// the prefix is the final argument
				prefix := args[len(args)-1]
				for i := 1; i <= 2; i++ {
					page := fmt.Sprintf("%s-%d.png", prefix, i)
					if err := os.WriteFile(page, []byte("png"), 0600); err != nil {
						t.Fatal(err)
					}
				}
				return nil, nil, nil
			}
			// tesseract on an individual page
			pagePath := args[0]
			return []byte("text of " + filepath.Base(pagePath)), nil, nil
		},
	}

	e := NewExtractor(testConfig(), runner)
	text, pages, err := e.ocrPDF(context.Background(), pdfPath)
	if err != nil {
		t.Fatalf("ocrPDF failed: %v", err)
	}
	if pages != 2 {
		t.Errorf("Got %d pages, want 2", pages)
	}
	if text != "text of page-1.png\ntext of page-2.png" {
		t.Errorf("Got text %q", text)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"English", "This agreement is entered into by the parties on the date written below.", "English"},
		{"Hindi", "यह अनुबंध दोनों पक्षों के बीच नीचे लिखी तारीख को किया गया है।", "Hindi"},
		{"Too short", "ok", "English"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLanguage(tc.text); got != tc.expected {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}
