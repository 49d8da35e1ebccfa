package docmodel

import "time"

type DocType string

var (
	PDF   DocType = "PDF"
	IMAGE DocType = "IMAGE"
	DOC   DocType = "DOC"
	ERR   DocType = "ERROR"
)

// Document is the transient record of one upload. It lives for the duration
// of a single request; the bytes behind Path are removed once extraction ends.
type Document struct {
	Id          string    `json:"doc_id"`
	Name        string    `json:"doc_name"`
	Path        string    `json:"-"`
	Size        int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type ExtractionResult struct {
	Text             string `json:"text"`
	Pages            int    `json:"pages"`
	Method           string `json:"method"` // "pdf-text" | "pdf-ocr" | "image-ocr" | "doc"
	DetectedLanguage string `json:"detected_language"`
}
