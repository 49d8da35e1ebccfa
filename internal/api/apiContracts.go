package api

type ChatMessage struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"How do I file an RTI application?"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required"`
	Language string        `json:"language,omitempty" example:"Hindi"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type UploadResponse struct {
	FileId           string `json:"file_id"`
	Filename         string `json:"filename"`
	Text             string `json:"text"`
	DetectedLanguage string `json:"detected_language"`
	TextLength       int    `json:"text_length"`
}

type VerifyRequest struct {
	Text string `json:"text" validate:"required"`
}

type VerifyResponse struct {
	Label string `json:"label" example:"LEGAL"`
}

type SummarizeRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language,omitempty"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type DraftRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language,omitempty"`
}

type DraftResponse struct {
	Draft string `json:"draft"`
}

type ExportPDFRequest struct {
	Content  string `json:"content" validate:"required"`
	Filename string `json:"filename,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	GeminiAPI string `json:"gemini_api" example:"connected"`
	Model     string `json:"model"`
}

// ErrorResponse mirrors what the frontend already renders: the raw detail.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Unsupported file type '.zip'"`
}
