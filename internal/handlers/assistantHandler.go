package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nyayai/LegalAPI/internal/api"
	"github.com/nyayai/LegalAPI/internal/assistant"
	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/export"
	"github.com/nyayai/LegalAPI/internal/extract"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

var (
	logRH     *logger_i.Logger
	service   assistant.Service
	extractor *extract.Extractor
	cfg       *config.Config
)

// Init wires the handler package to its collaborators. Call once before the
// server starts accepting requests.
func Init(assistantService assistant.Service, documentExtractor *extract.Extractor, appConfig *config.Config) {
	logRH = logger_i.NewLogger("handlers")
	service = assistantService
	extractor = documentExtractor
	cfg = appConfig
}

func decodeBody(w http.ResponseWriter, request *http.Request, target interface{}) bool {
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logRH.Error("Couldn't close the request body reader :", err)
		}
	}(request.Body)

	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		logRH.Warn("Bad request body: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return false
	}
	return true
}

func toServiceMessages(messages []api.ChatMessage) []assistant.Message {
	converted := make([]assistant.Message, 0, len(messages))
	for _, m := range messages {
		converted = append(converted, assistant.Message{Role: m.Role, Content: m.Content})
	}
	return converted
}

// ChatHandler godoc
// @Summary      Chat with the legal assistant
// @Description  Sends the conversation transcript to the model and returns the assistant reply. Off-topic conversations get a fixed redirect message.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest   true  "Conversation messages and optional preferred language"
// @Success      200      {object}  api.ChatResponse  "Assistant reply"
// @Failure      400      {object}  api.ErrorResponse "No user message in the transcript"
// @Failure      429      {object}  api.ErrorResponse "Model rate limited"
// @Failure      502      {object}  api.ErrorResponse "Model failed"
// @Router       /api/chat [post]
func ChatHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.ChatRequest
	if !decodeBody(w, request, &requestData) {
		return
	}
	if len(requestData.Messages) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, "messages is required")
		return
	}

	reply, err := service.Chat(request.Context(), toServiceMessages(requestData.Messages), requestData.Language)
	if err != nil {
		logRH.Warn("Chat failed: ", "error:", err)
		writeMappedError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.ChatResponse{Reply: reply})
}

// VerifyHandler godoc
// @Summary      Classify text as legal or not
// @Description  Returns LEGAL when the text concerns a legal matter, NOT_LEGAL otherwise.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request  body      api.VerifyRequest   true  "Text to classify"
// @Success      200      {object}  api.VerifyResponse  "Classification label"
// @Failure      400      {object}  api.ErrorResponse   "Empty text"
// @Failure      502      {object}  api.ErrorResponse   "Model reply was not a known label"
// @Router       /api/verify [post]
func VerifyHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.VerifyRequest
	if !decodeBody(w, request, &requestData) {
		return
	}
	if strings.TrimSpace(requestData.Text) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	label, err := service.ClassifyLegal(request.Context(), requestData.Text)
	if err != nil {
		logRH.Warn("Verify failed: ", "error:", err)
		writeMappedError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.VerifyResponse{Label: string(label)})
}

// SummarizeHandler godoc
// @Summary      Summarize a legal document
// @Description  Produces a structured plain-language summary of the given document text, in the requested language.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request  body      api.SummarizeRequest   true  "Document text and optional output language"
// @Success      200      {object}  api.SummarizeResponse  "Structured summary"
// @Failure      400      {object}  api.ErrorResponse      "Empty text"
// @Failure      504      {object}  api.ErrorResponse      "Model timed out"
// @Router       /api/summarize [post]
func SummarizeHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.SummarizeRequest
	if !decodeBody(w, request, &requestData) {
		return
	}
	if strings.TrimSpace(requestData.Text) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	summary, err := service.Summarize(request.Context(), requestData.Text, requestData.Language)
	if err != nil {
		logRH.Warn("Summarize failed: ", "error:", err)
		writeMappedError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.SummarizeResponse{Summary: summary})
}

// DraftHandler godoc
// @Summary      Draft a legal document
// @Description  Drafts an RTI application, legal notice, FIR complaint or similar document from the user's description.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request  body      api.DraftRequest   true  "What to draft and optional output language"
// @Success      200      {object}  api.DraftResponse  "Drafted document text"
// @Failure      400      {object}  api.ErrorResponse  "Empty text"
// @Failure      502      {object}  api.ErrorResponse  "Model failed"
// @Router       /api/draft [post]
func DraftHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.DraftRequest
	if !decodeBody(w, request, &requestData) {
		return
	}
	if strings.TrimSpace(requestData.Text) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	draft, err := service.Draft(request.Context(), requestData.Text, requestData.Language)
	if err != nil {
		logRH.Warn("Draft failed: ", "error:", err)
		writeMappedError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.DraftResponse{Draft: draft})
}

// ExportPDFHandler godoc
// @Summary      Export text as a PDF
// @Description  Renders the given text into an A4 PDF and returns it as a download.
// @Tags         Export
// @Accept       json
// @Produce      application/pdf
// @Param        request  body  api.ExportPDFRequest  true  "Content to render and optional filename"
// @Success      200      {file}    file               "The rendered PDF"
// @Failure      400      {object}  api.ErrorResponse  "Empty content"
// @Router       /api/export/pdf [post]
func ExportPDFHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.ExportPDFRequest
	if !decodeBody(w, request, &requestData) {
		return
	}
	if strings.TrimSpace(requestData.Content) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	rendered, err := export.FromText(requestData.Content)
	if err != nil {
		logRH.Error("PDF export failed: ", "error:", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Could not render the PDF")
		return
	}

	filename := sanitizeFilename(requestData.Filename)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rendered); err != nil {
		logRH.Error("Error writing PDF response: ", "error:", err)
	}
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "nyayai_output"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Probes the configured model with a trivial prompt and reports whether it answered.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse  "Service health and model reachability"
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, request *http.Request) {
	modelStatus := "unreachable"
	if service.Healthy(request.Context()) {
		modelStatus = "connected"
	}
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:    "ok",
		GeminiAPI: modelStatus,
		Model:     activeModelName(),
	})
}

func activeModelName() string {
	if cfg.LLMProvider == config.ProviderOpenAI {
		return cfg.OpenAIModel
	}
	return cfg.GeminiModel
}
