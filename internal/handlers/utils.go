package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/nyayai/LegalAPI/internal/adapter"
	"github.com/nyayai/LegalAPI/internal/assistant"
	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/extract"
	"github.com/nyayai/LegalAPI/internal/llm"
)

// ErrFileTooLarge rejects uploads over the configured byte limit before
// anything is written to disk.
var ErrFileTooLarge = errors.New("file too large")

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, detail string) {
	writeJsonResponse(w, httpCode, adapter.ErrorDetail(detail))
}

// writeMappedError translates domain sentinels into the HTTP codes the
// frontend distinguishes between.
func writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		WriteErrorResponse(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, extract.ErrExtractionFailed):
		WriteErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrFileTooLarge):
		WriteErrorResponse(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, assistant.ErrNoUserMessage):
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, llm.ErrRateLimited):
		WriteErrorResponse(w, http.StatusTooManyRequests, "The model is rate limited right now, try again shortly")
	case errors.Is(err, llm.ErrTimeout):
		WriteErrorResponse(w, http.StatusGatewayTimeout, "The model did not answer in time")
	case errors.Is(err, llm.ErrMalformedReply), errors.Is(err, llm.ErrModelError):
		WriteErrorResponse(w, http.StatusBadGateway, "The model reply could not be used")
	default:
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

func validateContext(ctx context.Context) bool {
	log := logRH
	if traceId, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		log = log.With("traceId", traceId)
	}
	if ctx.Err() != nil {
		log.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		log.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func getUploadDirectory(dir string) (string, string) {
	if dir == "" {
		dir = config.DefaultUploadDir
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", "Storage Error"
	}
	return dir, ""
}
