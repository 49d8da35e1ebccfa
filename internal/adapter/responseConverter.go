package adapter

import (
	"github.com/nyayai/LegalAPI/internal/api"
	"github.com/nyayai/LegalAPI/internal/domain/docmodel"
)

func ToUploadResponse(doc docmodel.Document, extraction docmodel.ExtractionResult) api.UploadResponse {
	return api.UploadResponse{
		FileId:           doc.Id,
		Filename:         doc.Name,
		Text:             extraction.Text,
		DetectedLanguage: extraction.DetectedLanguage,
		TextLength:       len(extraction.Text),
	}
}

func ErrorDetail(message string) api.ErrorResponse {
	return api.ErrorResponse{Detail: message}
}
