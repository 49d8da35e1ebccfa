package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/nyayai/LegalAPI/internal/adapter"
	"github.com/nyayai/LegalAPI/internal/adapter/utils"
	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/domain/docmodel"
	"github.com/nyayai/LegalAPI/internal/extract"
)

// UploadHandler handles document uploads and returns the extracted text.
// @Summary      Upload a document for text extraction
// @Description  Receives a PDF, image or word-processor file via multipart/form-data, extracts its text (falling back to OCR for scanned PDFs) and returns it. The file is deleted after extraction.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file       formData  file    true   "The document to extract text from"
// @Param        force_ocr  formData  string  false  "Set to 'true' to skip the PDF text layer and OCR every page"
// @Success      200  {object}  api.UploadResponse "Extracted text and detected language"
// @Failure      413  {object}  api.ErrorResponse  "File exceeds the size limit"
// @Failure      415  {object}  api.ErrorResponse  "Unsupported file type"
// @Failure      422  {object}  api.ErrorResponse  "The document yielded no usable text"
// @Router       /api/upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	targetDir, errString := getUploadDirectory(cfg.UploadDir)
	if errString != "" {
		logRH.Error("Couldn't get upload directory :", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, errString)
		return
	}

	//cap the body itself so an oversized upload is cut off mid-read instead
	//of being spooled to temp disk by the multipart parser first
	r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxFileBytes+config.MultipartOverheadBytes)
	if err := r.ParseMultipartForm(config.MultipartMemoryLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logRH.Warn("Oversized upload cut off: ", "limit:", maxErr.Limit)
			writeMappedError(w, fmt.Errorf("%w: the upload exceeds the %d byte limit",
				ErrFileTooLarge, cfg.MaxFileBytes))
			return
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Could not parse the upload")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	//the body cap leaves headroom for form boilerplate, so a file just over
	//the limit can still arrive intact and is rejected here
	if fileMetadata.Size > cfg.MaxFileBytes {
		logRH.Warn("Oversized upload rejected: ", "filename:", fileMetadata.Filename, "size:", fileMetadata.Size)
		writeMappedError(w, fmt.Errorf("%w: %d bytes, the limit is %d bytes",
			ErrFileTooLarge, fileMetadata.Size, cfg.MaxFileBytes))
		return
	}
	if extract.DocTypeFor(fileMetadata.Filename) == docmodel.ERR {
		WriteErrorResponse(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("Unsupported file type '%s'", filepath.Ext(fileMetadata.Filename)))
		return
	}

	doc := docmodel.Document{
		Id:          utils.GetNewUUID(),
		Name:        fileMetadata.Filename,
		Size:        fileMetadata.Size,
		ContentType: fileMetadata.Header.Get("Content-Type"),
		UploadedAt:  time.Now(),
	}
	doc.Path = filepath.Join(targetDir, doc.Id+filepath.Ext(fileMetadata.Filename))

	destinationFileWriter, err := os.Create(doc.Path)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	defer func() {
		destinationFileWriter.Close()
		if err := os.Remove(doc.Path); err != nil {
			logRH.Warn("Couldn't remove the uploaded file: ", "path:", doc.Path, "error:", err)
		}
	}()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Write error")
		return
	}

	extraction, err := extractor.Extract(r.Context(), doc.Path, extract.Options{
		ForceOCR: r.FormValue("force_ocr") == "true",
	})
	if err != nil {
		logRH.Warn("Extraction failed: ", "filename:", doc.Name, "error:", err)
		writeMappedError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(doc, extraction))
}
