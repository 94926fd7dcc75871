package handler

import (
	"net/http"

	"ime-admin-service/internal/delivery/http/middleware"
	"ime-admin-service/internal/usecase"
	"ime-admin-service/pkg/response"
)

// maxUploadSize caps multipart uploads at 20 MiB.
const maxUploadSize = 20 << 20

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
	}
}

func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	category := r.FormValue("category")
	if category == "" {
		response.Error(w, http.StatusBadRequest, "Category is required", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "File is required", nil)
		return
	}
	defer file.Close()

	doc, err := h.documentUsecase.Upload(r.Context(), actorID, profileID, &usecase.DocumentUpload{
		Category:    category,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	})
	if err != nil {
		response.FromError(w, err, "Failed to upload document")
		return
	}

	response.Success(w, http.StatusCreated, "Document uploaded", doc)
}

func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	docs, err := h.documentUsecase.List(r.Context(), profileID)
	if err != nil {
		response.FromError(w, err, "Failed to list documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved", docs)
}

func (h *DocumentHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	documentID, err := pathID(r, "documentId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	url, err := h.documentUsecase.GetDownloadURL(r.Context(), documentID)
	if err != nil {
		response.FromError(w, err, "Failed to create download link")
		return
	}

	response.Success(w, http.StatusOK, "Download link created", url)
}
