package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/pkg/apperror"
)

// maxUploadBytes caps multipart uploads (logos, evidence photos).
const maxUploadBytes = 10 << 20

// UploadHandler handles file uploads to the object store.
type UploadHandler struct {
	files ports.FileStore
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(files ports.FileStore) *UploadHandler {
	return &UploadHandler{files: files}
}

// RegisterRoutes registers upload routes on the protected router.
func (h *UploadHandler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/uploads/logo", h.UploadLogo).Methods("POST")
	protected.HandleFunc("/uploads/evidence", h.UploadEvidence).Methods("POST")
}

// UploadLogo stores a company logo. Images only.
func (h *UploadHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "logos", true)
}

// UploadEvidence stores an evidence attachment for a standard response.
func (h *UploadHandler) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "evidence", false)
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request, prefix string, imageOnly bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, apperror.NewBadRequest("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperror.NewBadRequest("file field is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if imageOnly && !strings.HasPrefix(contentType, "image/") {
		writeError(w, apperror.NewBadRequest("only image files are allowed"))
		return
	}

	key := fmt.Sprintf("%s/%d_%s%s", prefix, time.Now().Unix(), uuid.New().String(), filepath.Ext(header.Filename))

	url, err := h.files.Save(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
