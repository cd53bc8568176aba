package handlers

import (
	"MachCatalog/internal/config"
	"MachCatalog/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ImageHandler обрабатывает загрузку и удаление изображений машины.
type ImageHandler struct {
	ImageService *service.ImageService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewImageHandler(imageService *service.ImageService, logger *zap.SugaredLogger, cfg *config.Config) *ImageHandler {
	return &ImageHandler{ImageService: imageService, Logger: logger, Config: cfg}
}

// Upload принимает multipart-файл в поле "file" и привязывает его к машине.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id, ok := machineID(w, r)
	if !ok {
		return
	}

	// лимит общего тела запроса: файл плюс накладные расходы multipart
	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "machine_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("Upload: missing file field", "machine_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	img, err := h.ImageService.Attach(r.Context(), id, header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": img.URL})
}

// Delete удаляет одно изображение машины.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id, ok := machineID(w, r)
	if !ok {
		return
	}
	imageID, err := strconv.ParseInt(chi.URLParam(r, "imageID"), 10, 64)
	if err != nil || imageID <= 0 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.ImageService.Detach(r.Context(), id, imageID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
