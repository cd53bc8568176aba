package handlers

import (
	"MachCatalog/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MachineHandler обрабатывает публичную витрину и админский CRUD машин.
type MachineHandler struct {
	CatalogService *service.CatalogService
	Logger         *zap.SugaredLogger
}

func NewMachineHandler(catalogService *service.CatalogService, logger *zap.SugaredLogger) *MachineHandler {
	return &MachineHandler{CatalogService: catalogService, Logger: logger}
}

type publicMachineDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

type adminMachineDTO struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type machineRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// machineID разбирает {id} из пути; нечисловой id равносилен отсутствию записи.
func machineID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

// ListPublic — публичный список машин (без авторизации).
func (h *MachineHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	machines, err := h.CatalogService.ListPublic(r.Context())
	if err != nil {
		h.Logger.Errorw("ListPublic: service error", "error", err)
		writeServiceError(w, err)
		return
	}

	resp := make([]publicMachineDTO, 0, len(machines))
	for _, m := range machines {
		resp = append(resp, publicMachineDTO{ID: m.ID, Name: m.Name, Description: m.Description, ImageURL: m.ImageURL})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListAdmin — полный список машин с изображениями.
func (h *MachineHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	machines, err := h.CatalogService.ListAdmin(r.Context())
	if err != nil {
		h.Logger.Errorw("ListAdmin: service error", "error", err)
		writeServiceError(w, err)
		return
	}

	dtos := make([]adminMachineDTO, 0, len(machines))
	for _, m := range machines {
		dtos = append(dtos, adminMachineDTO{ID: m.ID, Name: m.Name, Description: m.Description, Images: m.ImageURLs})
	}
	writeJSON(w, http.StatusOK, map[string]any{"machines": dtos})
}

// Create заводит машину и возвращает её id.
func (h *MachineHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req machineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	var name, description string
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	m, err := h.CatalogService.Create(r.Context(), name, description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": m.ID})
}

// Update — частичное обновление: непереданные поля не трогаем.
func (h *MachineHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id, ok := machineID(w, r)
	if !ok {
		return
	}

	var req machineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "machine_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	m, err := h.CatalogService.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": m.ID, "name": m.Name, "description": m.Description})
}

// Delete удаляет машину со всеми изображениями.
func (h *MachineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	id, ok := machineID(w, r)
	if !ok {
		return
	}

	if err := h.CatalogService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
