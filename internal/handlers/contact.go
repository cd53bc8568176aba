package handlers

import (
	"MachCatalog/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ContactHandler обрабатывает форму контактов.
type ContactHandler struct {
	ContactService *service.ContactService
	Logger         *zap.SugaredLogger
}

func NewContactHandler(contactService *service.ContactService, logger *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{ContactService: contactService, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit валидирует форму и отправляет письмо администратору.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Submit: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.ContactService.Submit(r.Context(), req.Name, req.Email, req.Message); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
