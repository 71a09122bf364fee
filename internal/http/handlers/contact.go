package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gamerstore-service/internal/logging"
	"gamerstore-service/internal/mailer"
)

// maxContactBody caps the accepted request body.
const maxContactBody = 16 << 10

// ContactHandler accepts contact-form submissions and relays them by
// mail.
type ContactHandler struct {
	sender mailer.Sender
	logger *slog.Logger
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(sender mailer.Sender, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{sender: sender, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var req contactRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "cuerpo JSON inválido", logger)
		return
	}
	if msg, ok := validateContact(&req); !ok {
		writeError(w, r, http.StatusBadRequest, msg, logger)
		return
	}

	err := h.sender.Send(mailer.Message{Name: req.Name, Email: req.Email, Message: req.Message})
	if errors.Is(err, mailer.ErrDisabled) {
		writeError(w, r, http.StatusServiceUnavailable, "el formulario de contacto no está disponible", logger)
		return
	}
	if err != nil {
		logging.Error(logger, "contact mail delivery failed", err)
		writeError(w, r, http.StatusInternalServerError, "no se pudo enviar el mensaje", logger)
		return
	}

	logging.Info(logger, "contact message relayed", slog.String("from", req.Email))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

func validateContact(req *contactRequest) (string, bool) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	switch {
	case req.Name == "":
		return "falta el nombre", false
	case req.Email == "" || !strings.Contains(req.Email, "@"):
		return "email inválido", false
	case req.Message == "":
		return "falta el mensaje", false
	}
	return "", true
}
