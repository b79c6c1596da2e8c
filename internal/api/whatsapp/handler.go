package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// WhatsAppService define o contrato que o Handler espera do estado.
type WhatsAppService interface {
	WhatsApp() domain.WhatsAppConfig
	SetWhatsApp(ctx context.Context, cfg domain.WhatsAppConfig) error
}

// Handler agrupa os métodos de Handler da configuração de WhatsApp.
type Handler struct {
	Service WhatsAppService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc WhatsAppService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)
	if status >= 500 {
		h.Logger.Error("Erro interno na configuração de WhatsApp:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// ConfigHandler lida com /v1/whatsapp (GET consulta, PUT substitui).
func (h *Handler) ConfigHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleServiceResponse(w, r, h.Service.WhatsApp(), nil, http.StatusOK)
	case http.MethodPut:
		h.updateConfig(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.WhatsAppConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	if cfg.Enabled && cfg.PhoneNumber == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Informe o número de telefone para habilitar o encaminhamento."), http.StatusOK)
		return
	}

	if err := h.Service.SetWhatsApp(r.Context(), cfg); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, cfg, nil, http.StatusOK)
}
