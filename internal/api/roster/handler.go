package roster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// RosterService define o contrato que o Handler espera da camada de Serviço.
type RosterService interface {
	Vendedores() []string
	AddVendedor(ctx context.Context, name string) error
	RemoveVendedor(ctx context.Context, name string) error
}

// Handler agrupa os métodos de Handler do quadro de vendedores.
type Handler struct {
	Service RosterService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc RosterService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de vendedores:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// CollectionHandler lida com /v1/vendedores (GET lista, POST adiciona).
func (h *Handler) CollectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleServiceResponse(w, r, h.Service.Vendedores(), nil, http.StatusOK)
	case http.MethodPost:
		h.addVendedor(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) addVendedor(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Nome string `json:"nome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusCreated)
		return
	}

	if err := h.Service.AddVendedor(r.Context(), payload.Nome); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, h.Service.Vendedores(), nil, http.StatusCreated)
}

// ItemHandler lida com DELETE /v1/vendedores/{nome}. O nome vem percent-
// encoded na URL (os nomes do quadro carregam espaços e acentos).
func (h *Handler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	// Segmentos: ["v1", "vendedores", "{nome}"]
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) != 3 || segments[2] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou nome ausente."), http.StatusNoContent)
		return
	}

	nome, err := url.PathUnescape(segments[2])
	if err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Nome de vendedor ilegível na URL."), http.StatusNoContent)
		return
	}

	h.handleServiceResponse(w, r, nil, h.Service.RemoveVendedor(r.Context(), nome), http.StatusNoContent)
}
