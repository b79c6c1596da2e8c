package request

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
	"painelestoque/internal/pkg/middleware"
)

// RequestService define o contrato que o Handler espera da camada de Serviço.
type RequestService interface {
	List(solicitante string) []domain.StockRequest
	Submit(ctx context.Context, req domain.StockRequest) (domain.StockRequest, error)
	Update(ctx context.Context, req domain.StockRequest) error
	SetStatus(ctx context.Context, id string, status domain.RequestStatus) error
	Delete(ctx context.Context, id string) error
	ClearByRequester(ctx context.Context, solicitante string) error
	ClearAll(ctx context.Context) error
}

// Handler agrupa os métodos de Handler dos pedidos.
type Handler struct {
	Service RequestService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc RequestService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		h.Logger.Debug("Requisição de pedido concluída.", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})
		if data != nil {
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)
	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de pedidos:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// requireAdmin verifica o perfil anexado pelo middleware de autenticação.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok || claims.Role != domain.RoleAdmin {
		http.Error(w, apperror.NewUnauthorizedError("Operação restrita ao administrador.").Error(), http.StatusForbidden)
		return false
	}
	return true
}

// CollectionHandler lida com /v1/pedidos (GET lista, POST cria, DELETE limpa).
func (h *Handler) CollectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listRequests(w, r)
	case http.MethodPost:
		h.submitRequest(w, r)
	case http.MethodDelete:
		h.clearRequests(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	solicitante := r.URL.Query().Get("solicitante")
	h.handleServiceResponse(w, r, h.Service.List(solicitante), nil, http.StatusOK)
}

func (h *Handler) submitRequest(w http.ResponseWriter, r *http.Request) {
	var req domain.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusCreated)
		return
	}

	created, err := h.Service.Submit(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// clearRequests atende duas limpezas distintas:
//   - ?solicitante=NOME remove os pedidos daquele solicitante;
//   - ?all=true&confirm=true (admin) esvazia a lista inteira. A confirmação
//     explícita é obrigatória, como o diálogo de confirmação do original.
func (h *Handler) clearRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("all") == "true" {
		if !h.requireAdmin(w, r) {
			return
		}
		if query.Get("confirm") != "true" {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Limpeza total exige confirm=true."), http.StatusNoContent)
			return
		}
		h.handleServiceResponse(w, r, nil, h.Service.ClearAll(r.Context()), http.StatusNoContent)
		return
	}

	solicitante := query.Get("solicitante")
	if solicitante == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Informe solicitante=NOME ou all=true."), http.StatusNoContent)
		return
	}

	h.handleServiceResponse(w, r, nil, h.Service.ClearByRequester(r.Context(), solicitante), http.StatusNoContent)
}

// ItemHandler lida com /v1/pedidos/{id} (PUT, DELETE) e
// /v1/pedidos/{id}/status (PATCH, admin).
func (h *Handler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	// Segmentos: ["v1", "pedidos", "{id}"] ou ["v1", "pedidos", "{id}", "status"]
	path := strings.Trim(r.URL.Path, "/")
	segments := strings.Split(path, "/")

	if len(segments) == 4 && segments[3] == "status" {
		h.setStatus(w, r, segments[2])
		return
	}

	if len(segments) != 3 || segments[2] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou id ausente."), http.StatusOK)
		return
	}

	id := segments[2]

	switch r.Method {
	case http.MethodPut:
		h.updateRequest(w, r, id)
	case http.MethodDelete:
		h.handleServiceResponse(w, r, nil, h.Service.Delete(r.Context(), id), http.StatusNoContent)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) updateRequest(w http.ResponseWriter, r *http.Request, id string) {
	var req domain.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	// O id da URL manda; o do corpo é ignorado se divergir.
	req.ID = id

	if err := h.Service.Update(r.Context(), req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, req, nil, http.StatusOK)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	if !h.requireAdmin(w, r) {
		return
	}

	var payload struct {
		Status domain.RequestStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	if err := h.Service.SetStatus(r.Context(), id, payload.Status); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"id": id, "status": string(payload.Status)}, nil, http.StatusOK)
}
