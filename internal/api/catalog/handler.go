package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
	"painelestoque/internal/service/catalogservice"
)

// CatalogService define o contrato que o Handler espera da camada de Serviço.
type CatalogService interface {
	Search(filter domain.ProductFilter) []domain.Product
	Stats(now time.Time) catalogservice.Stats
}

// Handler agrupa os métodos de Handler do catálogo.
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CatalogService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de catálogo:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// ListProductsHandler lida com GET /v1/produtos?q=<nome>&codigo=<código>.
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	filter := domain.ProductFilter{
		Nome:   r.URL.Query().Get("q"),
		Codigo: r.URL.Query().Get("codigo"),
	}

	products := h.Service.Search(filter)

	h.handleServiceResponse(w, r, products, nil, http.StatusOK)
}

// StatsHandler lida com GET /v1/stats.
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	h.handleServiceResponse(w, r, h.Service.Stats(time.Now()), nil, http.StatusOK)
}
