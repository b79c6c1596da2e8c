package sync

import (
	"context"
	"encoding/json"
	"net/http"

	"painelestoque/internal/csv"
	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// SyncService é o contrato do motor de sincronização.
type SyncService interface {
	Sync(ctx context.Context, source csv.Source) (int, error)
	SyncFromStoredURL(ctx context.Context) (int, error)
}

// AppState define o que os handlers de sincronização leem e gravam do estado.
type AppState interface {
	SyncURL() string
	SetSyncURL(ctx context.Context, url string) error
	UpdateHistory() []domain.UpdateLog
}

// ShareLinkBuilder monta o link compartilhável de configuração.
type ShareLinkBuilder interface {
	BuildShareLink(baseURL string) (string, error)
}

// Handler agrupa os métodos de Handler de sincronização e importação.
type Handler struct {
	Service SyncService
	State   AppState
	Links   ShareLinkBuilder
	Logger  logger.Logger

	// Base pública usada na montagem do link compartilhável.
	PublicBaseURL string
}

// NewHandler cria uma nova instância do Handler, injetando as dependências.
func NewHandler(svc SyncService, state AppState, links ShareLinkBuilder, baseURL string, log logger.Logger) *Handler {
	return &Handler{Service: svc, State: state, Links: links, PublicBaseURL: baseURL, Logger: log}
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
		h.Logger.Error("Erro interno no serviço de sincronização:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

type syncResult struct {
	Produtos int    `json:"produtos"`
	Fonte    string `json:"fonte"`
}

// SyncHandler lida com POST /v1/sync: recebe a URL da planilha publicada,
// persiste como link oficial e dispara a sincronização.
func (h *Handler) SyncHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}
	if payload.URL == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("A URL da planilha é obrigatória."), http.StatusOK)
		return
	}

	count, err := h.Service.Sync(r.Context(), csv.Source{URL: payload.URL, Label: domain.FonteSincronizacaoNuvem})
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	// A URL só vira o link oficial depois de uma sincronização bem-sucedida.
	if err := h.State.SetSyncURL(r.Context(), payload.URL); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, syncResult{Produtos: count, Fonte: domain.FonteSincronizacaoNuvem}, nil, http.StatusOK)
}

// RefreshHandler lida com POST /v1/sync/refresh: ressincroniza contra a URL
// já configurada. Disponível a qualquer perfil autenticado.
func (h *Handler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	count, err := h.Service.SyncFromStoredURL(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, syncResult{Produtos: count, Fonte: domain.FonteSincronizacaoAutomatica}, nil, http.StatusOK)
}

// ImportHandler lida com POST /v1/import: importa um CSV colado ou enviado
// como texto, sem URL envolvida.
func (h *Handler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	var payload struct {
		Conteudo    string `json:"conteudo"`
		NomeArquivo string `json:"nomeArquivo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}
	if payload.Conteudo == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("O conteúdo CSV é obrigatório."), http.StatusOK)
		return
	}

	label := payload.NomeArquivo
	if label == "" {
		label = "importacao_manual.csv"
	}

	count, err := h.Service.Sync(r.Context(), csv.Source{Text: payload.Conteudo, Label: label})
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, syncResult{Produtos: count, Fonte: label}, nil, http.StatusOK)
}

// HistoryHandler lida com GET /v1/atualizacoes: o histórico das últimas
// sincronizações, mais recente primeiro.
func (h *Handler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	h.handleServiceResponse(w, r, h.State.UpdateHistory(), nil, http.StatusOK)
}

// SyncURLHandler lida com /v1/sync/url (GET consulta, PUT substitui sem
// sincronizar).
func (h *Handler) SyncURLHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleServiceResponse(w, r, map[string]string{"url": h.State.SyncURL()}, nil, http.StatusOK)
	case http.MethodPut:
		var payload struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
			return
		}
		if err := h.State.SetSyncURL(r.Context(), payload.URL); err != nil {
			h.handleServiceResponse(w, r, nil, err, http.StatusOK)
			return
		}
		h.handleServiceResponse(w, r, map[string]string{"url": payload.URL}, nil, http.StatusOK)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// ShareLinkHandler lida com GET /v1/share-link: monta o link compartilhável
// com a URL de sincronização e o quadro de vendedores atuais.
func (h *Handler) ShareLinkHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	link, err := h.Links.BuildShareLink(h.PublicBaseURL)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"link": link}, nil, http.StatusOK)
}
