package auth

import (
	"encoding/json"
	"net/http"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// AuthService define o contrato que o Handler espera da camada de Serviço.
type AuthService interface {
	Login(perfil domain.UserRole, senha string) (string, error)
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// handleServiceResponse padroniza o envio de respostas e o mapeamento de erros.
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
		h.Logger.Error("Erro interno no serviço de autenticação:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// LoginHandler lida com a requisição POST /v1/login.
// @Summary Autentica um perfil e retorna um JWT
// @Description Recebe perfil (vendedor ou admin) e a senha compartilhada; emite um JSON Web Token com a claim de perfil.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "Perfil e senha compartilhada"
// @Success 200 {object} map[string]string "Token JWT emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	token, err := h.Service.Login(req.Perfil, req.Senha)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{
		"token":  token,
		"perfil": string(req.Perfil),
	}, nil, http.StatusOK)
}
