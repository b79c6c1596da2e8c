package authservice

import (
	"golang.org/x/crypto/bcrypt"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
)

// CredentialStore é o backend plugável de credenciais: devolve o hash bcrypt
// da senha compartilhada do perfil. O sistema original embutia duas senhas
// em claro no código; aqui os hashes chegam pela configuração.
type CredentialStore interface {
	HashForRole(role domain.UserRole) (string, bool)
}

// EnvCredentialStore implementa CredentialStore com os hashes vindos das
// variáveis de ambiente.
type EnvCredentialStore struct {
	VendorHash string
	AdminHash  string
}

// HashForRole devolve o hash configurado para o perfil.
func (s EnvCredentialStore) HashForRole(role domain.UserRole) (string, bool) {
	switch role {
	case domain.RoleVendedor:
		return s.VendorHash, s.VendorHash != ""
	case domain.RoleAdmin:
		return s.AdminHash, s.AdminHash != ""
	}
	return "", false
}

// TokenService é o contrato da camada de tokens (internal/pkg/token).
type TokenService interface {
	GenerateToken(role string) (string, error)
}

// Service autentica os dois perfis compartilhados e emite JWTs com a claim
// de perfil.
type Service struct {
	creds    CredentialStore
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de autenticação.
func NewService(creds CredentialStore, tokenSvc TokenService, log logger.Logger) *Service {
	return &Service{creds: creds, tokenSvc: tokenSvc, logger: log}
}

// Login verifica a senha compartilhada do perfil e, se válida, emite um JWT.
func (s *Service) Login(perfil domain.UserRole, senha string) (string, error) {
	if !domain.ValidRole(perfil) {
		return "", apperror.NewValidationError("Perfil desconhecido. Use 'vendedor' ou 'admin'.")
	}
	if senha == "" {
		return "", apperror.NewUnauthorizedError("A senha é obrigatória.")
	}

	hash, ok := s.creds.HashForRole(perfil)
	if !ok {
		s.logger.Warn("Login recusado: perfil sem credencial configurada.", map[string]interface{}{"perfil": perfil})
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)); err != nil {
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	token, err := s.tokenSvc.GenerateToken(string(perfil))
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"perfil": perfil})
	return token, nil
}
