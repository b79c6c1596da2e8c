package middleware

import (
	"context"
	"net/http"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/token"
)

// ContextKey é um tipo próprio para chaves de contexto, evitando colisão com
// chaves string de outros pacotes.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims representa os dados extraídos do token JWT e anexados ao
// contexto da requisição.
type UserClaims struct {
	Role domain.UserRole
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware cria um middleware que valida o JWT do header
// Authorization e anexa o perfil ao contexto da requisição.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			// 1. Extrair o token do header "Authorization: Bearer <token>"
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || len(authHeader) < 7 || authHeader[:7] != "Bearer " {
				http.Error(w, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado.").Error(), http.StatusUnauthorized)
				return
			}

			tokenString := authHeader[7:]

			// 2. Validar o token
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, apperror.NewUnauthorizedError("Token inválido ou expirado.").Error(), http.StatusUnauthorized)
				return
			}

			// 3. Anexar o perfil ao contexto
			userClaims := UserClaims{
				Role: domain.UserRole(claims.Role),
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetUserClaimsFromContext extrai as claims anexadas pelo middleware.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware restringe o acesso aos perfis informados.
func PermissionMiddleware(requiredRoles ...domain.UserRole) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, apperror.NewUnauthorizedError("Autorização necessária. Token não processado.").Error(), http.StatusUnauthorized)
				return
			}

			isAuthorized := false
			for _, requiredRole := range requiredRoles {
				if claims.Role == requiredRole {
					isAuthorized = true
					break
				}
			}

			if !isAuthorized {
				http.Error(w, apperror.NewUnauthorizedError("Acesso negado. Você não tem a permissão necessária.").Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
