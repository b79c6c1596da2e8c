package domain

// UserRole é o papel do chamador no sistema. Não há identidade por usuário:
// os dois perfis compartilham credenciais próprias (uma senha por perfil),
// verificadas por um backend de credenciais plugável.
type UserRole string

const (
	RoleVendedor UserRole = "vendedor"
	RoleAdmin    UserRole = "admin"
	RoleNone     UserRole = "none"
)

// ValidRole informa se o perfil pode ser autenticado.
func ValidRole(r UserRole) bool {
	return r == RoleVendedor || r == RoleAdmin
}

// LoginRequest é o payload de entrada do login por perfil.
type LoginRequest struct {
	Perfil UserRole `json:"perfil"`
	Senha  string   `json:"senha"`
}
