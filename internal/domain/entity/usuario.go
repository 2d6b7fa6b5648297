package entity

import "time"

// Perfis válidos para Usuario.
const (
	PerfilAdmin       = "ADMIN"
	PerfilFuncionario = "FUNCIONARIO"
	PerfilCliente     = "CLIENTE"
)

// Usuario representa a identidade autenticada ou um cliente do sistema.
// O backend devolve o mesmo formato para /auth/login e /clientes.
type Usuario struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Perfil       string    `json:"perfil"` // ADMIN, FUNCIONARIO, CLIENTE
	Ativo        bool      `json:"ativo"`
	DataCadastro time.Time `json:"dataCadastro"`
}

// EhAdmin, EhFuncionario, EhCliente predicados puros sobre o perfil.
func (u *Usuario) EhAdmin() bool       { return u != nil && u.Perfil == PerfilAdmin }
func (u *Usuario) EhFuncionario() bool { return u != nil && u.Perfil == PerfilFuncionario }
func (u *Usuario) EhCliente() bool     { return u != nil && u.Perfil == PerfilCliente }

// TemPerfil devolve true se o perfil do usuário está na lista permitida.
func (u *Usuario) TemPerfil(perfis ...string) bool {
	if u == nil {
		return false
	}
	for _, p := range perfis {
		if u.Perfil == p {
			return true
		}
	}
	return false
}
