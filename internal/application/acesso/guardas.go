// Package acesso decide, na ativação de cada rota, se a navegação prossegue:
// guarda de autenticação, guarda de perfil com lista de permissão e o
// tratador global de 401 (logout antes do redirect, sempre nessa ordem).
package acesso

import (
	"github.com/lucasmv/reserva-espacos-cli/internal/application/sessao"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
)

// Rotas conhecidas da aplicação.
const (
	RotaLogin               = "/login"
	RotaNaoAutorizado       = "/nao-autorizado"
	RotaHome                = "/home"
	RotaAdminReservas       = "/admin/reservas"
	RotaFuncionarioReservas = "/funcionario/reservas"
)

// Navigator porta de navegação; o front-end injeta a implementação.
type Navigator interface {
	IrPara(rota string)
}

// NavigatorFunc adapta uma função simples à porta.
type NavigatorFunc func(rota string)

func (f NavigatorFunc) IrPara(rota string) { f(rota) }

// GuardaAutenticacao permite a navegação apenas com sessão aberta; caso
// contrário redireciona para o login e nega.
func GuardaAutenticacao(s *sessao.Store, nav Navigator) bool {
	if s.EstaAutenticado() {
		return true
	}
	nav.IrPara(RotaLogin)
	return false
}

// GuardaPerfil permite a navegação se o perfil corrente está na lista de
// permissão. Sem usuário: redireciona para o login. Perfil fora da lista:
// redireciona para a tela de não autorizado.
func GuardaPerfil(s *sessao.Store, nav Navigator, perfisPermitidos ...string) bool {
	u := s.UsuarioAtual()
	if u == nil {
		nav.IrPara(RotaLogin)
		return false
	}
	if u.TemPerfil(perfisPermitidos...) {
		return true
	}
	nav.IrPara(RotaNaoAutorizado)
	return false
}

// RotaInicialPorPerfil devolve a rota de destino após o login.
func RotaInicialPorPerfil(perfil string) string {
	switch perfil {
	case entity.PerfilAdmin:
		return RotaAdminReservas
	case entity.PerfilFuncionario:
		return RotaFuncionarioReservas
	default:
		return RotaHome
	}
}

// Tratador401 compõe o efeito global de uma resposta 401: encerra a sessão e
// só então redireciona para o login. A ordem importa para que nenhuma tela
// leia uma identidade que já morreu.
func Tratador401(s *sessao.Store, nav Navigator) func() {
	return func() {
		s.Logout()
		nav.IrPara(RotaLogin)
	}
}
