package acesso_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/acesso"
	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/application/sessao"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/storage"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// navEspiao registra cada redirect recebido.
type navEspiao struct {
	rotas []string
}

func (n *navEspiao) IrPara(rota string) { n.rotas = append(n.rotas, rota) }

type authFixo struct{ perfil string }

func (a *authFixo) Login(context.Context, string, string) (*dto.LoginResponse, error) {
	return &dto.LoginResponse{ID: 1, Nome: "T", Email: "t@ex.com", Perfil: a.perfil, Token: "tok"}, nil
}

var _ repository.AuthRepository = (*authFixo)(nil)

type memoria struct{ dados map[string][]byte }

func (m *memoria) Gravar(chave string, v []byte) error { m.dados[chave] = v; return nil }
func (m *memoria) Ler(chave string) ([]byte, error) {
	v, ok := m.dados[chave]
	if !ok {
		return nil, storage.ErrChaveInexistente
	}
	return v, nil
}
func (m *memoria) Remover(chave string) error { delete(m.dados, chave); return nil }

func sessaoCom(t *testing.T, perfil string) *sessao.Store {
	t.Helper()
	st := sessao.NewStore(&authFixo{perfil: perfil}, &memoria{dados: map[string][]byte{}}, logger.Nop())
	if perfil != "" {
		_, err := st.Login(context.Background(), "t@ex.com", "x")
		require.NoError(t, err)
	}
	return st
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de autenticação
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardaAutenticacao_ComSessaoPermite(t *testing.T) {
	nav := &navEspiao{}
	assert.True(t, acesso.GuardaAutenticacao(sessaoCom(t, "CLIENTE"), nav))
	assert.Empty(t, nav.rotas, "navegação permitida não redireciona")
}

func TestGuardaAutenticacao_SemSessaoRedirecionaLogin(t *testing.T) {
	nav := &navEspiao{}
	assert.False(t, acesso.GuardaAutenticacao(sessaoCom(t, ""), nav))
	assert.Equal(t, []string{acesso.RotaLogin}, nav.rotas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de perfil: matriz perfil × lista de permissão
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardaPerfil_Matriz(t *testing.T) {
	casos := []struct {
		nome       string
		perfil     string
		permitidos []string
		permite    bool
	}{
		{"admin em rota admin", "ADMIN", []string{"ADMIN"}, true},
		{"admin em rota admin+funcionario", "ADMIN", []string{"ADMIN", "FUNCIONARIO"}, true},
		{"funcionario em rota admin", "FUNCIONARIO", []string{"ADMIN"}, false},
		{"funcionario em rota admin+funcionario", "FUNCIONARIO", []string{"ADMIN", "FUNCIONARIO"}, true},
		{"cliente em rota admin", "CLIENTE", []string{"ADMIN"}, false},
		{"cliente em rota cliente", "CLIENTE", []string{"CLIENTE"}, true},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			nav := &navEspiao{}
			ok := acesso.GuardaPerfil(sessaoCom(t, c.perfil), nav, c.permitidos...)
			assert.Equal(t, c.permite, ok)
			if !c.permite {
				assert.Equal(t, []string{acesso.RotaNaoAutorizado}, nav.rotas,
					"perfil fora da lista vai para não autorizado, não para login")
			}
		})
	}
}

func TestGuardaPerfil_SemUsuarioVaiParaLogin(t *testing.T) {
	nav := &navEspiao{}
	ok := acesso.GuardaPerfil(sessaoCom(t, ""), nav, "ADMIN")
	assert.False(t, ok)
	assert.Equal(t, []string{acesso.RotaLogin}, nav.rotas,
		"ausência de usuário sempre redireciona para login, nunca para não autorizado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Redirect pós-login por perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestRotaInicialPorPerfil(t *testing.T) {
	assert.Equal(t, acesso.RotaAdminReservas, acesso.RotaInicialPorPerfil("ADMIN"))
	assert.Equal(t, acesso.RotaFuncionarioReservas, acesso.RotaInicialPorPerfil("FUNCIONARIO"))
	assert.Equal(t, acesso.RotaHome, acesso.RotaInicialPorPerfil("CLIENTE"))
	assert.Equal(t, acesso.RotaHome, acesso.RotaInicialPorPerfil("qualquer-outro"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tratador global de 401
// ──────────────────────────────────────────────────────────────────────────────

// O logout acontece estritamente antes do redirect.
func TestTratador401_LogoutAntesDoRedirect(t *testing.T) {
	st := sessaoCom(t, "ADMIN")
	var ordem []string

	nav := acesso.NavigatorFunc(func(rota string) {
		ordem = append(ordem, "navegar:"+rota)
		assert.False(t, st.EstaAutenticado(), "no momento do redirect a sessão já deve estar morta")
	})
	tratar := acesso.Tratador401(st, nav)

	tratar()
	tratar() // idempotente por chamada: cada 401 repete o par logout+redirect

	assert.Equal(t, []string{"navegar:" + acesso.RotaLogin, "navegar:" + acesso.RotaLogin}, ordem)
	assert.False(t, st.EstaAutenticado())
}
