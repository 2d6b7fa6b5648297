package cli_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/application/sessao"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
	"github.com/lucasmv/reserva-espacos-cli/internal/interfaces/cli"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês
// ──────────────────────────────────────────────────────────────────────────────

type authFalso struct {
	resposta *dto.LoginResponse
	erro     error
}

func (a *authFalso) Login(_ context.Context, _, _ string) (*dto.LoginResponse, error) {
	if a.erro != nil {
		return nil, a.erro
	}
	return a.resposta, nil
}

type memoria struct{ dados map[string][]byte }

func novaMemoria() *memoria { return &memoria{dados: map[string][]byte{}} }

func (m *memoria) Gravar(chave string, valor []byte) error {
	m.dados[chave] = valor
	return nil
}

func (m *memoria) Ler(chave string) ([]byte, error) {
	v, ok := m.dados[chave]
	if !ok {
		return nil, errors.New("chave inexistente")
	}
	return v, nil
}

func (m *memoria) Remover(chave string) error {
	delete(m.dados, chave)
	return nil
}

type reservasFalso struct {
	repository.ReservaRepository
	reservas []entity.Reserva
}

func (f *reservasFalso) GetByUsuario(_ context.Context, _ int64) ([]entity.Reserva, error) {
	return f.reservas, nil
}

func novaUI(script string, auth *authFalso, reservas repository.ReservaRepository) (*cli.UI, *bytes.Buffer) {
	st := sessao.NewStore(auth, novaMemoria(), logger.Nop())
	var out bytes.Buffer
	deps := cli.Deps{
		Sessao:   st,
		Reservas: reservas,
		Dialogo:  cli.NewTerminalDialogo(bufio.NewReader(strings.NewReader("")), &out),
		Log:      logger.Nop(),
	}
	return cli.NewUI(deps, bufio.NewReader(strings.NewReader(script)), &out), &out
}

// ──────────────────────────────────────────────────────────────────────────────
// Login e menu
// ──────────────────────────────────────────────────────────────────────────────

func TestUI_SaiComEmailVazio(t *testing.T) {
	ui, out := novaUI("\n", &authFalso{}, nil)
	ui.Run(context.Background())
	assert.Contains(t, out.String(), "Entrar")
}

func TestUI_LoginFalhaMostraErro(t *testing.T) {
	auth := &authFalso{erro: errors.New("credenciais inválidas")}
	// tenta uma vez, depois e-mail vazio para sair
	ui, out := novaUI("ana@exemplo.com\nsenha\n\n", auth, nil)
	ui.Run(context.Background())
	assert.Contains(t, out.String(), "credenciais inválidas")
}

func TestUI_LoginClienteAbreMenuDoPerfil(t *testing.T) {
	auth := &authFalso{resposta: &dto.LoginResponse{
		ID: 4, Nome: "Ana", Email: "ana@exemplo.com",
		Perfil: entity.PerfilCliente, Token: "tok",
	}}
	reservas := &reservasFalso{}
	// login, abre "minhas reservas" (vazia, volta com 0), encerra
	ui, out := novaUI("ana@exemplo.com\nsenha\n1\n0\n0\n", auth, reservas)
	ui.Run(context.Background())

	saida := out.String()
	assert.Contains(t, saida, "Bem-vindo(a), Ana!")
	assert.Contains(t, saida, "Minhas reservas")
	assert.Contains(t, saida, "Nenhuma reserva para exibir.")
}

func TestUI_LoginAdminAbreMenuAdmin(t *testing.T) {
	auth := &authFalso{resposta: &dto.LoginResponse{
		ID: 1, Nome: "Root", Email: "root@exemplo.com",
		Perfil: entity.PerfilAdmin, Token: "tok",
	}}
	ui, out := novaUI("root@exemplo.com\nsenha\n0\n", auth, nil)
	ui.Run(context.Background())
	assert.Contains(t, out.String(), "Menu (admin)")
}

func TestUI_SairDaContaVoltaProLogin(t *testing.T) {
	auth := &authFalso{resposta: &dto.LoginResponse{
		ID: 1, Nome: "Root", Email: "root@exemplo.com",
		Perfil: entity.PerfilAdmin, Token: "tok",
	}}
	// login, sai da conta, e-mail vazio para encerrar
	ui, out := novaUI("root@exemplo.com\nsenha\n9\n\n", auth, nil)
	ui.Run(context.Background())

	saida := out.String()
	require.Contains(t, saida, "Menu (admin)")
	// a tela de login aparece duas vezes: antes e depois do logout
	assert.GreaterOrEqual(t, strings.Count(saida, "=== Entrar ==="), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Diálogo de terminal
// ──────────────────────────────────────────────────────────────────────────────

func TestTerminalDialogo_Confirmar(t *testing.T) {
	casos := []struct {
		entrada string
		espera  bool
	}{
		{"s\n", true},
		{"sim\n", true},
		{"S\n", true},
		{"n\n", false},
		{"\n", false},
		{"qualquer\n", false},
	}
	for _, c := range casos {
		var out bytes.Buffer
		d := cli.NewTerminalDialogo(bufio.NewReader(strings.NewReader(c.entrada)), &out)
		assert.Equal(t, c.espera, d.Confirmar("Excluir?"), "entrada %q", c.entrada)
		assert.Contains(t, out.String(), "(s/n)")
	}
}

func TestTerminalDialogo_Notificar(t *testing.T) {
	var out bytes.Buffer
	d := cli.NewTerminalDialogo(bufio.NewReader(strings.NewReader("")), &out)
	d.Notificar("Espaço salvo.")
	assert.Equal(t, "Espaço salvo.\n", out.String())
}
