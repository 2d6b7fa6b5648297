// Package cli implementa a interface de terminal: login, menus por perfil,
// listagens com filtro, formulários com máscara e o detalhe de reserva com
// registro de pagamentos.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/acesso"
	"github.com/lucasmv/reserva-espacos-cli/internal/application/sessao"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/pdf"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// Deps agrupa tudo que as telas precisam.
type Deps struct {
	Sessao       *sessao.Store
	Espacos      repository.EspacoRepository
	Filiais      repository.FilialRepository
	Reservas     repository.ReservaRepository
	Pagamentos   repository.PagamentoRepository
	Clientes     repository.ClienteRepository
	Funcionarios repository.FuncionarioRepository
	Comprovantes *pdf.ComprovanteGenerator
	Dialogo      Dialogo
	Log          *logger.Logger
}

// UI orquestra o loop de telas do terminal.
type UI struct {
	deps Deps
	in   *bufio.Reader
	out  io.Writer
}

// NewUI constrói a interface com as dependências injetadas.
func NewUI(deps Deps, in *bufio.Reader, out io.Writer) *UI {
	return &UI{deps: deps, in: in, out: out}
}

// Run roda o loop principal: sem sessão mostra o login; com sessão, o menu
// do perfil. Devolve quando o usuário pede para sair.
func (ui *UI) Run(ctx context.Context) {
	for {
		if !ui.deps.Sessao.EstaAutenticado() {
			if !ui.telaLogin(ctx) {
				return
			}
			continue
		}
		rota := acesso.RotaInicialPorPerfil(ui.deps.Sessao.UsuarioAtual().Perfil)
		if !ui.menuPorRota(ctx, rota) {
			return
		}
	}
}

// telaLogin pede as credenciais. Devolve false quando o usuário desiste.
func (ui *UI) telaLogin(ctx context.Context) bool {
	fmt.Fprintln(ui.out, "\n=== Entrar ===")
	fmt.Fprintln(ui.out, "(deixe o e-mail vazio para sair)")
	fmt.Fprint(ui.out, "E-mail: ")
	email := strings.TrimSpace(ui.readLine())
	if email == "" {
		return false
	}
	fmt.Fprint(ui.out, "Senha: ")
	senha := ui.readLine()

	u, err := ui.deps.Sessao.Login(ctx, email, senha)
	if err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return true
	}
	fmt.Fprintf(ui.out, "Bem-vindo(a), %s!\n", u.Nome)
	return true
}

// menuPorRota despacha o menu do perfil. Devolve false para encerrar o app.
func (ui *UI) menuPorRota(ctx context.Context, rota string) bool {
	switch rota {
	case acesso.RotaAdminReservas:
		return ui.menuAdmin(ctx)
	case acesso.RotaFuncionarioReservas:
		return ui.menuFuncionario(ctx)
	default:
		return ui.menuCliente(ctx)
	}
}

func (ui *UI) menuAdmin(ctx context.Context) bool {
	for {
		fmt.Fprintln(ui.out, "\n=== Menu (admin) ===")
		fmt.Fprintln(ui.out, "1) Reservas")
		fmt.Fprintln(ui.out, "2) Espaços")
		fmt.Fprintln(ui.out, "3) Filiais")
		fmt.Fprintln(ui.out, "4) Clientes")
		fmt.Fprintln(ui.out, "5) Funcionários")
		fmt.Fprintln(ui.out, "9) Sair da conta")
		fmt.Fprintln(ui.out, "0) Encerrar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			ui.telaReservas(ctx, 0)
		case "2":
			ui.telaEspacos(ctx, 0)
		case "3":
			ui.telaFiliais(ctx)
		case "4":
			ui.telaClientes(ctx)
		case "5":
			ui.telaFuncionarios(ctx, 0)
		case "9":
			ui.deps.Sessao.Logout()
			return true
		case "0":
			return false
		}
		if !ui.deps.Sessao.EstaAutenticado() {
			// sessão derrubada por um 401 no meio de uma tela
			return true
		}
	}
}

func (ui *UI) menuFuncionario(ctx context.Context) bool {
	filialID := ui.filialDoFuncionario(ctx)
	for {
		fmt.Fprintln(ui.out, "\n=== Menu (funcionário) ===")
		fmt.Fprintln(ui.out, "1) Reservas")
		fmt.Fprintln(ui.out, "2) Espaços da filial")
		fmt.Fprintln(ui.out, "3) Clientes")
		fmt.Fprintln(ui.out, "9) Sair da conta")
		fmt.Fprintln(ui.out, "0) Encerrar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			ui.telaReservas(ctx, 0)
		case "2":
			ui.telaEspacos(ctx, filialID)
		case "3":
			ui.telaClientes(ctx)
		case "9":
			ui.deps.Sessao.Logout()
			return true
		case "0":
			return false
		}
		if !ui.deps.Sessao.EstaAutenticado() {
			return true
		}
	}
}

func (ui *UI) menuCliente(ctx context.Context) bool {
	for {
		fmt.Fprintln(ui.out, "\n=== Menu ===")
		fmt.Fprintln(ui.out, "1) Minhas reservas")
		fmt.Fprintln(ui.out, "2) Espaços disponíveis")
		fmt.Fprintln(ui.out, "9) Sair da conta")
		fmt.Fprintln(ui.out, "0) Encerrar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			ui.telaReservas(ctx, ui.deps.Sessao.UsuarioAtual().ID)
		case "2":
			ui.telaEspacosDisponiveis(ctx)
		case "9":
			ui.deps.Sessao.Logout()
			return true
		case "0":
			return false
		}
		if !ui.deps.Sessao.EstaAutenticado() {
			return true
		}
	}
}

// filialDoFuncionario resolve a filial do funcionário logado pelo e-mail.
// O payload de login não carrega a filial; o cadastro de funcionário sim.
func (ui *UI) filialDoFuncionario(ctx context.Context) int64 {
	u := ui.deps.Sessao.UsuarioAtual()
	if u == nil || !u.EhFuncionario() {
		return 0
	}
	funcionarios, err := ui.deps.Funcionarios.GetAll(ctx)
	if err != nil {
		ui.deps.Log.Warn().Err(err).Msg("falha ao resolver filial do funcionário")
		return 0
	}
	for _, f := range funcionarios {
		if strings.EqualFold(f.Email, u.Email) {
			return f.FilialID
		}
	}
	return 0
}

// ── leitura ───────────────────────────────────────────────────────────────────

func (ui *UI) readLine() string {
	s, _ := ui.in.ReadString('\n')
	return strings.TrimRight(s, "\r\n")
}

func (ui *UI) lerID(prompt string) int64 {
	fmt.Fprint(ui.out, prompt)
	id, _ := strconv.ParseInt(strings.TrimSpace(ui.readLine()), 10, 64)
	return id
}

// ── apresentação ──────────────────────────────────────────────────────────────

func ativoRotulo(ativo bool) string {
	if ativo {
		return "ativo"
	}
	return "inativo"
}

func resumoReserva(r entity.Reserva) string {
	return fmt.Sprintf("#%d  %s  %s  %s  total %s saldo %s",
		r.ID,
		r.DataEvento.Format("02/01/2006"),
		r.Status,
		naoVazio(r.EspacoNome),
		pdf.FormatarReal(r.ValorTotal),
		pdf.FormatarReal(r.Saldo))
}

func naoVazio(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
