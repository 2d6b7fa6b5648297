package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/listagem"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/pdf"
)

// telaReservas lista reservas com filtros combináveis. usuarioID > 0 escopa
// a visão às reservas do próprio usuário.
func (ui *UI) telaReservas(ctx context.Context, usuarioID int64) {
	lista := listagem.NewReservaLista(ui.deps.Reservas)
	carregar := func() error {
		if usuarioID > 0 {
			return lista.CarregarDoUsuario(ctx, usuarioID)
		}
		return lista.Carregar(ctx)
	}
	if err := carregar(); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}

	filtro := listagem.FiltroReservas{Janela: listagem.JanelaTodas, Pagamento: listagem.PagamentoTodos}
	for {
		reservas := lista.Filtrar(filtro)
		fmt.Fprintf(ui.out, "\n=== Reservas (%d) ===\n", len(reservas))
		if len(reservas) == 0 {
			fmt.Fprintln(ui.out, "Nenhuma reserva para exibir.")
		}
		for _, r := range reservas {
			fmt.Fprintln(ui.out, "-", resumoReserva(r))
		}

		fmt.Fprintln(ui.out, "\n1) Filtrar por texto  2) Janela (todas/futuras/passadas)  3) Pagamento (todas/quitadas/pendentes)")
		fmt.Fprintln(ui.out, "4) Abrir reserva  5) Nova reserva  0) Voltar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			fmt.Fprint(ui.out, "Texto (vazio limpa): ")
			filtro.Texto = strings.TrimSpace(ui.readLine())
		case "2":
			filtro.Janela = proximaJanela(filtro.Janela)
			fmt.Fprintln(ui.out, "Janela:", filtro.Janela)
		case "3":
			filtro.Pagamento = proximoPagamentoFiltro(filtro.Pagamento)
			fmt.Fprintln(ui.out, "Pagamento:", filtro.Pagamento)
		case "4":
			id := ui.lerID("ID da reserva: ")
			ui.telaReservaDetalhe(ctx, id)
			if err := carregar(); err != nil {
				fmt.Fprintln(ui.out, "Erro:", err)
				return
			}
		case "5":
			ui.formularioReserva(ctx, nil, usuarioID)
			if err := carregar(); err != nil {
				fmt.Fprintln(ui.out, "Erro:", err)
				return
			}
		default:
			return
		}
	}
}

func proximaJanela(j listagem.JanelaData) listagem.JanelaData {
	switch j {
	case listagem.JanelaTodas:
		return listagem.JanelaFuturas
	case listagem.JanelaFuturas:
		return listagem.JanelaPassadas
	default:
		return listagem.JanelaTodas
	}
}

func proximoPagamentoFiltro(p listagem.StatusPagamento) listagem.StatusPagamento {
	switch p {
	case listagem.PagamentoTodos:
		return listagem.PagamentoQuitadas
	case listagem.PagamentoQuitadas:
		return listagem.PagamentoPendentes
	default:
		return listagem.PagamentoTodos
	}
}

// telaEspacos lista espaços para admin/funcionário. filialID > 0 escopa.
func (ui *UI) telaEspacos(ctx context.Context, filialID int64) {
	lista := listagem.NewEspacoLista(ui.deps.Espacos, filialID)
	if err := lista.Carregar(ctx); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}

	texto := ""
	apenasAtivos := false
	for {
		espacos := lista.Filtrar(texto, apenasAtivos)
		fmt.Fprintf(ui.out, "\n=== Espaços (%d) ===\n", len(espacos))
		for _, e := range espacos {
			fmt.Fprintf(ui.out, "- #%d  %s  cap. %d  %s/dia  %s  [%s]\n",
				e.ID, e.Nome, e.Capacidade, pdf.FormatarReal(e.PrecoDiaria),
				naoVazio(e.FilialNome), ativoRotulo(e.Ativo))
		}

		fmt.Fprintln(ui.out, "\n1) Filtrar por texto  2) Alternar só ativos  3) Novo  4) Editar  5) Ativar/desativar  6) Excluir  0) Voltar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			fmt.Fprint(ui.out, "Texto (vazio limpa): ")
			texto = strings.TrimSpace(ui.readLine())
		case "2":
			apenasAtivos = !apenasAtivos
		case "3":
			ui.formularioEspaco(ctx, nil)
			lista.Carregar(ctx)
		case "4":
			if e := ui.escolherEspaco(lista.Brutos()); e != nil {
				ui.formularioEspaco(ctx, e)
				lista.Carregar(ctx)
			}
		case "5":
			if e := ui.escolherEspaco(lista.Brutos()); e != nil {
				if err := lista.AlternarAtivo(ctx, *e); err != nil {
					fmt.Fprintln(ui.out, "Erro:", err)
				}
			}
		case "6":
			if e := ui.escolherEspaco(lista.Brutos()); e != nil {
				if !ui.deps.Dialogo.Confirmar(fmt.Sprintf("Excluir o espaço %q?", e.Nome)) {
					continue
				}
				if err := lista.Excluir(ctx, e.ID); err != nil {
					fmt.Fprintln(ui.out, "Erro:", err)
				}
			}
		default:
			return
		}
	}
}

// telaEspacosDisponiveis é a vitrine do cliente: só espaços ativos.
func (ui *UI) telaEspacosDisponiveis(ctx context.Context) {
	espacos, err := ui.deps.Espacos.GetAtivos(ctx)
	if err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}
	fmt.Fprintf(ui.out, "\n=== Espaços disponíveis (%d) ===\n", len(espacos))
	for _, e := range espacos {
		fmt.Fprintf(ui.out, "- #%d  %s  cap. %d  %s/dia  %s\n",
			e.ID, e.Nome, e.Capacidade, pdf.FormatarReal(e.PrecoDiaria), naoVazio(e.FilialNome))
		if e.Descricao != "" {
			fmt.Fprintf(ui.out, "    %s\n", e.Descricao)
		}
	}
}

func (ui *UI) escolherEspaco(espacos []entity.Espaco) *entity.Espaco {
	id := ui.lerID("ID do espaço: ")
	for i := range espacos {
		if espacos[i].ID == id {
			return &espacos[i]
		}
	}
	fmt.Fprintln(ui.out, "Espaço não encontrado na lista.")
	return nil
}

// telaFiliais lista filiais (só admin chega aqui).
func (ui *UI) telaFiliais(ctx context.Context) {
	lista := listagem.NewFilialLista(ui.deps.Filiais)
	if err := lista.Carregar(ctx); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}

	texto := ""
	apenasAtivas := false
	for {
		filiais := lista.Filtrar(texto, apenasAtivas)
		fmt.Fprintf(ui.out, "\n=== Filiais (%d) ===\n", len(filiais))
		for _, f := range filiais {
			fmt.Fprintf(ui.out, "- #%d  %s  %s/%s  %s  [%s]\n",
				f.ID, f.Nome, f.Cidade, f.Estado, f.Telefone, ativoRotulo(f.Ativa))
		}

		fmt.Fprintln(ui.out, "\n1) Filtrar por texto  2) Alternar só ativas  3) Nova  4) Editar  5) Excluir  0) Voltar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			fmt.Fprint(ui.out, "Texto (vazio limpa): ")
			texto = strings.TrimSpace(ui.readLine())
		case "2":
			apenasAtivas = !apenasAtivas
		case "3":
			ui.formularioFilial(ctx, nil)
			lista.Carregar(ctx)
		case "4":
			if f := ui.escolherFilial(lista.Brutas()); f != nil {
				ui.formularioFilial(ctx, f)
				lista.Carregar(ctx)
			}
		case "5":
			if f := ui.escolherFilial(lista.Brutas()); f != nil {
				if !ui.deps.Dialogo.Confirmar(fmt.Sprintf("Excluir a filial %q?", f.Nome)) {
					continue
				}
				if err := lista.Excluir(ctx, f.ID); err != nil {
					fmt.Fprintln(ui.out, "Erro:", err)
				}
			}
		default:
			return
		}
	}
}

func (ui *UI) escolherFilial(filiais []entity.Filial) *entity.Filial {
	id := ui.lerID("ID da filial: ")
	for i := range filiais {
		if filiais[i].ID == id {
			return &filiais[i]
		}
	}
	fmt.Fprintln(ui.out, "Filial não encontrada na lista.")
	return nil
}

// telaClientes lista clientes para admin/funcionário.
func (ui *UI) telaClientes(ctx context.Context) {
	lista := listagem.NewClienteLista(ui.deps.Clientes)
	if err := lista.Carregar(ctx); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}

	texto := ""
	for {
		clientes := lista.Filtrar(texto)
		fmt.Fprintf(ui.out, "\n=== Clientes (%d) ===\n", len(clientes))
		for _, c := range clientes {
			fmt.Fprintf(ui.out, "- #%d  %s  %s  [%s]\n", c.ID, c.Nome, c.Email, ativoRotulo(c.Ativo))
		}

		fmt.Fprintln(ui.out, "\n1) Filtrar por texto  2) Novo  3) Editar  4) Ativar/desativar  5) Detalhe  0) Voltar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			fmt.Fprint(ui.out, "Texto (vazio limpa): ")
			texto = strings.TrimSpace(ui.readLine())
		case "2":
			ui.formularioCliente(ctx, nil)
			lista.Carregar(ctx)
		case "3":
			if c := ui.escolherCliente(lista.Brutos()); c != nil {
				ui.formularioCliente(ctx, c)
				lista.Carregar(ctx)
			}
		case "4":
			if c := ui.escolherCliente(lista.Brutos()); c != nil {
				if err := lista.AlternarAtivo(ctx, *c); err != nil {
					fmt.Fprintln(ui.out, "Erro:", err)
				}
			}
		case "5":
			id := ui.lerID("ID do cliente: ")
			ui.telaClienteDetalhe(ctx, id)
		default:
			return
		}
	}
}

func (ui *UI) escolherCliente(clientes []entity.Usuario) *entity.Usuario {
	id := ui.lerID("ID do cliente: ")
	for i := range clientes {
		if clientes[i].ID == id {
			return &clientes[i]
		}
	}
	fmt.Fprintln(ui.out, "Cliente não encontrado na lista.")
	return nil
}

// telaFuncionarios lista funcionários (só admin). filialID > 0 escopa.
func (ui *UI) telaFuncionarios(ctx context.Context, filialID int64) {
	lista := listagem.NewFuncionarioLista(ui.deps.Funcionarios, filialID)
	if err := lista.Carregar(ctx); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}

	texto := ""
	for {
		funcionarios := lista.Filtrar(texto)
		fmt.Fprintf(ui.out, "\n=== Funcionários (%d) ===\n", len(funcionarios))
		for _, f := range funcionarios {
			fmt.Fprintf(ui.out, "- #%d  %s  %s  mat. %s  %s  [%s]\n",
				f.ID, f.Nome, f.Email, f.Matricula, naoVazio(f.FilialNome), ativoRotulo(f.Ativo))
		}

		fmt.Fprintln(ui.out, "\n1) Filtrar por texto  2) Novo  3) Editar  4) Ativar/desativar  5) Mudar de filial  0) Voltar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			fmt.Fprint(ui.out, "Texto (vazio limpa): ")
			texto = strings.TrimSpace(ui.readLine())
		case "2":
			ui.formularioFuncionario(ctx, nil)
			lista.Carregar(ctx)
		case "3":
			if f := ui.escolherFuncionario(lista.Brutos()); f != nil {
				ui.formularioFuncionario(ctx, f)
				lista.Carregar(ctx)
			}
		case "4":
			if f := ui.escolherFuncionario(lista.Brutos()); f != nil {
				if err := lista.AlternarAtivo(ctx, *f); err != nil {
					fmt.Fprintln(ui.out, "Erro:", err)
				}
			}
		case "5":
			if f := ui.escolherFuncionario(lista.Brutos()); f != nil {
				nova := ui.lerID("ID da nova filial: ")
				if nova <= 0 {
					continue
				}
				if err := lista.AlterarFilial(ctx, f.ID, nova); err != nil {
					fmt.Fprintln(ui.out, "Erro:", err)
				}
			}
		default:
			return
		}
	}
}

func (ui *UI) escolherFuncionario(funcionarios []entity.Funcionario) *entity.Funcionario {
	id := ui.lerID("ID do funcionário: ")
	for i := range funcionarios {
		if funcionarios[i].ID == id {
			return &funcionarios[i]
		}
	}
	fmt.Fprintln(ui.out, "Funcionário não encontrado na lista.")
	return nil
}
