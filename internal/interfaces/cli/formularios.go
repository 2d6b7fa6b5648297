package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/formulario"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/pkg/br"
)

// mascaras aplica a máscara de exibição conforme o campo; campos sem máscara
// passam intocados.
var mascaras = map[string]func(string) string{
	"cpf":      br.MascararCPF,
	"telefone": br.MascararTelefone,
}

// preencherGrupo percorre os campos do grupo pedindo valores. Entrada vazia
// mantém o valor atual (útil na edição). A cada campo o erro de validação é
// mostrado inline, como a tela faria ao perder o foco.
func (ui *UI) preencherGrupo(g *formulario.Grupo) {
	for _, nome := range g.Nomes() {
		atual := g.Valor(nome)
		if atual != "" {
			fmt.Fprintf(ui.out, "%s [%s]: ", nome, atual)
		} else {
			fmt.Fprintf(ui.out, "%s: ", nome)
		}
		entrada := strings.TrimSpace(ui.readLine())
		if entrada != "" {
			if mascara, ok := mascaras[nome]; ok {
				entrada = mascara(entrada)
			}
			g.Definir(nome, entrada)
		}
		g.Tocar(nome)
		if msg := g.Campo(nome).ErroVisivel(); msg != "" {
			fmt.Fprintf(ui.out, "  ! %s\n", msg)
		}
	}
}

// submeter valida o grupo antes de chamar enviar. Inválido: marca todos os
// campos como tocados, mostra os erros e não toca a rede.
func (ui *UI) submeter(g *formulario.Grupo, enviar func() error) bool {
	if !g.Valido() {
		g.MarcarTodosTocados()
		fmt.Fprintln(ui.out, "Formulário inválido:")
		for nome, msg := range g.Erros() {
			fmt.Fprintf(ui.out, "  %s: %s\n", nome, msg)
		}
		return false
	}
	if err := enviar(); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return false
	}
	return true
}

func (ui *UI) formularioEspaco(ctx context.Context, existente *entity.Espaco) {
	fmt.Fprintln(ui.out, "\n=== Espaço ===")
	g := formulario.NovoFormularioEspaco(existente)
	ui.preencherGrupo(g)

	ativo := existente == nil || existente.Ativo
	ok := ui.submeter(g, func() error {
		req := formulario.EspacoRequestDe(g, ativo)
		if existente != nil {
			_, err := ui.deps.Espacos.Update(ctx, existente.ID, req)
			return err
		}
		_, err := ui.deps.Espacos.Create(ctx, req)
		return err
	})
	if ok {
		ui.deps.Dialogo.Notificar("Espaço salvo.")
	}
}

func (ui *UI) formularioFilial(ctx context.Context, existente *entity.Filial) {
	fmt.Fprintln(ui.out, "\n=== Filial ===")
	g := formulario.NovoFormularioFilial(existente)
	ui.preencherGrupo(g)

	ativa := existente == nil || existente.Ativa
	ok := ui.submeter(g, func() error {
		req := formulario.FilialRequestDe(g, ativa)
		if existente != nil {
			_, err := ui.deps.Filiais.Update(ctx, existente.ID, req)
			return err
		}
		_, err := ui.deps.Filiais.Create(ctx, req)
		return err
	})
	if ok {
		ui.deps.Dialogo.Notificar("Filial salva.")
	}
}

func (ui *UI) formularioCliente(ctx context.Context, existente *entity.Usuario) {
	fmt.Fprintln(ui.out, "\n=== Cliente ===")
	g := formulario.NovoFormularioCliente(existente)
	ui.preencherGrupo(g)

	ativo := existente == nil || existente.Ativo
	ok := ui.submeter(g, func() error {
		req := formulario.ClienteRequestDe(g, ativo)
		if existente != nil {
			_, err := ui.deps.Clientes.Update(ctx, existente.ID, req)
			return err
		}
		_, err := ui.deps.Clientes.Create(ctx, req)
		return err
	})
	if ok {
		ui.deps.Dialogo.Notificar("Cliente salvo.")
	}
}

func (ui *UI) formularioFuncionario(ctx context.Context, existente *entity.Funcionario) {
	fmt.Fprintln(ui.out, "\n=== Funcionário ===")
	g := formulario.NovoFormularioFuncionario(existente)
	ui.preencherGrupo(g)

	ativo := existente == nil || existente.Ativo
	ok := ui.submeter(g, func() error {
		req := formulario.FuncionarioRequestDe(g, ativo)
		if existente != nil {
			_, err := ui.deps.Funcionarios.Update(ctx, existente.ID, req)
			return err
		}
		_, err := ui.deps.Funcionarios.Create(ctx, req)
		return err
	})
	if ok {
		ui.deps.Dialogo.Notificar("Funcionário salvo.")
	}
}

// formularioReserva cria ou edita uma reserva. usuarioID > 0 fixa o dono
// (fluxo do cliente reservando para si).
func (ui *UI) formularioReserva(ctx context.Context, existente *entity.Reserva, usuarioID int64) {
	fmt.Fprintln(ui.out, "\n=== Reserva ===")
	g := formulario.NovoFormularioReserva(existente)
	if existente == nil && usuarioID > 0 {
		g.Definir("usuarioId", fmt.Sprint(usuarioID))
	}
	ui.preencherGrupo(g)

	ok := ui.submeter(g, func() error {
		req := formulario.ReservaRequestDe(g)
		if existente != nil {
			_, err := ui.deps.Reservas.Update(ctx, existente.ID, req)
			return err
		}
		_, err := ui.deps.Reservas.Create(ctx, req)
		return err
	})
	if ok {
		ui.deps.Dialogo.Notificar("Reserva salva.")
	}
}
