package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/detalhe"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/pdf"
)

// telaReservaDetalhe mostra a reserva, os pagamentos e as ações permitidas.
func (ui *UI) telaReservaDetalhe(ctx context.Context, id int64) {
	d := detalhe.NewReservaDetalhe(ui.deps.Reservas, ui.deps.Pagamentos, ui.deps.Log)
	if err := d.Carregar(ctx, id); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}

	for {
		r := d.Reserva()
		rotulo, icone := detalhe.RotuloStatus(r.Status)
		fmt.Fprintf(ui.out, "\n=== Reserva #%d ===\n", r.ID)
		fmt.Fprintf(ui.out, "Status: %s %s\n", icone, rotulo)
		fmt.Fprintf(ui.out, "Evento: %s\n", r.DataEvento.Format("02/01/2006"))
		fmt.Fprintf(ui.out, "Cliente: %s   Espaço: %s\n", naoVazio(r.UsuarioNome), naoVazio(r.EspacoNome))
		if r.Observacoes != "" {
			fmt.Fprintf(ui.out, "Observações: %s\n", r.Observacoes)
		}
		fmt.Fprintf(ui.out, "Valor total: %s   Pago: %s   Saldo: %s\n",
			pdf.FormatarReal(r.ValorTotal), pdf.FormatarReal(d.TotalPago()), pdf.FormatarReal(d.Saldo()))

		pagos := d.Pagamentos()
		if len(pagos) > 0 {
			fmt.Fprintln(ui.out, "Pagamentos:")
			for _, p := range pagos {
				fmt.Fprintf(ui.out, "- %s  %s  %s  %s\n",
					p.DataPagamento.Format("02/01/2006"), p.Tipo, p.MetodoPagamento, pdf.FormatarReal(p.Valor))
			}
		}

		fmt.Fprintln(ui.out, "\n1) Registrar pagamento  2) Cancelar reserva  3) Finalizar reserva  4) Exportar comprovante  0) Voltar")
		fmt.Fprint(ui.out, "> ")
		switch strings.TrimSpace(ui.readLine()) {
		case "1":
			ui.registrarPagamento(ctx, d)
		case "2":
			if !ui.deps.Dialogo.Confirmar("Cancelar esta reserva?") {
				continue
			}
			if err := d.Cancelar(ctx); err != nil {
				fmt.Fprintln(ui.out, "Erro:", err)
			}
		case "3":
			if !ui.deps.Dialogo.Confirmar("Finalizar esta reserva?") {
				continue
			}
			if err := d.Finalizar(ctx); err != nil {
				fmt.Fprintln(ui.out, "Erro:", err)
			}
		case "4":
			ui.exportarComprovante(d)
		default:
			return
		}
	}
}

// registrarPagamento conduz o fluxo de pagamento: o tipo segue a sequência
// permitida e só é editável enquanto nenhum pagamento existe.
func (ui *UI) registrarPagamento(ctx context.Context, d *detalhe.ReservaDetalhe) {
	prox := d.ProximoPagamento()
	if !prox.Permitido {
		fmt.Fprintln(ui.out, "Esta reserva não aceita mais pagamentos.")
		return
	}

	tipo := prox.Tipo
	if d.PermiteAlterarTipo() {
		fmt.Fprintf(ui.out, "Tipo (%s ou %s) [%s]: ", entity.PagamentoSinal, entity.PagamentoTotal, prox.Tipo)
		if escolha := strings.ToUpper(strings.TrimSpace(ui.readLine())); escolha != "" {
			tipo = escolha
		}
		if tipo == entity.PagamentoTotal {
			prox.Valor = d.Saldo()
		}
	} else {
		fmt.Fprintf(ui.out, "Tipo: %s (travado após o primeiro pagamento)\n", tipo)
	}

	fmt.Fprintf(ui.out, "Valor [%s]: ", prox.Valor.StringFixed(2))
	valor := prox.Valor
	if entrada := strings.TrimSpace(ui.readLine()); entrada != "" {
		v, err := decimal.NewFromString(strings.ReplaceAll(entrada, ",", "."))
		if err != nil {
			fmt.Fprintln(ui.out, "Valor inválido. Exemplo: 500.00")
			return
		}
		valor = v
	}

	fmt.Fprint(ui.out, "Método (PIX, CARTAO, DINHEIRO...): ")
	metodo := strings.TrimSpace(ui.readLine())

	if err := d.RegistrarPagamento(ctx, valor, tipo, metodo); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}
	ui.deps.Dialogo.Notificar("Pagamento registrado.")
}

// exportarComprovante gera o PDF no diretório corrente.
func (ui *UI) exportarComprovante(d *detalhe.ReservaDetalhe) {
	doc, err := ui.deps.Comprovantes.GerarComprovante(d.Reserva(), d.Pagamentos())
	if err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}
	nome := fmt.Sprintf("comprovante-reserva-%d.pdf", d.Reserva().ID)
	if err := os.WriteFile(nome, doc, 0o644); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}
	ui.deps.Dialogo.Notificar("Comprovante gerado: " + nome)
}

// telaClienteDetalhe mostra o cadastro do cliente e o histórico de reservas.
func (ui *UI) telaClienteDetalhe(ctx context.Context, id int64) {
	d := detalhe.NewClienteDetalhe(ui.deps.Clientes, ui.deps.Reservas, ui.deps.Log)
	if err := d.Carregar(ctx, id); err != nil {
		fmt.Fprintln(ui.out, "Erro:", err)
		return
	}

	c := d.Cliente()
	fmt.Fprintf(ui.out, "\n=== Cliente #%d ===\n", c.ID)
	fmt.Fprintf(ui.out, "%s  %s  [%s]\n", c.Nome, c.Email, ativoRotulo(c.Ativo))
	fmt.Fprintf(ui.out, "Cadastro: %s\n", c.DataCadastro.Format("02/01/2006"))
	fmt.Fprintf(ui.out, "Reservas: %d (%d ativas)   Reservado: %s   Pago: %s\n",
		len(d.Reservas()), d.Ativas(), pdf.FormatarReal(d.TotalReservado()), pdf.FormatarReal(d.TotalPago()))

	for _, r := range d.Reservas() {
		fmt.Fprintln(ui.out, "-", resumoReserva(r))
	}
}
