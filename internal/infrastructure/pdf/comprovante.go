// Package pdf gera o comprovante de reserva em PDF (A4) exportado pela tela
// de detalhe.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do sistema  │  Reserva Nº + Data do evento    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nome  |  ESPAÇO: nome + filial                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Tipo | Método | Código | Valor              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Valor total / Total pago / SALDO DEVEDOR           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/pagamento"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 13, Green: 71, Blue: 50}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ComprovanteGenerator gera o comprovante de reserva usando Maroto v2.
type ComprovanteGenerator struct{}

// NewComprovanteGenerator constrói o gerador.
func NewComprovanteGenerator() *ComprovanteGenerator { return &ComprovanteGenerator{} }

// GerarComprovante gera o PDF e devolve seus bytes.
func (g *ComprovanteGenerator) GerarComprovante(reserva *entity.Reserva, pagos []entity.Pagamento) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Reserva", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(reserva))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(identificacaoRow(reserva))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tabelaCabecalhoRow())
	for _, r := range tabelaPagamentoRows(pagos) {
		m.AddRows(r)
	}
	if len(pagos) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhum pagamento registrado.", props.Text{
				Size: 8, Align: align.Center, Color: corCinza, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totaisRow(reserva, pagos))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprovante resume os pagamentos registrados para a reserva. "+
				"Guarde-o junto ao contrato de locação.",
			props.Text{Size: 6.5, Color: corCinza, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// cabecalhoRow: nome do sistema (esq) e número + data do evento (dir).
func cabecalhoRow(reserva *entity.Reserva) core.Row {
	rotulo, _ := rotuloStatus(reserva.Status)
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Reserva de Espaços", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Comprovante de reserva", props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("RESERVA Nº %d", reserva.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Evento: "+reserva.DataEvento.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: corCinza,
			}),
			text.New("Status: "+rotulo, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: corCinza,
			}),
		),
	)
}

// identificacaoRow: cliente e espaço da reserva.
func identificacaoRow(reserva *entity.Reserva) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(naoVazio(reserva.UsuarioNome, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("ESPAÇO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(naoVazio(reserva.EspacoNome, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// tabelaCabecalhoRow: cabeçalho da tabela de pagamentos.
func tabelaCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Método", 2, align.Left),
		h("Código", 4, align.Left),
		h("Valor", 2, align.Right),
	)
}

// tabelaPagamentoRows: uma linha por pagamento.
func tabelaPagamentoRows(pagos []entity.Pagamento) []core.Row {
	result := make([]core.Row, 0, len(pagos))
	for _, p := range pagos {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				p.DataPagamento.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				p.Tipo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				p.MetodoPagamento,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				naoVazio(p.CodigoTransacao, "—"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: corCinza},
			)),
			col.New(2).Add(text.New(
				FormatarReal(p.Valor),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totaisRow: bloco de totais alinhado à direita.
func totaisRow(reserva *entity.Reserva, pagos []entity.Pagamento) core.Row {
	rotulo := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	valor := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	destaqueRotulo := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Right: 2,
		})
	}
	destaqueValor := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			rotulo("Valor total:"),
			rotulo("Total pago:"),
			destaqueRotulo("SALDO DEVEDOR:"),
		),
		col.New(4).Add(
			valor(FormatarReal(reserva.ValorTotal)),
			valor(FormatarReal(pagamento.TotalPago(pagos))),
			destaqueValor(FormatarReal(pagamento.SaldoDevedor(reserva.ValorTotal, pagos))),
		),
		col.New(1),
	)
}

// rotuloStatus: apresentação do status no comprovante.
func rotuloStatus(status string) (string, bool) {
	rotulos := map[string]string{
		entity.StatusAguardandoSinal: "Aguardando sinal",
		entity.StatusConfirmada:      "Confirmada",
		entity.StatusQuitada:         "Quitada",
		entity.StatusCancelada:       "Cancelada",
		entity.StatusFinalizada:      "Finalizada",
	}
	r, ok := rotulos[status]
	if !ok {
		return status, false
	}
	return r, true
}

// ── helpers ───────────────────────────────────────────────────────────────────

func naoVazio(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// FormatarReal formata um decimal como moeda brasileira.
// Ex: 1234.5 → "R$ 1.234,50"
func FormatarReal(d decimal.Decimal) string {
	fixo := d.StringFixed(2) // sempre NNNN.NN
	inteiro, centavos, _ := strings.Cut(fixo, ".")

	negativo := strings.HasPrefix(inteiro, "-")
	inteiro = strings.TrimPrefix(inteiro, "-")

	n := len(inteiro)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, inteiro[i])
	}

	sinal := ""
	if negativo {
		sinal = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sinal, string(buf), centavos)
}
