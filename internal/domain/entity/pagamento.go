package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pagamento. A sequência válida para uma reserva é um único TOTAL
// (100%) ou um SINAL (50%) seguido de exatamente uma QUITACAO (50% restante).
const (
	PagamentoSinal    = "SINAL"
	PagamentoQuitacao = "QUITACAO"
	PagamentoTotal    = "TOTAL"
)

// Pagamento representa um pagamento aplicado contra o total de uma reserva.
type Pagamento struct {
	ID              int64           `json:"id"`
	DataPagamento   time.Time       `json:"dataPagamento"`
	Valor           decimal.Decimal `json:"valor"`
	Tipo            string          `json:"tipo"` // SINAL, QUITACAO, TOTAL
	MetodoPagamento string          `json:"metodoPagamento"`
	CodigoTransacao string          `json:"codigoTransacao,omitempty"` // código do gateway, opcional
	ReservaID       int64           `json:"reservaId"`
}
