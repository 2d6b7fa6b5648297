package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma reserva. CANCELADA e FINALIZADA são terminais:
// não aceitam novos pagamentos nem edições.
const (
	StatusAguardandoSinal = "AGUARDANDO_SINAL"
	StatusConfirmada      = "CONFIRMADA"
	StatusQuitada         = "QUITADA"
	StatusCancelada       = "CANCELADA"
	StatusFinalizada      = "FINALIZADA"
)

// Reserva representa a locação de um espaço por um usuário em uma data de evento.
type Reserva struct {
	ID          int64           `json:"id"`
	DataCriacao time.Time       `json:"dataCriacao"`
	DataEvento  time.Time       `json:"dataEvento"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
	Observacoes string          `json:"observacoes,omitempty"`
	Status      string          `json:"status"`
	UsuarioID   int64           `json:"usuarioId"`
	UsuarioNome string          `json:"usuarioNome,omitempty"`
	EspacoID    int64           `json:"espacoId"`
	EspacoNome  string          `json:"espacoNome,omitempty"`
	TotalPago   decimal.Decimal `json:"totalPago"`
	Saldo       decimal.Decimal `json:"saldo"`
}

// Encerrada indica se a reserva está em estado terminal.
func (r *Reserva) Encerrada() bool {
	return r.Status == StatusCancelada || r.Status == StatusFinalizada
}
