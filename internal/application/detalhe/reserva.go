// Package detalhe implementa as telas de detalhe: a visão completa de uma
// reserva com seus pagamentos e a visão de um cliente com suas reservas.
package detalhe

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/pagamento"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// rotuloStatus apresentação de cada status na tela.
type rotuloStatus struct {
	Rotulo string
	Icone  string
}

var statusDesconhecido = rotuloStatus{Rotulo: "Desconhecido", Icone: "?"}

var rotulosStatus = map[string]rotuloStatus{
	entity.StatusAguardandoSinal: {Rotulo: "Aguardando sinal", Icone: "⏳"},
	entity.StatusConfirmada:      {Rotulo: "Confirmada", Icone: "✔"},
	entity.StatusQuitada:         {Rotulo: "Quitada", Icone: "💰"},
	entity.StatusCancelada:       {Rotulo: "Cancelada", Icone: "✖"},
	entity.StatusFinalizada:      {Rotulo: "Finalizada", Icone: "🏁"},
}

// RotuloStatus devolve rótulo e ícone do status, com fallback para valores
// que o backend ainda não ensinou ao cliente.
func RotuloStatus(status string) (string, string) {
	r, ok := rotulosStatus[status]
	if !ok {
		r = statusDesconhecido
	}
	return r.Rotulo, r.Icone
}

// ReservaDetalhe tela de detalhe de uma reserva: a reserva em si, os
// pagamentos registrados contra ela e os agregados derivados.
type ReservaDetalhe struct {
	reservas   repository.ReservaRepository
	pagamentos repository.PagamentoRepository
	log        *logger.Logger

	reserva *entity.Reserva
	pagos   []entity.Pagamento
}

// NewReservaDetalhe constrói a tela com as portas injetadas.
func NewReservaDetalhe(reservas repository.ReservaRepository, pagamentos repository.PagamentoRepository, log *logger.Logger) *ReservaDetalhe {
	return &ReservaDetalhe{reservas: reservas, pagamentos: pagamentos, log: log}
}

// Carregar busca a reserva e os pagamentos em paralelo. A reserva é a busca
// primária: se falhar, a tela inteira falha. A falha na busca de pagamentos
// é registrada no log e a lista fica vazia, sem derrubar a tela.
func (d *ReservaDetalhe) Carregar(ctx context.Context, id int64) error {
	var (
		wg      sync.WaitGroup
		reserva *entity.Reserva
		pagos   []entity.Pagamento
		errRes  error
		errPag  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		reserva, errRes = d.reservas.GetByID(ctx, id)
	}()
	go func() {
		defer wg.Done()
		pagos, errPag = d.pagamentos.GetByReserva(ctx, id)
	}()
	wg.Wait()

	if errRes != nil {
		return errRes
	}
	if errPag != nil {
		d.log.Warn().Err(errPag).Int64("reservaId", id).
			Msg("falha ao carregar pagamentos da reserva")
		pagos = nil
	}

	d.reserva = reserva
	d.pagos = pagos
	return nil
}

// Reserva devolve a reserva carregada (nil antes de Carregar).
func (d *ReservaDetalhe) Reserva() *entity.Reserva { return d.reserva }

// Pagamentos devolve os pagamentos carregados.
func (d *ReservaDetalhe) Pagamentos() []entity.Pagamento { return d.pagos }

// TotalPago soma os pagamentos carregados.
func (d *ReservaDetalhe) TotalPago() decimal.Decimal {
	return pagamento.TotalPago(d.pagos)
}

// Saldo devolve o saldo devedor, nunca negativo.
func (d *ReservaDetalhe) Saldo() decimal.Decimal {
	if d.reserva == nil {
		return decimal.Zero
	}
	return pagamento.SaldoDevedor(d.reserva.ValorTotal, d.pagos)
}

// ProximoPagamento devolve o próximo pagamento permitido pela sequência
// SINAL → QUITACAO (ou TOTAL único).
func (d *ReservaDetalhe) ProximoPagamento() pagamento.Proximo {
	if d.reserva == nil {
		return pagamento.Proximo{}
	}
	return pagamento.ProximoPagamento(d.reserva.ValorTotal, d.pagos)
}

// PermiteAlterarTipo indica se o seletor de tipo do pagamento ainda está
// destravado (nenhum pagamento registrado).
func (d *ReservaDetalhe) PermiteAlterarTipo() bool {
	return pagamento.PermiteAlterarTipo(d.pagos)
}

// RegistrarPagamento valida localmente, envia ao backend com um código de
// transação gerado e recarrega a tela. Reservas encerradas não aceitam
// pagamentos.
func (d *ReservaDetalhe) RegistrarPagamento(ctx context.Context, valor decimal.Decimal, tipo, metodo string) error {
	if d.reserva == nil {
		return domain.ErrNaoEncontrado
	}
	if d.reserva.Encerrada() {
		return domain.ErrReservaEncerrada
	}
	if err := pagamento.ValidarPagamento(valor, metodo, d.reserva.ValorTotal, d.pagos); err != nil {
		return err
	}

	_, err := d.pagamentos.Create(ctx, dto.PagamentoRequest{
		Valor:           valor,
		Tipo:            tipo,
		MetodoPagamento: metodo,
		CodigoTransacao: uuid.NewString(),
		ReservaID:       d.reserva.ID,
	})
	if err != nil {
		return err
	}
	return d.Carregar(ctx, d.reserva.ID)
}

// Cancelar muda o status para CANCELADA. Reservas já encerradas não mudam.
func (d *ReservaDetalhe) Cancelar(ctx context.Context) error {
	return d.mudarStatus(ctx, entity.StatusCancelada)
}

// Finalizar muda o status para FINALIZADA.
func (d *ReservaDetalhe) Finalizar(ctx context.Context) error {
	return d.mudarStatus(ctx, entity.StatusFinalizada)
}

func (d *ReservaDetalhe) mudarStatus(ctx context.Context, status string) error {
	if d.reserva == nil {
		return domain.ErrNaoEncontrado
	}
	if d.reserva.Encerrada() {
		return domain.ErrReservaEncerrada
	}
	if _, err := d.reservas.AtualizarStatus(ctx, d.reserva.ID, status); err != nil {
		return err
	}
	return d.Carregar(ctx, d.reserva.ID)
}
