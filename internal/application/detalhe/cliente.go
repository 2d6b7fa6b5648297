package detalhe

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// ClienteDetalhe tela de detalhe de um cliente: o cadastro e as reservas
// dele, com os totais agregados.
type ClienteDetalhe struct {
	clientes repository.ClienteRepository
	reservas repository.ReservaRepository
	log      *logger.Logger

	cliente  *entity.Usuario
	historia []entity.Reserva
}

// NewClienteDetalhe constrói a tela com as portas injetadas.
func NewClienteDetalhe(clientes repository.ClienteRepository, reservas repository.ReservaRepository, log *logger.Logger) *ClienteDetalhe {
	return &ClienteDetalhe{clientes: clientes, reservas: reservas, log: log}
}

// Carregar busca o cliente e as reservas dele em paralelo. O cliente é a
// busca primária; a falha nas reservas é registrada e a lista fica vazia.
func (d *ClienteDetalhe) Carregar(ctx context.Context, id int64) error {
	var (
		wg       sync.WaitGroup
		cliente  *entity.Usuario
		reservas []entity.Reserva
		errCli   error
		errRes   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cliente, errCli = d.clientes.GetByID(ctx, id)
	}()
	go func() {
		defer wg.Done()
		reservas, errRes = d.reservas.GetByUsuario(ctx, id)
	}()
	wg.Wait()

	if errCli != nil {
		return errCli
	}
	if errRes != nil {
		d.log.Warn().Err(errRes).Int64("clienteId", id).
			Msg("falha ao carregar reservas do cliente")
		reservas = nil
	}

	d.cliente = cliente
	d.historia = reservas
	return nil
}

// Cliente devolve o cadastro carregado (nil antes de Carregar).
func (d *ClienteDetalhe) Cliente() *entity.Usuario { return d.cliente }

// Reservas devolve o histórico de reservas do cliente.
func (d *ClienteDetalhe) Reservas() []entity.Reserva { return d.historia }

// TotalReservado soma o valor total de todas as reservas do cliente.
func (d *ClienteDetalhe) TotalReservado() decimal.Decimal {
	soma := decimal.Zero
	for _, r := range d.historia {
		soma = soma.Add(r.ValorTotal)
	}
	return soma
}

// TotalPago soma o que o cliente já pagou em todas as reservas.
func (d *ClienteDetalhe) TotalPago() decimal.Decimal {
	soma := decimal.Zero
	for _, r := range d.historia {
		soma = soma.Add(r.TotalPago)
	}
	return soma
}

// Ativas conta as reservas que não estão em estado terminal.
func (d *ClienteDetalhe) Ativas() int {
	n := 0
	for i := range d.historia {
		if !d.historia[i].Encerrada() {
			n++
		}
	}
	return n
}
