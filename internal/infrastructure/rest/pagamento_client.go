package rest

import (
	"context"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

var _ repository.PagamentoRepository = (*PagamentoClient)(nil)

// PagamentoClient cliente da coleção /pagamentos.
type PagamentoClient struct {
	c *Client
}

// NewPagamentoClient constrói o cliente de pagamentos.
func NewPagamentoClient(c *Client) *PagamentoClient { return &PagamentoClient{c: c} }

// GetAll GET /pagamentos.
func (p *PagamentoClient) GetAll(ctx context.Context) ([]entity.Pagamento, error) {
	var out []entity.Pagamento
	if err := p.c.get(ctx, "/pagamentos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET /pagamentos/{id}.
func (p *PagamentoClient) GetByID(ctx context.Context, id int64) (*entity.Pagamento, error) {
	var out entity.Pagamento
	if err := p.c.get(ctx, caminho("pagamentos", formatID(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByReserva GET /pagamentos/reserva/{id}.
func (p *PagamentoClient) GetByReserva(ctx context.Context, reservaID int64) ([]entity.Pagamento, error) {
	var out []entity.Pagamento
	if err := p.c.get(ctx, caminho("pagamentos", "reserva", formatID(reservaID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /pagamentos.
func (p *PagamentoClient) Create(ctx context.Context, in dto.PagamentoRequest) (*entity.Pagamento, error) {
	var out entity.Pagamento
	if err := p.c.post(ctx, "/pagamentos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /pagamentos/{id}.
func (p *PagamentoClient) Update(ctx context.Context, id int64, in dto.PagamentoRequest) (*entity.Pagamento, error) {
	var out entity.Pagamento
	if err := p.c.put(ctx, caminho("pagamentos", formatID(id)), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /pagamentos/{id}.
func (p *PagamentoClient) Delete(ctx context.Context, id int64) error {
	return p.c.delete(ctx, caminho("pagamentos", formatID(id)))
}
