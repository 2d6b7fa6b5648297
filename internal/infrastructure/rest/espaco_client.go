package rest

import (
	"context"
	"strconv"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

var _ repository.EspacoRepository = (*EspacoClient)(nil)

// EspacoClient cliente da coleção /espacos.
type EspacoClient struct {
	c *Client
}

// NewEspacoClient constrói o cliente de espaços.
func NewEspacoClient(c *Client) *EspacoClient { return &EspacoClient{c: c} }

// GetAll GET /espacos.
func (e *EspacoClient) GetAll(ctx context.Context) ([]entity.Espaco, error) {
	var out []entity.Espaco
	if err := e.c.get(ctx, "/espacos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET /espacos/{id}.
func (e *EspacoClient) GetByID(ctx context.Context, id int64) (*entity.Espaco, error) {
	var out entity.Espaco
	if err := e.c.get(ctx, caminho("espacos", formatID(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAtivos GET /espacos/ativos.
func (e *EspacoClient) GetAtivos(ctx context.Context) ([]entity.Espaco, error) {
	var out []entity.Espaco
	if err := e.c.get(ctx, "/espacos/ativos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByFilial GET /espacos/filial/{filialId}.
func (e *EspacoClient) GetByFilial(ctx context.Context, filialID int64) ([]entity.Espaco, error) {
	var out []entity.Espaco
	if err := e.c.get(ctx, caminho("espacos", "filial", formatID(filialID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /espacos.
func (e *EspacoClient) Create(ctx context.Context, in dto.EspacoRequest) (*entity.Espaco, error) {
	var out entity.Espaco
	if err := e.c.post(ctx, "/espacos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /espacos/{id}.
func (e *EspacoClient) Update(ctx context.Context, id int64, in dto.EspacoRequest) (*entity.Espaco, error) {
	var out entity.Espaco
	if err := e.c.put(ctx, caminho("espacos", formatID(id)), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /espacos/{id}.
func (e *EspacoClient) Delete(ctx context.Context, id int64) error {
	return e.c.delete(ctx, caminho("espacos", formatID(id)))
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
