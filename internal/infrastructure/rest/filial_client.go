package rest

import (
	"context"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

var _ repository.FilialRepository = (*FilialClient)(nil)

// FilialClient cliente da coleção /filiais.
type FilialClient struct {
	c *Client
}

// NewFilialClient constrói o cliente de filiais.
func NewFilialClient(c *Client) *FilialClient { return &FilialClient{c: c} }

// GetAll GET /filiais.
func (f *FilialClient) GetAll(ctx context.Context) ([]entity.Filial, error) {
	var out []entity.Filial
	if err := f.c.get(ctx, "/filiais", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET /filiais/{id}.
func (f *FilialClient) GetByID(ctx context.Context, id int64) (*entity.Filial, error) {
	var out entity.Filial
	if err := f.c.get(ctx, caminho("filiais", formatID(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAtivas GET /filiais/ativas.
func (f *FilialClient) GetAtivas(ctx context.Context) ([]entity.Filial, error) {
	var out []entity.Filial
	if err := f.c.get(ctx, "/filiais/ativas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /filiais.
func (f *FilialClient) Create(ctx context.Context, in dto.FilialRequest) (*entity.Filial, error) {
	var out entity.Filial
	if err := f.c.post(ctx, "/filiais", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /filiais/{id}.
func (f *FilialClient) Update(ctx context.Context, id int64, in dto.FilialRequest) (*entity.Filial, error) {
	var out entity.Filial
	if err := f.c.put(ctx, caminho("filiais", formatID(id)), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /filiais/{id}.
func (f *FilialClient) Delete(ctx context.Context, id int64) error {
	return f.c.delete(ctx, caminho("filiais", formatID(id)))
}
