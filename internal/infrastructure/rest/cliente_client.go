package rest

import (
	"context"
	"strconv"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteClient)(nil)

// ClienteClient cliente da coleção /clientes.
type ClienteClient struct {
	c *Client
}

// NewClienteClient constrói o cliente de clientes.
func NewClienteClient(c *Client) *ClienteClient { return &ClienteClient{c: c} }

// GetAll GET /clientes.
func (cl *ClienteClient) GetAll(ctx context.Context) ([]entity.Usuario, error) {
	var out []entity.Usuario
	if err := cl.c.get(ctx, "/clientes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET /clientes/{id}.
func (cl *ClienteClient) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := cl.c.get(ctx, caminho("clientes", formatID(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST /clientes.
func (cl *ClienteClient) Create(ctx context.Context, in dto.ClienteRequest) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := cl.c.post(ctx, "/clientes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /clientes/{id}.
func (cl *ClienteClient) Update(ctx context.Context, id int64, in dto.ClienteRequest) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := cl.c.put(ctx, caminho("clientes", formatID(id)), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AlterarAtivo PATCH /clientes/{id}/ativo?ativo=… (sem corpo).
func (cl *ClienteClient) AlterarAtivo(ctx context.Context, id int64, ativo bool) (*entity.Usuario, error) {
	var out entity.Usuario
	path := caminho("clientes", formatID(id), "ativo") + "?ativo=" + strconv.FormatBool(ativo)
	if err := cl.c.patch(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /clientes/{id}.
func (cl *ClienteClient) Delete(ctx context.Context, id int64) error {
	return cl.c.delete(ctx, caminho("clientes", formatID(id)))
}
