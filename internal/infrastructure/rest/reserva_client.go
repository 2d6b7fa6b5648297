package rest

import (
	"context"
	"net/url"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

var _ repository.ReservaRepository = (*ReservaClient)(nil)

// ReservaClient cliente da coleção /reservas.
type ReservaClient struct {
	c *Client
}

// NewReservaClient constrói o cliente de reservas.
func NewReservaClient(c *Client) *ReservaClient { return &ReservaClient{c: c} }

// GetAll GET /reservas.
func (r *ReservaClient) GetAll(ctx context.Context) ([]entity.Reserva, error) {
	var out []entity.Reserva
	if err := r.c.get(ctx, "/reservas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET /reservas/{id}.
func (r *ReservaClient) GetByID(ctx context.Context, id int64) (*entity.Reserva, error) {
	var out entity.Reserva
	if err := r.c.get(ctx, caminho("reservas", formatID(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByUsuario GET /reservas/usuario/{id}.
func (r *ReservaClient) GetByUsuario(ctx context.Context, usuarioID int64) ([]entity.Reserva, error) {
	var out []entity.Reserva
	if err := r.c.get(ctx, caminho("reservas", "usuario", formatID(usuarioID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByEspaco GET /reservas/espaco/{id}.
func (r *ReservaClient) GetByEspaco(ctx context.Context, espacoID int64) ([]entity.Reserva, error) {
	var out []entity.Reserva
	if err := r.c.get(ctx, caminho("reservas", "espaco", formatID(espacoID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /reservas.
func (r *ReservaClient) Create(ctx context.Context, in dto.ReservaRequest) (*entity.Reserva, error) {
	var out entity.Reserva
	if err := r.c.post(ctx, "/reservas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /reservas/{id}.
func (r *ReservaClient) Update(ctx context.Context, id int64, in dto.ReservaRequest) (*entity.Reserva, error) {
	var out entity.Reserva
	if err := r.c.put(ctx, caminho("reservas", formatID(id)), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AtualizarStatus PATCH /reservas/{id}/status?status=… (sem corpo).
func (r *ReservaClient) AtualizarStatus(ctx context.Context, id int64, status string) (*entity.Reserva, error) {
	var out entity.Reserva
	path := caminho("reservas", formatID(id), "status") + "?status=" + url.QueryEscape(status)
	if err := r.c.patch(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /reservas/{id}.
func (r *ReservaClient) Delete(ctx context.Context, id int64) error {
	return r.c.delete(ctx, caminho("reservas", formatID(id)))
}
