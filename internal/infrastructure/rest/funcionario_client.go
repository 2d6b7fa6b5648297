package rest

import (
	"context"
	"strconv"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

var _ repository.FuncionarioRepository = (*FuncionarioClient)(nil)

// FuncionarioClient cliente da coleção /funcionarios.
type FuncionarioClient struct {
	c *Client
}

// NewFuncionarioClient constrói o cliente de funcionários.
func NewFuncionarioClient(c *Client) *FuncionarioClient { return &FuncionarioClient{c: c} }

// GetAll GET /funcionarios.
func (f *FuncionarioClient) GetAll(ctx context.Context) ([]entity.Funcionario, error) {
	var out []entity.Funcionario
	if err := f.c.get(ctx, "/funcionarios", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET /funcionarios/{id}.
func (f *FuncionarioClient) GetByID(ctx context.Context, id int64) (*entity.Funcionario, error) {
	var out entity.Funcionario
	if err := f.c.get(ctx, caminho("funcionarios", formatID(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByFilial GET /funcionarios?filialId=….
func (f *FuncionarioClient) GetByFilial(ctx context.Context, filialID int64) ([]entity.Funcionario, error) {
	var out []entity.Funcionario
	if err := f.c.get(ctx, "/funcionarios?filialId="+formatID(filialID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /funcionarios.
func (f *FuncionarioClient) Create(ctx context.Context, in dto.FuncionarioRequest) (*entity.Funcionario, error) {
	var out entity.Funcionario
	if err := f.c.post(ctx, "/funcionarios", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /funcionarios/{id}.
func (f *FuncionarioClient) Update(ctx context.Context, id int64, in dto.FuncionarioRequest) (*entity.Funcionario, error) {
	var out entity.Funcionario
	if err := f.c.put(ctx, caminho("funcionarios", formatID(id)), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AlterarAtivo PATCH /funcionarios/{id}/ativo?ativo=… (sem corpo).
func (f *FuncionarioClient) AlterarAtivo(ctx context.Context, id int64, ativo bool) (*entity.Funcionario, error) {
	var out entity.Funcionario
	path := caminho("funcionarios", formatID(id), "ativo") + "?ativo=" + strconv.FormatBool(ativo)
	if err := f.c.patch(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AlterarFilial PATCH /funcionarios/{id}/filial?filialId=… (sem corpo).
func (f *FuncionarioClient) AlterarFilial(ctx context.Context, id int64, filialID int64) (*entity.Funcionario, error) {
	var out entity.Funcionario
	path := caminho("funcionarios", formatID(id), "filial") + "?filialId=" + formatID(filialID)
	if err := f.c.patch(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /funcionarios/{id}.
func (f *FuncionarioClient) Delete(ctx context.Context, id int64) error {
	return f.c.delete(ctx, caminho("funcionarios", formatID(id)))
}
