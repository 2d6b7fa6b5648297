// Package repository define as portas de acesso a dados do cliente.
// Cada interface espelha uma coleção REST do backend; as implementações
// concretas vivem em internal/infrastructure/rest.
package repository

import (
	"context"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
)

// AuthRepository porta de autenticação.
type AuthRepository interface {
	Login(ctx context.Context, email, senha string) (*dto.LoginResponse, error)
}

// EspacoRepository porta da coleção /espacos.
type EspacoRepository interface {
	GetAll(ctx context.Context) ([]entity.Espaco, error)
	GetByID(ctx context.Context, id int64) (*entity.Espaco, error)
	GetAtivos(ctx context.Context) ([]entity.Espaco, error)
	GetByFilial(ctx context.Context, filialID int64) ([]entity.Espaco, error)
	Create(ctx context.Context, in dto.EspacoRequest) (*entity.Espaco, error)
	Update(ctx context.Context, id int64, in dto.EspacoRequest) (*entity.Espaco, error)
	Delete(ctx context.Context, id int64) error
}

// FilialRepository porta da coleção /filiais.
type FilialRepository interface {
	GetAll(ctx context.Context) ([]entity.Filial, error)
	GetByID(ctx context.Context, id int64) (*entity.Filial, error)
	GetAtivas(ctx context.Context) ([]entity.Filial, error)
	Create(ctx context.Context, in dto.FilialRequest) (*entity.Filial, error)
	Update(ctx context.Context, id int64, in dto.FilialRequest) (*entity.Filial, error)
	Delete(ctx context.Context, id int64) error
}

// ReservaRepository porta da coleção /reservas.
type ReservaRepository interface {
	GetAll(ctx context.Context) ([]entity.Reserva, error)
	GetByID(ctx context.Context, id int64) (*entity.Reserva, error)
	GetByUsuario(ctx context.Context, usuarioID int64) ([]entity.Reserva, error)
	GetByEspaco(ctx context.Context, espacoID int64) ([]entity.Reserva, error)
	Create(ctx context.Context, in dto.ReservaRequest) (*entity.Reserva, error)
	Update(ctx context.Context, id int64, in dto.ReservaRequest) (*entity.Reserva, error)
	AtualizarStatus(ctx context.Context, id int64, status string) (*entity.Reserva, error)
	Delete(ctx context.Context, id int64) error
}

// PagamentoRepository porta da coleção /pagamentos.
type PagamentoRepository interface {
	GetAll(ctx context.Context) ([]entity.Pagamento, error)
	GetByID(ctx context.Context, id int64) (*entity.Pagamento, error)
	GetByReserva(ctx context.Context, reservaID int64) ([]entity.Pagamento, error)
	Create(ctx context.Context, in dto.PagamentoRequest) (*entity.Pagamento, error)
	Update(ctx context.Context, id int64, in dto.PagamentoRequest) (*entity.Pagamento, error)
	Delete(ctx context.Context, id int64) error
}

// ClienteRepository porta da coleção /clientes.
type ClienteRepository interface {
	GetAll(ctx context.Context) ([]entity.Usuario, error)
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	Create(ctx context.Context, in dto.ClienteRequest) (*entity.Usuario, error)
	Update(ctx context.Context, id int64, in dto.ClienteRequest) (*entity.Usuario, error)
	AlterarAtivo(ctx context.Context, id int64, ativo bool) (*entity.Usuario, error)
	Delete(ctx context.Context, id int64) error
}

// FuncionarioRepository porta da coleção /funcionarios.
type FuncionarioRepository interface {
	GetAll(ctx context.Context) ([]entity.Funcionario, error)
	GetByID(ctx context.Context, id int64) (*entity.Funcionario, error)
	GetByFilial(ctx context.Context, filialID int64) ([]entity.Funcionario, error)
	Create(ctx context.Context, in dto.FuncionarioRequest) (*entity.Funcionario, error)
	Update(ctx context.Context, id int64, in dto.FuncionarioRequest) (*entity.Funcionario, error)
	AlterarAtivo(ctx context.Context, id int64, ativo bool) (*entity.Funcionario, error)
	AlterarFilial(ctx context.Context, id int64, filialID int64) (*entity.Funcionario, error)
	Delete(ctx context.Context, id int64) error
}
