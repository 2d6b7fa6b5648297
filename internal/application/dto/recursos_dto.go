package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EspacoRequest criação/edição de espaço.
type EspacoRequest struct {
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Capacidade    int             `json:"capacidade"`
	PrecoDiaria   decimal.Decimal `json:"precoDiaria"`
	Ativo         bool            `json:"ativo"`
	FotoPrincipal string          `json:"fotoPrincipal"`
	FilialID      int64           `json:"filialId"`
}

// FilialRequest criação/edição de filial.
type FilialRequest struct {
	Nome     string `json:"nome"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Ativa    bool   `json:"ativa"`
}

// ReservaRequest criação/edição de reserva.
type ReservaRequest struct {
	DataEvento  time.Time       `json:"dataEvento"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
	Observacoes string          `json:"observacoes,omitempty"`
	UsuarioID   int64           `json:"usuarioId"`
	EspacoID    int64           `json:"espacoId"`
}

// PagamentoRequest registro de pagamento contra uma reserva.
type PagamentoRequest struct {
	Valor           decimal.Decimal `json:"valor"`
	Tipo            string          `json:"tipo"`
	MetodoPagamento string          `json:"metodoPagamento"`
	CodigoTransacao string          `json:"codigoTransacao,omitempty"`
	ReservaID       int64           `json:"reservaId"`
}

// ClienteRequest criação/edição de cliente. Senha write-only: nunca volta na resposta.
type ClienteRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha,omitempty"`
	Ativo bool   `json:"ativo"`
}

// FuncionarioRequest criação/edição de funcionário. Senha write-only.
type FuncionarioRequest struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Senha     string `json:"senha,omitempty"`
	CPF       string `json:"cpf"`
	Telefone  string `json:"telefone"`
	Matricula string `json:"matricula"`
	Ativo     bool   `json:"ativo"`
	FilialID  int64  `json:"filialId"`
}
