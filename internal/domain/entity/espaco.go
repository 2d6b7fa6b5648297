package entity

import "github.com/shopspring/decimal"

// Espaco representa um espaço locável pertencente a exatamente uma filial.
// Nome/cidade/estado da filial vêm desnormalizados em algumas respostas.
type Espaco struct {
	ID            int64           `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Capacidade    int             `json:"capacidade"`
	PrecoDiaria   decimal.Decimal `json:"precoDiaria"`
	Ativo         bool            `json:"ativo"`
	FotoPrincipal string          `json:"fotoPrincipal"` // URL http(s)
	FilialID      int64           `json:"filialId"`
	FilialNome    string          `json:"filialNome,omitempty"`
	FilialCidade  string          `json:"filialCidade,omitempty"`
	FilialEstado  string          `json:"filialEstado,omitempty"`
}
