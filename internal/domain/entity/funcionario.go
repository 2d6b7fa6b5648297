package entity

import "time"

// Funcionario representa um funcionário vinculado a uma filial.
// A senha é write-only: vai no request de criação/edição, nunca na resposta.
type Funcionario struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`      // NNN.NNN.NNN-NN
	Telefone     string    `json:"telefone"` // (NN) NNNN[N]-NNNN
	Matricula    string    `json:"matricula"`
	Ativo        bool      `json:"ativo"`
	DataCadastro time.Time `json:"dataCadastro"`
	FilialID     int64     `json:"filialId"`
	FilialNome   string    `json:"filialNome,omitempty"`
}
