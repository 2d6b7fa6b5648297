package entity

import "time"

// Filial representa uma unidade da empresa. Possui zero ou mais espaços e é
// referenciada pelos funcionários.
type Filial struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Cidade       string    `json:"cidade"`
	Estado       string    `json:"estado"` // UF com 2 letras
	Endereco     string    `json:"endereco"`
	Telefone     string    `json:"telefone"`
	Ativa        bool      `json:"ativa"`
	DataCadastro time.Time `json:"dataCadastro"`
}
