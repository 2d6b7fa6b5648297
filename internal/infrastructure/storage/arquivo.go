// Package storage persiste a sessão do cliente (token + snapshot do usuário)
// entre execuções, um arquivo por chave dentro de um diretório dedicado.
package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrChaveInexistente indica leitura de uma chave nunca gravada.
var ErrChaveInexistente = errors.New("storage: chave inexistente")

// Armazenamento porta de persistência chave→bytes usada pela sessão.
type Armazenamento interface {
	Gravar(chave string, valor []byte) error
	Ler(chave string) ([]byte, error)
	Remover(chave string) error
}

// Arquivo implementa Armazenamento com um arquivo 0600 por chave.
type Arquivo struct {
	dir string
}

var _ Armazenamento = (*Arquivo)(nil)

// NewArquivo garante o diretório e devolve o armazenamento.
func NewArquivo(dir string) (*Arquivo, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Arquivo{dir: dir}, nil
}

func (a *Arquivo) caminho(chave string) string {
	return filepath.Join(a.dir, chave)
}

// Gravar escreve o valor da chave de forma atômica (arquivo temporário + rename).
func (a *Arquivo) Gravar(chave string, valor []byte) error {
	tmp := a.caminho(chave) + ".tmp"
	if err := os.WriteFile(tmp, valor, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, a.caminho(chave))
}

// Ler devolve o valor da chave ou ErrChaveInexistente.
func (a *Arquivo) Ler(chave string) ([]byte, error) {
	b, err := os.ReadFile(a.caminho(chave))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrChaveInexistente
	}
	return b, err
}

// Remover apaga a chave; remover uma chave inexistente não é erro.
func (a *Arquivo) Remover(chave string) error {
	err := os.Remove(a.caminho(chave))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
