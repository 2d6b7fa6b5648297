package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain"
)

// MensagemPadrao é usada quando nenhuma mensagem estruturada pôde ser extraída.
const MensagemPadrao = "ocorreu um erro inesperado"

// APIError representa uma resposta de erro do backend já normalizada.
// Status, URL e cabeçalhos originais são preservados; Mensagem carrega o texto
// extraído do corpo para exibição ao usuário.
type APIError struct {
	Status   int
	URL      string
	Mensagem string
	Header   http.Header
	Corpo    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: HTTP %d em %s: %s", e.Status, e.URL, e.Mensagem)
}

// Unwrap mapeia o status para o erro de domínio correspondente, permitindo
// errors.Is(err, domain.ErrNaoEncontrado) etc. nos chamadores.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrNaoAutenticado
	case http.StatusForbidden:
		return domain.ErrAcessoNegado
	case http.StatusNotFound:
		return domain.ErrNaoEncontrado
	case http.StatusConflict:
		return domain.ErrConflito
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrEntradaInvalida
	}
	return nil
}

// ExtrairMensagem aplica a precedência de extração sobre o corpo de erro:
// campo "message" de um objeto, depois campo "error", depois o corpo como
// string crua, depois o texto do status HTTP e por fim a mensagem padrão.
// Nenhum esquema fixo é assumido.
func ExtrairMensagem(corpo []byte, status int) string {
	texto := strings.TrimSpace(string(corpo))
	if texto != "" {
		var obj map[string]any
		if err := json.Unmarshal(corpo, &obj); err == nil {
			if m, ok := obj["message"].(string); ok && m != "" {
				return m
			}
			if m, ok := obj["error"].(string); ok && m != "" {
				return m
			}
		}
		// Corpo JSON de string ("mensagem") ou texto puro.
		var s string
		if err := json.Unmarshal(corpo, &s); err == nil && s != "" {
			return s
		}
		return texto
	}
	if st := http.StatusText(status); st != "" {
		return st
	}
	return MensagemPadrao
}
