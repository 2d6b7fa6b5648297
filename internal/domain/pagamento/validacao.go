package pagamento

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
)

// Erros de validação de pagamento, um por regra, com mensagem legível para a tela.
var (
	ErrValorNaoPositivo  = errors.New("o valor do pagamento deve ser maior que zero")
	ErrValorExcedeSaldo  = errors.New("o valor do pagamento não pode exceder o saldo devedor")
	ErrMetodoObrigatorio = errors.New("informe o método de pagamento")
)

// ValidarPagamento aplica as regras locais antes do envio ao backend:
// valor > 0, valor ≤ saldo devedor e método de pagamento não vazio.
// Devolve o primeiro erro encontrado, na ordem acima.
func ValidarPagamento(valor decimal.Decimal, metodo string, total decimal.Decimal, pagos []entity.Pagamento) error {
	if !valor.IsPositive() {
		return ErrValorNaoPositivo
	}
	if valor.GreaterThan(SaldoDevedor(total, pagos)) {
		return ErrValorExcedeSaldo
	}
	if strings.TrimSpace(metodo) == "" {
		return ErrMetodoObrigatorio
	}
	return nil
}
