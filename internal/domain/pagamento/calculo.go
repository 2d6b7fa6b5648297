// Package pagamento concentra as regras de negócio de pagamento de reservas:
// sequência SINAL → QUITACAO (ou TOTAL único), saldo devedor e validação
// antes do envio ao backend.
package pagamento

import (
	"github.com/shopspring/decimal"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
)

var dois = decimal.NewFromInt(2)

// Proximo descreve o próximo pagamento permitido para uma reserva.
type Proximo struct {
	Tipo      string          // SINAL, QUITACAO ou vazio quando nada mais é permitido
	Valor     decimal.Decimal // valor sugerido
	Permitido bool
}

// ProximoPagamento determina o próximo pagamento permitido dado o total da
// reserva e os pagamentos já registrados.
//
// Sem pagamentos: SINAL de total/2 (o usuário ainda pode trocar para TOTAL).
// Após um SINAL: QUITACAO do restante, tipo e valor travados.
// Após QUITACAO ou TOTAL: nada mais é permitido, valor sugerido zero.
func ProximoPagamento(total decimal.Decimal, pagos []entity.Pagamento) Proximo {
	if len(pagos) == 0 {
		return Proximo{Tipo: entity.PagamentoSinal, Valor: total.Div(dois), Permitido: true}
	}
	for _, p := range pagos {
		if p.Tipo == entity.PagamentoQuitacao || p.Tipo == entity.PagamentoTotal {
			return Proximo{Valor: decimal.Zero}
		}
	}
	// Só há SINAL registrado: resta a quitação do saldo.
	return Proximo{Tipo: entity.PagamentoQuitacao, Valor: SaldoDevedor(total, pagos), Permitido: true}
}

// PermiteAlterarTipo indica se o seletor de tipo ainda pode ser mudado.
// Trava assim que qualquer pagamento é registrado.
func PermiteAlterarTipo(pagos []entity.Pagamento) bool {
	return len(pagos) == 0
}

// TotalPago soma os valores já pagos.
func TotalPago(pagos []entity.Pagamento) decimal.Decimal {
	soma := decimal.Zero
	for _, p := range pagos {
		soma = soma.Add(p.Valor)
	}
	return soma
}

// SaldoDevedor devolve total menos o já pago, nunca negativo.
func SaldoDevedor(total decimal.Decimal, pagos []entity.Pagamento) decimal.Decimal {
	saldo := total.Sub(TotalPago(pagos))
	if saldo.IsNegative() {
		return decimal.Zero
	}
	return saldo
}

// Quitada indica se a reserva está integralmente paga.
func Quitada(total decimal.Decimal, pagos []entity.Pagamento) bool {
	return SaldoDevedor(total, pagos).IsZero()
}
