// Package br reúne formatação e validação de documentos e contatos brasileiros
// (CPF e telefone) usados nos formulários do cliente.
package br

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// PadraoCPF valida o CPF já mascarado: NNN.NNN.NNN-NN.
var PadraoCPF = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

const cpfMaxDigitos = 11

// MascararCPF reformata os dígitos digitados para o padrão NNN.NNN.NNN-NN.
// Opera apenas sobre o fluxo de dígitos: remove tudo que não for dígito,
// limita a 11 e reinsere a pontuação nas posições fixas. Entrada parcial
// produz máscara parcial, nunca pânico.
func MascararCPF(entrada string) string {
	d := somenteDigitos(entrada)
	if len(d) > cpfMaxDigitos {
		d = d[:cpfMaxDigitos]
	}
	var b strings.Builder
	for i, c := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ValidarCPF valida os dois dígitos verificadores do CPF (módulo 11 da Receita
// Federal). Aceita o CPF com ou sem pontuação.
func ValidarCPF(cpf string) error {
	d := somenteDigitos(cpf)
	if len(d) != cpfMaxDigitos {
		return fmt.Errorf("br: CPF deve ter 11 dígitos, foram encontrados %d", len(d))
	}
	// CPFs com todos os dígitos iguais passam no módulo 11 mas são inválidos.
	if strings.Count(d, d[:1]) == cpfMaxDigitos {
		return fmt.Errorf("br: CPF com dígitos repetidos é inválido")
	}
	if d[9] != digitoVerificador(d[:9], 10) {
		return fmt.Errorf("br: primeiro dígito verificador do CPF inválido")
	}
	if d[10] != digitoVerificador(d[:10], 11) {
		return fmt.Errorf("br: segundo dígito verificador do CPF inválido")
	}
	return nil
}

// digitoVerificador aplica o módulo 11 sobre base com peso inicial pesoInicial.
func digitoVerificador(base string, pesoInicial int) byte {
	var soma int
	for i := 0; i < len(base); i++ {
		soma += int(base[i]-'0') * (pesoInicial - i)
	}
	resto := soma * 10 % 11
	if resto == 10 {
		resto = 0
	}
	return byte('0' + resto)
}

func somenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
