package br

import (
	"regexp"
	"strings"
)

// PadraoTelefone valida o telefone já mascarado: (NN) NNNN-NNNN ou (NN) NNNNN-NNNN.
var PadraoTelefone = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)

// PadraoURL valida URLs http(s) para a foto principal do espaço.
var PadraoURL = regexp.MustCompile(`^https?://.+`)

const telefoneMaxDigitos = 11

// MascararTelefone reformata os dígitos digitados para (NN) NNNN-NNNN (fixo,
// 10 dígitos) ou (NN) NNNNN-NNNN (celular, 11 dígitos). O hífen só aparece
// quando há dígitos suficientes para saber onde ele cai; entrada parcial
// produz máscara parcial sem pânico.
func MascararTelefone(entrada string) string {
	d := somenteDigitos(entrada)
	if len(d) > telefoneMaxDigitos {
		d = d[:telefoneMaxDigitos]
	}
	if d == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('(')
	if len(d) <= 2 {
		b.WriteString(d)
		return b.String()
	}
	b.WriteString(d[:2])
	b.WriteString(") ")

	resto := d[2:]
	// Com 9 dígitos locais o prefixo tem 5 posições (celular); caso contrário 4.
	corte := 4
	if len(resto) > 8 {
		corte = 5
	}
	if len(resto) <= corte {
		b.WriteString(resto)
		return b.String()
	}
	b.WriteString(resto[:corte])
	b.WriteByte('-')
	b.WriteString(resto[corte:])
	return b.String()
}
