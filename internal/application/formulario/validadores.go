package formulario

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Obrigatorio exige valor não vazio (espaços não contam).
func Obrigatorio(valor string) string {
	if strings.TrimSpace(valor) == "" {
		return "campo obrigatório"
	}
	return ""
}

// TamanhoMinimo exige pelo menos n caracteres (vazio passa; combine com Obrigatorio).
func TamanhoMinimo(n int) Validador {
	return func(valor string) string {
		if valor != "" && len([]rune(valor)) < n {
			return fmt.Sprintf("mínimo de %d caracteres", n)
		}
		return ""
	}
}

// TamanhoMaximo exige no máximo n caracteres.
func TamanhoMaximo(n int) Validador {
	return func(valor string) string {
		if len([]rune(valor)) > n {
			return fmt.Sprintf("máximo de %d caracteres", n)
		}
		return ""
	}
}

// Minimo exige um número ≥ min (vazio passa; combine com Obrigatorio).
func Minimo(min int64) Validador {
	piso := decimal.NewFromInt(min)
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		n, err := decimal.NewFromString(valor)
		if err != nil {
			return "valor numérico inválido"
		}
		if n.LessThan(piso) {
			return fmt.Sprintf("deve ser no mínimo %d", min)
		}
		return ""
	}
}

// DataISO exige uma data no formato AAAA-MM-DD (vazio passa; combine com Obrigatorio).
func DataISO(valor string) string {
	if valor == "" {
		return ""
	}
	if _, err := time.ParseInLocation("2006-01-02", valor, time.Local); err != nil {
		return "data no formato AAAA-MM-DD"
	}
	return ""
}

// Padrao exige que o valor case com o regex (vazio passa; combine com Obrigatorio).
func Padrao(re *regexp.Regexp, mensagem string) Validador {
	return func(valor string) string {
		if valor != "" && !re.MatchString(valor) {
			return mensagem
		}
		return ""
	}
}
