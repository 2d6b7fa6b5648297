// Package listagem aplica, inteiramente no cliente, os filtros e ordenações
// das telas de listagem sobre coleções já buscadas. Nenhuma função deste
// pacote muta a coleção de origem.
package listagem

import (
	"sort"
	"strings"
	"time"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
)

// JanelaData classifica reservas em relação a hoje.
type JanelaData string

const (
	JanelaTodas    JanelaData = "TODAS"
	JanelaFuturas  JanelaData = "FUTURAS"
	JanelaPassadas JanelaData = "PASSADAS"
)

// StatusPagamento classifica reservas pelo saldo devedor.
type StatusPagamento string

const (
	PagamentoTodos     StatusPagamento = "TODOS"
	PagamentoQuitadas  StatusPagamento = "QUITADAS"
	PagamentoPendentes StatusPagamento = "PENDENTES"
)

// FiltroReservas combina por E lógico os critérios ativos (os zero-values
// desligam cada critério).
type FiltroReservas struct {
	Texto     string          // substring, sem diferenciar maiúsculas, sobre nome do usuário e do espaço
	Status    string          // igualdade exata com o status da reserva
	Janela    JanelaData      // TODAS desliga
	Pagamento StatusPagamento // TODOS desliga
}

// ClassificarJanela decide se a data do evento é futura ou passada usando a
// meia-noite local de hoje como fronteira; o próprio dia de hoje conta como
// futuro.
func ClassificarJanela(dataEvento, agora time.Time) JanelaData {
	meiaNoite := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	if dataEvento.Before(meiaNoite) {
		return JanelaPassadas
	}
	return JanelaFuturas
}

// FiltrarReservas devolve uma nova fatia com as reservas que atendem a todos
// os critérios ativos do filtro.
func FiltrarReservas(reservas []entity.Reserva, f FiltroReservas, agora time.Time) []entity.Reserva {
	texto := strings.ToLower(strings.TrimSpace(f.Texto))
	out := make([]entity.Reserva, 0, len(reservas))
	for _, r := range reservas {
		if texto != "" &&
			!strings.Contains(strings.ToLower(r.UsuarioNome), texto) &&
			!strings.Contains(strings.ToLower(r.EspacoNome), texto) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Janela != "" && f.Janela != JanelaTodas && ClassificarJanela(r.DataEvento, agora) != f.Janela {
			continue
		}
		if f.Pagamento != "" && f.Pagamento != PagamentoTodos {
			quitada := r.Saldo.IsZero() || r.TotalPago.GreaterThanOrEqual(r.ValorTotal)
			if f.Pagamento == PagamentoQuitadas && !quitada {
				continue
			}
			if f.Pagamento == PagamentoPendentes && quitada {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// OrdenarPorDataEvento devolve uma cópia ordenada: ascendente para telas de
// futuras, descendente para passadas.
func OrdenarPorDataEvento(reservas []entity.Reserva, ascendente bool) []entity.Reserva {
	out := make([]entity.Reserva, len(reservas))
	copy(out, reservas)
	sort.SliceStable(out, func(i, j int) bool {
		if ascendente {
			return out[i].DataEvento.Before(out[j].DataEvento)
		}
		return out[i].DataEvento.After(out[j].DataEvento)
	})
	return out
}

// FiltrarEspacos filtra por substring no nome/descrição/nome da filial e,
// opcionalmente, apenas ativos.
func FiltrarEspacos(espacos []entity.Espaco, texto string, apenasAtivos bool) []entity.Espaco {
	t := strings.ToLower(strings.TrimSpace(texto))
	out := make([]entity.Espaco, 0, len(espacos))
	for _, e := range espacos {
		if apenasAtivos && !e.Ativo {
			continue
		}
		if t != "" &&
			!strings.Contains(strings.ToLower(e.Nome), t) &&
			!strings.Contains(strings.ToLower(e.Descricao), t) &&
			!strings.Contains(strings.ToLower(e.FilialNome), t) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FiltrarFiliais filtra por substring em nome/cidade e, opcionalmente, apenas ativas.
func FiltrarFiliais(filiais []entity.Filial, texto string, apenasAtivas bool) []entity.Filial {
	t := strings.ToLower(strings.TrimSpace(texto))
	out := make([]entity.Filial, 0, len(filiais))
	for _, f := range filiais {
		if apenasAtivas && !f.Ativa {
			continue
		}
		if t != "" &&
			!strings.Contains(strings.ToLower(f.Nome), t) &&
			!strings.Contains(strings.ToLower(f.Cidade), t) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FiltrarClientes filtra por substring em nome/email.
func FiltrarClientes(clientes []entity.Usuario, texto string) []entity.Usuario {
	t := strings.ToLower(strings.TrimSpace(texto))
	if t == "" {
		out := make([]entity.Usuario, len(clientes))
		copy(out, clientes)
		return out
	}
	out := make([]entity.Usuario, 0, len(clientes))
	for _, c := range clientes {
		if strings.Contains(strings.ToLower(c.Nome), t) || strings.Contains(strings.ToLower(c.Email), t) {
			out = append(out, c)
		}
	}
	return out
}

// FiltrarFuncionarios filtra por substring em nome/email/matrícula.
func FiltrarFuncionarios(funcionarios []entity.Funcionario, texto string) []entity.Funcionario {
	t := strings.ToLower(strings.TrimSpace(texto))
	if t == "" {
		out := make([]entity.Funcionario, len(funcionarios))
		copy(out, funcionarios)
		return out
	}
	out := make([]entity.Funcionario, 0, len(funcionarios))
	for _, f := range funcionarios {
		if strings.Contains(strings.ToLower(f.Nome), t) ||
			strings.Contains(strings.ToLower(f.Email), t) ||
			strings.Contains(strings.ToLower(f.Matricula), t) {
			out = append(out, f)
		}
	}
	return out
}
