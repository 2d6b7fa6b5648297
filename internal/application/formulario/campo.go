// Package formulario modela os formulários reativos do cliente: grupos de
// campos nomeados com valor, validadores e flags de tocado/sujo. A validade
// do grupo é a conjunção de todos os validadores; um submit inválido marca
// todos os campos como tocados e aborta sem tocar a rede.
package formulario

import "sort"

// Validador avalia um valor de campo e devolve a mensagem de erro ou vazio.
type Validador func(valor string) string

// Campo um campo nomeado do formulário.
type Campo struct {
	Valor       string
	Tocado      bool // o usuário passou pelo campo
	Sujo        bool // o valor foi alterado
	validadores []Validador
}

// Erro devolve a primeira mensagem de validação que falhar, ou vazio.
func (c *Campo) Erro() string {
	for _, v := range c.validadores {
		if msg := v(c.Valor); msg != "" {
			return msg
		}
	}
	return ""
}

// Valido indica se todos os validadores passam.
func (c *Campo) Valido() bool { return c.Erro() == "" }

// ErroVisivel devolve a mensagem apenas quando o campo já foi tocado ou
// alterado: os formulários não gritam antes de o usuário interagir.
func (c *Campo) ErroVisivel() string {
	if !c.Tocado && !c.Sujo {
		return ""
	}
	return c.Erro()
}

// Grupo um conjunto nomeado de campos.
type Grupo struct {
	campos map[string]*Campo
}

// NewGrupo constrói um grupo vazio.
func NewGrupo() *Grupo {
	return &Grupo{campos: map[string]*Campo{}}
}

// Adicionar registra um campo com valor inicial e validadores.
func (g *Grupo) Adicionar(nome, valorInicial string, validadores ...Validador) *Grupo {
	g.campos[nome] = &Campo{Valor: valorInicial, validadores: validadores}
	return g
}

// Campo devolve o campo pelo nome (nil se não existir).
func (g *Grupo) Campo(nome string) *Campo { return g.campos[nome] }

// Definir altera o valor de um campo e o marca como sujo.
func (g *Grupo) Definir(nome, valor string) {
	if c, ok := g.campos[nome]; ok {
		c.Valor = valor
		c.Sujo = true
	}
}

// Tocar marca o campo como tocado (o usuário passou por ele).
func (g *Grupo) Tocar(nome string) {
	if c, ok := g.campos[nome]; ok {
		c.Tocado = true
	}
}

// Valor devolve o valor corrente do campo (vazio se não existir).
func (g *Grupo) Valor(nome string) string {
	if c, ok := g.campos[nome]; ok {
		return c.Valor
	}
	return ""
}

// Valido indica se todos os campos passam em todos os validadores.
func (g *Grupo) Valido() bool {
	for _, c := range g.campos {
		if !c.Valido() {
			return false
		}
	}
	return true
}

// MarcarTodosTocados força a exibição de todas as mensagens pendentes;
// chamado quando um submit inválido é tentado.
func (g *Grupo) MarcarTodosTocados() {
	for _, c := range g.campos {
		c.Tocado = true
	}
}

// Erros devolve nome→mensagem de todos os campos inválidos.
func (g *Grupo) Erros() map[string]string {
	erros := map[string]string{}
	for nome, c := range g.campos {
		if msg := c.Erro(); msg != "" {
			erros[nome] = msg
		}
	}
	return erros
}

// Nomes devolve os nomes dos campos em ordem estável.
func (g *Grupo) Nomes() []string {
	nomes := make([]string, 0, len(g.campos))
	for nome := range g.campos {
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes)
	return nomes
}

// Valores devolve um snapshot nome→valor de todos os campos, inclusive os
// que a tela mantém desabilitados: eles ainda são submetidos.
func (g *Grupo) Valores() map[string]string {
	valores := map[string]string{}
	for nome, c := range g.campos {
		valores[nome] = c.Valor
	}
	return valores
}
