package formulario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/formulario"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Campo e Grupo
// ──────────────────────────────────────────────────────────────────────────────

func TestCampo_ErroVisivelSoDepoisDeInteracao(t *testing.T) {
	g := formulario.NewGrupo()
	g.Adicionar("nome", "", formulario.Obrigatorio)

	// Caso 1: campo intocado não exibe erro, mesmo inválido.
	assert.False(t, g.Campo("nome").Valido())
	assert.Empty(t, g.Campo("nome").ErroVisivel())

	// Caso 2: tocado passa a exibir.
	g.Tocar("nome")
	assert.Equal(t, "campo obrigatório", g.Campo("nome").ErroVisivel())
}

func TestCampo_DefinirMarcaSujo(t *testing.T) {
	g := formulario.NewGrupo()
	g.Adicionar("nome", "", formulario.Obrigatorio)

	g.Definir("nome", "x")
	g.Definir("nome", "")
	assert.True(t, g.Campo("nome").Sujo)
	assert.Equal(t, "campo obrigatório", g.Campo("nome").ErroVisivel(),
		"campo sujo exibe erro mesmo sem ter sido tocado")
}

func TestGrupo_SubmitInvalidoMarcaTodosTocados(t *testing.T) {
	g := formulario.NewGrupo()
	g.Adicionar("nome", "", formulario.Obrigatorio)
	g.Adicionar("email", "", formulario.Obrigatorio)
	g.Adicionar("observacoes", "ok")

	// O fluxo de submit: inválido → marca todos e aborta sem chamar a rede.
	require.False(t, g.Valido())
	g.MarcarTodosTocados()

	assert.Equal(t, "campo obrigatório", g.Campo("nome").ErroVisivel())
	assert.Equal(t, "campo obrigatório", g.Campo("email").ErroVisivel())
	assert.Empty(t, g.Campo("observacoes").ErroVisivel())
}

func TestGrupo_Erros(t *testing.T) {
	g := formulario.NewGrupo()
	g.Adicionar("nome", "", formulario.Obrigatorio)
	g.Adicionar("cidade", "Recife", formulario.Obrigatorio)

	erros := g.Erros()
	assert.Len(t, erros, 1)
	assert.Contains(t, erros, "nome")
}

func TestGrupo_ValoresIncluiTodosOsCampos(t *testing.T) {
	g := formulario.NewGrupo()
	g.Adicionar("nome", "Salão Azul")
	g.Adicionar("filialId", "3")

	assert.Equal(t, map[string]string{"nome": "Salão Azul", "filialId": "3"}, g.Valores())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validadores
// ──────────────────────────────────────────────────────────────────────────────

func TestValidadores_VazioPassaExcetoObrigatorio(t *testing.T) {
	// Regras não obrigatórias compõem com Obrigatorio: vazio não acusa.
	assert.Empty(t, formulario.TamanhoMinimo(5)(""))
	assert.Empty(t, formulario.Minimo(1)(""))
	assert.Empty(t, formulario.DataISO(""))
	assert.NotEmpty(t, formulario.Obrigatorio(""))
	assert.NotEmpty(t, formulario.Obrigatorio("   "))
}

func TestValidadores_Tamanho(t *testing.T) {
	assert.NotEmpty(t, formulario.TamanhoMinimo(3)("ab"))
	assert.Empty(t, formulario.TamanhoMinimo(3)("abc"))
	assert.NotEmpty(t, formulario.TamanhoMaximo(2)("abc"))
	// Contagem por runas, não bytes.
	assert.Empty(t, formulario.TamanhoMaximo(4)("ação"))
}

func TestValidadores_Minimo(t *testing.T) {
	assert.NotEmpty(t, formulario.Minimo(1)("0"))
	assert.Empty(t, formulario.Minimo(1)("1"))
	assert.Empty(t, formulario.Minimo(0)("150.50"))
	assert.Equal(t, "valor numérico inválido", formulario.Minimo(0)("abc"))
}

func TestValidadores_DataISO(t *testing.T) {
	assert.Empty(t, formulario.DataISO("2026-09-01"))
	assert.NotEmpty(t, formulario.DataISO("01/09/2026"))
	assert.NotEmpty(t, formulario.DataISO("2026-13-01"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulários por recurso
// ──────────────────────────────────────────────────────────────────────────────

func TestNovoFormularioEspaco_Criacao(t *testing.T) {
	g := formulario.NovoFormularioEspaco(nil)

	require.False(t, g.Valido())

	g.Definir("nome", "Salão Principal")
	g.Definir("capacidade", "120")
	g.Definir("precoDiaria", "850.00")
	g.Definir("filialId", "2")
	require.True(t, g.Valido(), "foto e descrição são opcionais")

	req := formulario.EspacoRequestDe(g, true)
	assert.Equal(t, "Salão Principal", req.Nome)
	assert.Equal(t, 120, req.Capacidade)
	assert.True(t, decimal.NewFromFloat(850).Equal(req.PrecoDiaria))
	assert.Equal(t, int64(2), req.FilialID)
	assert.True(t, req.Ativo)
}

func TestNovoFormularioEspaco_EdicaoPreenche(t *testing.T) {
	g := formulario.NovoFormularioEspaco(&entity.Espaco{
		ID:          7,
		Nome:        "Auditório",
		Capacidade:  80,
		PrecoDiaria: decimal.NewFromInt(500),
		FilialID:    1,
	})

	assert.Equal(t, "Auditório", g.Valor("nome"))
	assert.Equal(t, "80", g.Valor("capacidade"))
	assert.Equal(t, "500", g.Valor("precoDiaria"))
	assert.True(t, g.Valido())
}

func TestNovoFormularioEspaco_FotoComPadraoURL(t *testing.T) {
	g := formulario.NovoFormularioEspaco(nil)
	g.Definir("fotoPrincipal", "ftp://foto.jpg")
	assert.NotEmpty(t, g.Campo("fotoPrincipal").Erro())

	g.Definir("fotoPrincipal", "https://cdn.exemplo.com/foto.jpg")
	assert.Empty(t, g.Campo("fotoPrincipal").Erro())
}

func TestNovoFormularioFilial_EstadoComDuasLetras(t *testing.T) {
	g := formulario.NovoFormularioFilial(nil)
	g.Definir("estado", "P")
	assert.NotEmpty(t, g.Campo("estado").Erro())
	g.Definir("estado", "PE")
	assert.Empty(t, g.Campo("estado").Erro())
}

func TestNovoFormularioFilial_TelefoneMascarado(t *testing.T) {
	g := formulario.NovoFormularioFilial(nil)
	g.Definir("telefone", "81999990000")
	assert.NotEmpty(t, g.Campo("telefone").Erro(), "exige o formato com máscara")
	g.Definir("telefone", "(81) 99999-0000")
	assert.Empty(t, g.Campo("telefone").Erro())
}

func TestNovoFormularioFuncionario_SenhaObrigatoriaSoNaCriacao(t *testing.T) {
	// Caso 1: criação exige senha.
	criacao := formulario.NovoFormularioFuncionario(nil)
	assert.NotEmpty(t, criacao.Campo("senha").Erro())

	// Caso 2: edição aceita senha vazia (mantém a atual).
	edicao := formulario.NovoFormularioFuncionario(&entity.Funcionario{
		Nome:      "Maria Souza",
		Email:     "maria@exemplo.com",
		CPF:       "529.982.247-25",
		Telefone:  "(81) 99999-0000",
		Matricula: "FUN-001",
		FilialID:  1,
	})
	assert.Empty(t, edicao.Campo("senha").Erro())
	assert.True(t, edicao.Valido())

	// Caso 3: senha curta acusa nos dois modos.
	edicao.Definir("senha", "123")
	assert.NotEmpty(t, edicao.Campo("senha").Erro())
}

func TestFuncionarioRequestDe(t *testing.T) {
	g := formulario.NovoFormularioFuncionario(nil)
	g.Definir("nome", "João Lima")
	g.Definir("email", "joao@exemplo.com")
	g.Definir("senha", "segredo1")
	g.Definir("cpf", "529.982.247-25")
	g.Definir("telefone", "(81) 98888-1111")
	g.Definir("matricula", "FUN-002")
	g.Definir("filialId", "3")
	require.True(t, g.Valido())

	req := formulario.FuncionarioRequestDe(g, true)
	assert.Equal(t, "João Lima", req.Nome)
	assert.Equal(t, "529.982.247-25", req.CPF)
	assert.Equal(t, int64(3), req.FilialID)
}

func TestNovoFormularioReserva(t *testing.T) {
	g := formulario.NovoFormularioReserva(nil)
	g.Definir("dataEvento", "2026-10-20")
	g.Definir("valorTotal", "1200.00")
	g.Definir("usuarioId", "4")
	g.Definir("espacoId", "7")
	require.True(t, g.Valido())

	req := formulario.ReservaRequestDe(g)
	assert.Equal(t, 2026, req.DataEvento.Year())
	assert.Equal(t, int64(4), req.UsuarioID)
	assert.True(t, decimal.NewFromInt(1200).Equal(req.ValorTotal))
}
