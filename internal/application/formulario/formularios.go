package formulario

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/pkg/br"
)

// Construtores de grupo por recurso. Em modo de edição o grupo nasce dos
// valores da entidade existente; em criação, dos defaults vazios.

// NovoFormularioEspaco monta o formulário de espaço.
func NovoFormularioEspaco(existente *entity.Espaco) *Grupo {
	g := NewGrupo()
	nome, descricao, capacidade, preco, foto, filial := "", "", "", "", "", ""
	if existente != nil {
		nome = existente.Nome
		descricao = existente.Descricao
		capacidade = strconv.Itoa(existente.Capacidade)
		preco = existente.PrecoDiaria.String()
		foto = existente.FotoPrincipal
		filial = strconv.FormatInt(existente.FilialID, 10)
	}
	g.Adicionar("nome", nome, Obrigatorio, TamanhoMinimo(3), TamanhoMaximo(100))
	g.Adicionar("descricao", descricao, TamanhoMaximo(500))
	g.Adicionar("capacidade", capacidade, Obrigatorio, Minimo(1))
	g.Adicionar("precoDiaria", preco, Obrigatorio, Minimo(0))
	g.Adicionar("fotoPrincipal", foto, Padrao(br.PadraoURL, "URL deve começar com http:// ou https://"))
	g.Adicionar("filialId", filial, Obrigatorio, Minimo(1))
	return g
}

// EspacoRequestDe converte os valores do grupo no request da API.
// Pressupõe grupo válido; valores não numéricos viram zero.
func EspacoRequestDe(g *Grupo, ativo bool) dto.EspacoRequest {
	capacidade, _ := strconv.Atoi(g.Valor("capacidade"))
	preco, _ := decimal.NewFromString(g.Valor("precoDiaria"))
	filialID, _ := strconv.ParseInt(g.Valor("filialId"), 10, 64)
	return dto.EspacoRequest{
		Nome:          g.Valor("nome"),
		Descricao:     g.Valor("descricao"),
		Capacidade:    capacidade,
		PrecoDiaria:   preco,
		Ativo:         ativo,
		FotoPrincipal: g.Valor("fotoPrincipal"),
		FilialID:      filialID,
	}
}

// NovoFormularioFilial monta o formulário de filial.
func NovoFormularioFilial(existente *entity.Filial) *Grupo {
	g := NewGrupo()
	nome, cidade, estado, endereco, telefone := "", "", "", "", ""
	if existente != nil {
		nome = existente.Nome
		cidade = existente.Cidade
		estado = existente.Estado
		endereco = existente.Endereco
		telefone = existente.Telefone
	}
	g.Adicionar("nome", nome, Obrigatorio, TamanhoMinimo(3), TamanhoMaximo(100))
	g.Adicionar("cidade", cidade, Obrigatorio, TamanhoMinimo(2), TamanhoMaximo(100))
	g.Adicionar("estado", estado, Obrigatorio, TamanhoMinimo(2), TamanhoMaximo(2))
	g.Adicionar("endereco", endereco, Obrigatorio, TamanhoMinimo(5), TamanhoMaximo(200))
	g.Adicionar("telefone", telefone, Obrigatorio, Padrao(br.PadraoTelefone, "telefone no formato (NN) NNNNN-NNNN"))
	return g
}

// FilialRequestDe converte os valores do grupo no request da API.
func FilialRequestDe(g *Grupo, ativa bool) dto.FilialRequest {
	return dto.FilialRequest{
		Nome:     g.Valor("nome"),
		Cidade:   g.Valor("cidade"),
		Estado:   g.Valor("estado"),
		Endereco: g.Valor("endereco"),
		Telefone: g.Valor("telefone"),
		Ativa:    ativa,
	}
}

// NovoFormularioFuncionario monta o formulário de funcionário.
// Em edição a senha fica vazia e só é submetida se preenchida.
func NovoFormularioFuncionario(existente *entity.Funcionario) *Grupo {
	g := NewGrupo()
	nome, email, cpf, telefone, matricula, filial := "", "", "", "", "", ""
	senhaValidadores := []Validador{Obrigatorio, TamanhoMinimo(6)}
	if existente != nil {
		nome = existente.Nome
		email = existente.Email
		cpf = existente.CPF
		telefone = existente.Telefone
		matricula = existente.Matricula
		filial = strconv.FormatInt(existente.FilialID, 10)
		senhaValidadores = []Validador{TamanhoMinimo(6)} // opcional em edição
	}
	g.Adicionar("nome", nome, Obrigatorio, TamanhoMinimo(3), TamanhoMaximo(100))
	g.Adicionar("email", email, Obrigatorio, TamanhoMinimo(5), TamanhoMaximo(150))
	g.Adicionar("senha", "", senhaValidadores...)
	g.Adicionar("cpf", cpf, Obrigatorio, Padrao(br.PadraoCPF, "CPF no formato NNN.NNN.NNN-NN"))
	g.Adicionar("telefone", telefone, Obrigatorio, Padrao(br.PadraoTelefone, "telefone no formato (NN) NNNNN-NNNN"))
	g.Adicionar("matricula", matricula, Obrigatorio, TamanhoMinimo(3), TamanhoMaximo(20))
	g.Adicionar("filialId", filial, Obrigatorio, Minimo(1))
	return g
}

// FuncionarioRequestDe converte os valores do grupo no request da API.
func FuncionarioRequestDe(g *Grupo, ativo bool) dto.FuncionarioRequest {
	filialID, _ := strconv.ParseInt(g.Valor("filialId"), 10, 64)
	return dto.FuncionarioRequest{
		Nome:      g.Valor("nome"),
		Email:     g.Valor("email"),
		Senha:     g.Valor("senha"),
		CPF:       g.Valor("cpf"),
		Telefone:  g.Valor("telefone"),
		Matricula: g.Valor("matricula"),
		Ativo:     ativo,
		FilialID:  filialID,
	}
}

// NovoFormularioCliente monta o formulário de cliente.
func NovoFormularioCliente(existente *entity.Usuario) *Grupo {
	g := NewGrupo()
	nome, email := "", ""
	senhaValidadores := []Validador{Obrigatorio, TamanhoMinimo(6)}
	if existente != nil {
		nome = existente.Nome
		email = existente.Email
		senhaValidadores = []Validador{TamanhoMinimo(6)}
	}
	g.Adicionar("nome", nome, Obrigatorio, TamanhoMinimo(3), TamanhoMaximo(100))
	g.Adicionar("email", email, Obrigatorio, TamanhoMinimo(5), TamanhoMaximo(150))
	g.Adicionar("senha", "", senhaValidadores...)
	return g
}

// ClienteRequestDe converte os valores do grupo no request da API.
func ClienteRequestDe(g *Grupo, ativo bool) dto.ClienteRequest {
	return dto.ClienteRequest{
		Nome:  g.Valor("nome"),
		Email: g.Valor("email"),
		Senha: g.Valor("senha"),
		Ativo: ativo,
	}
}

// NovoFormularioReserva monta o formulário de reserva.
func NovoFormularioReserva(existente *entity.Reserva) *Grupo {
	g := NewGrupo()
	data, valor, observacoes, usuario, espaco := "", "", "", "", ""
	if existente != nil {
		data = existente.DataEvento.Format("2006-01-02")
		valor = existente.ValorTotal.String()
		observacoes = existente.Observacoes
		usuario = strconv.FormatInt(existente.UsuarioID, 10)
		espaco = strconv.FormatInt(existente.EspacoID, 10)
	}
	g.Adicionar("dataEvento", data, Obrigatorio, DataISO)
	g.Adicionar("valorTotal", valor, Obrigatorio, Minimo(0))
	g.Adicionar("observacoes", observacoes, TamanhoMaximo(500))
	g.Adicionar("usuarioId", usuario, Obrigatorio, Minimo(1))
	g.Adicionar("espacoId", espaco, Obrigatorio, Minimo(1))
	return g
}

// ReservaRequestDe converte os valores do grupo no request da API.
// A data é interpretada no fuso local, à meia-noite.
func ReservaRequestDe(g *Grupo) dto.ReservaRequest {
	data, _ := time.ParseInLocation("2006-01-02", g.Valor("dataEvento"), time.Local)
	valor, _ := decimal.NewFromString(g.Valor("valorTotal"))
	usuarioID, _ := strconv.ParseInt(g.Valor("usuarioId"), 10, 64)
	espacoID, _ := strconv.ParseInt(g.Valor("espacoId"), 10, 64)
	return dto.ReservaRequest{
		DataEvento:  data,
		ValorTotal:  valor,
		Observacoes: g.Valor("observacoes"),
		UsuarioID:   usuarioID,
		EspacoID:    espacoID,
	}
}
