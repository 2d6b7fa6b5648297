package listagem

import (
	"context"
	"time"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

// dtoDeEspaco remonta o request de edição a partir da entidade, trocando só a
// flag de ativo. Não há PATCH dedicado para espaços no backend.
func dtoDeEspaco(e entity.Espaco, ativo bool) dto.EspacoRequest {
	return dto.EspacoRequest{
		Nome:          e.Nome,
		Descricao:     e.Descricao,
		Capacidade:    e.Capacidade,
		PrecoDiaria:   e.PrecoDiaria,
		Ativo:         ativo,
		FotoPrincipal: e.FotoPrincipal,
		FilialID:      e.FilialID,
	}
}

// ReservaLista tela de listagem de reservas: mantém a coleção crua e a visão
// filtrada derivada dela.
type ReservaLista struct {
	repo   repository.ReservaRepository
	brutas []entity.Reserva
}

// NewReservaLista constrói a tela com a porta injetada.
func NewReservaLista(repo repository.ReservaRepository) *ReservaLista {
	return &ReservaLista{repo: repo}
}

// Carregar busca todas as reservas (visão de admin).
func (l *ReservaLista) Carregar(ctx context.Context) error {
	reservas, err := l.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	l.brutas = reservas
	return nil
}

// CarregarDoUsuario busca apenas as reservas do usuário (visão de cliente).
func (l *ReservaLista) CarregarDoUsuario(ctx context.Context, usuarioID int64) error {
	reservas, err := l.repo.GetByUsuario(ctx, usuarioID)
	if err != nil {
		return err
	}
	l.brutas = reservas
	return nil
}

// Brutas devolve a coleção como veio do backend.
func (l *ReservaLista) Brutas() []entity.Reserva { return l.brutas }

// Filtrar aplica o filtro e ordena por data do evento: ascendente para a
// janela de futuras, descendente para passadas.
func (l *ReservaLista) Filtrar(f FiltroReservas) []entity.Reserva {
	filtradas := FiltrarReservas(l.brutas, f, time.Now())
	return OrdenarPorDataEvento(filtradas, f.Janela != JanelaPassadas)
}

// AtualizarStatus muda o status no backend e recarrega a coleção inteira em
// vez de remendar o item em memória.
func (l *ReservaLista) AtualizarStatus(ctx context.Context, id int64, status string) error {
	if _, err := l.repo.AtualizarStatus(ctx, id, status); err != nil {
		return err
	}
	return l.Carregar(ctx)
}

// Excluir remove a reserva e recarrega.
func (l *ReservaLista) Excluir(ctx context.Context, id int64) error {
	if err := l.repo.Delete(ctx, id); err != nil {
		return err
	}
	return l.Carregar(ctx)
}

// EspacoLista tela de listagem de espaços. Quando o usuário é funcionário a
// coleção é restrita à filial dele.
type EspacoLista struct {
	repo     repository.EspacoRepository
	filialID int64 // 0 = sem escopo (admin)
	brutos   []entity.Espaco
}

// NewEspacoLista constrói a tela; filialID > 0 restringe à filial.
func NewEspacoLista(repo repository.EspacoRepository, filialID int64) *EspacoLista {
	return &EspacoLista{repo: repo, filialID: filialID}
}

// Carregar busca a coleção, escopada pela filial quando houver.
func (l *EspacoLista) Carregar(ctx context.Context) error {
	var (
		espacos []entity.Espaco
		err     error
	)
	if l.filialID > 0 {
		espacos, err = l.repo.GetByFilial(ctx, l.filialID)
	} else {
		espacos, err = l.repo.GetAll(ctx)
	}
	if err != nil {
		return err
	}
	l.brutos = espacos
	return nil
}

// Brutos devolve a coleção como veio do backend.
func (l *EspacoLista) Brutos() []entity.Espaco { return l.brutos }

// Filtrar aplica texto e o recorte de ativos sobre a coleção carregada.
func (l *EspacoLista) Filtrar(texto string, apenasAtivos bool) []entity.Espaco {
	return FiltrarEspacos(l.brutos, texto, apenasAtivos)
}

// AlternarAtivo inverte a flag pelo endpoint de edição e recarrega tudo.
func (l *EspacoLista) AlternarAtivo(ctx context.Context, e entity.Espaco) error {
	_, err := l.repo.Update(ctx, e.ID, dtoDeEspaco(e, !e.Ativo))
	if err != nil {
		return err
	}
	return l.Carregar(ctx)
}

// Excluir remove o espaço e recarrega.
func (l *EspacoLista) Excluir(ctx context.Context, id int64) error {
	if err := l.repo.Delete(ctx, id); err != nil {
		return err
	}
	return l.Carregar(ctx)
}

// FilialLista tela de listagem de filiais.
type FilialLista struct {
	repo   repository.FilialRepository
	brutas []entity.Filial
}

// NewFilialLista constrói a tela.
func NewFilialLista(repo repository.FilialRepository) *FilialLista {
	return &FilialLista{repo: repo}
}

// Carregar busca todas as filiais.
func (l *FilialLista) Carregar(ctx context.Context) error {
	filiais, err := l.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	l.brutas = filiais
	return nil
}

// Brutas devolve a coleção como veio do backend.
func (l *FilialLista) Brutas() []entity.Filial { return l.brutas }

// Filtrar aplica texto e o recorte de ativas.
func (l *FilialLista) Filtrar(texto string, apenasAtivas bool) []entity.Filial {
	return FiltrarFiliais(l.brutas, texto, apenasAtivas)
}

// Excluir remove a filial e recarrega.
func (l *FilialLista) Excluir(ctx context.Context, id int64) error {
	if err := l.repo.Delete(ctx, id); err != nil {
		return err
	}
	return l.Carregar(ctx)
}

// ClienteLista tela de listagem de clientes.
type ClienteLista struct {
	repo   repository.ClienteRepository
	brutos []entity.Usuario
}

// NewClienteLista constrói a tela.
func NewClienteLista(repo repository.ClienteRepository) *ClienteLista {
	return &ClienteLista{repo: repo}
}

// Carregar busca todos os clientes.
func (l *ClienteLista) Carregar(ctx context.Context) error {
	clientes, err := l.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	l.brutos = clientes
	return nil
}

// Brutos devolve a coleção como veio do backend.
func (l *ClienteLista) Brutos() []entity.Usuario { return l.brutos }

// Filtrar aplica substring em nome/email.
func (l *ClienteLista) Filtrar(texto string) []entity.Usuario {
	return FiltrarClientes(l.brutos, texto)
}

// AlternarAtivo usa o PATCH dedicado e recarrega a coleção inteira.
func (l *ClienteLista) AlternarAtivo(ctx context.Context, c entity.Usuario) error {
	if _, err := l.repo.AlterarAtivo(ctx, c.ID, !c.Ativo); err != nil {
		return err
	}
	return l.Carregar(ctx)
}

// FuncionarioLista tela de listagem de funcionários, opcionalmente por filial.
type FuncionarioLista struct {
	repo     repository.FuncionarioRepository
	filialID int64 // 0 = todos
	brutos   []entity.Funcionario
}

// NewFuncionarioLista constrói a tela; filialID > 0 restringe à filial.
func NewFuncionarioLista(repo repository.FuncionarioRepository, filialID int64) *FuncionarioLista {
	return &FuncionarioLista{repo: repo, filialID: filialID}
}

// Carregar busca a coleção, escopada pela filial quando houver.
func (l *FuncionarioLista) Carregar(ctx context.Context) error {
	var (
		funcionarios []entity.Funcionario
		err          error
	)
	if l.filialID > 0 {
		funcionarios, err = l.repo.GetByFilial(ctx, l.filialID)
	} else {
		funcionarios, err = l.repo.GetAll(ctx)
	}
	if err != nil {
		return err
	}
	l.brutos = funcionarios
	return nil
}

// Brutos devolve a coleção como veio do backend.
func (l *FuncionarioLista) Brutos() []entity.Funcionario { return l.brutos }

// Filtrar aplica substring em nome/email/matrícula.
func (l *FuncionarioLista) Filtrar(texto string) []entity.Funcionario {
	return FiltrarFuncionarios(l.brutos, texto)
}

// AlternarAtivo usa o PATCH dedicado e recarrega.
func (l *FuncionarioLista) AlternarAtivo(ctx context.Context, f entity.Funcionario) error {
	if _, err := l.repo.AlterarAtivo(ctx, f.ID, !f.Ativo); err != nil {
		return err
	}
	return l.Carregar(ctx)
}

// AlterarFilial move o funcionário de filial e recarrega.
func (l *FuncionarioLista) AlterarFilial(ctx context.Context, id, filialID int64) error {
	if _, err := l.repo.AlterarFilial(ctx, id, filialID); err != nil {
		return err
	}
	return l.Carregar(ctx)
}
