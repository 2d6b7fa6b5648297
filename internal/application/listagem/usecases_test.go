package listagem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/application/listagem"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
)

// espacoRepoFalso conta recargas e registra atualizações.
type espacoRepoFalso struct {
	porFilial    map[int64][]entity.Espaco
	todos        []entity.Espaco
	cargas       int
	atualizacoes []dto.EspacoRequest
}

func (r *espacoRepoFalso) GetAll(context.Context) ([]entity.Espaco, error) {
	r.cargas++
	return r.todos, nil
}
func (r *espacoRepoFalso) GetByID(context.Context, int64) (*entity.Espaco, error) { return nil, nil }
func (r *espacoRepoFalso) GetAtivos(context.Context) ([]entity.Espaco, error)     { return nil, nil }
func (r *espacoRepoFalso) GetByFilial(_ context.Context, id int64) ([]entity.Espaco, error) {
	r.cargas++
	return r.porFilial[id], nil
}
func (r *espacoRepoFalso) Create(context.Context, dto.EspacoRequest) (*entity.Espaco, error) {
	return nil, nil
}
func (r *espacoRepoFalso) Update(_ context.Context, _ int64, in dto.EspacoRequest) (*entity.Espaco, error) {
	r.atualizacoes = append(r.atualizacoes, in)
	return &entity.Espaco{}, nil
}
func (r *espacoRepoFalso) Delete(context.Context, int64) error { return nil }

// O escopo por filial usa a rota dedicada, não a coleção inteira.
func TestEspacoLista_EscopoPorFilial(t *testing.T) {
	repo := &espacoRepoFalso{
		todos:     []entity.Espaco{{ID: 1}, {ID: 2}, {ID: 3}},
		porFilial: map[int64][]entity.Espaco{7: {{ID: 2, FilialID: 7}}},
	}

	admin := listagem.NewEspacoLista(repo, 0)
	require.NoError(t, admin.Carregar(context.Background()))
	assert.Len(t, admin.Brutos(), 3)

	funcionario := listagem.NewEspacoLista(repo, 7)
	require.NoError(t, funcionario.Carregar(context.Background()))
	require.Len(t, funcionario.Brutos(), 1)
	assert.Equal(t, int64(7), funcionario.Brutos()[0].FilialID)
}

// Alternar o ativo dispara um PUT com a flag invertida e uma recarga completa.
func TestEspacoLista_AlternarAtivoRecarrega(t *testing.T) {
	repo := &espacoRepoFalso{todos: []entity.Espaco{{ID: 1, Nome: "Salão", Ativo: true}}}
	lista := listagem.NewEspacoLista(repo, 0)
	require.NoError(t, lista.Carregar(context.Background()))
	cargasAntes := repo.cargas

	require.NoError(t, lista.AlternarAtivo(context.Background(), repo.todos[0]))

	require.Len(t, repo.atualizacoes, 1)
	assert.False(t, repo.atualizacoes[0].Ativo, "a flag deve ir invertida")
	assert.Equal(t, "Salão", repo.atualizacoes[0].Nome, "os demais campos vão preservados")
	assert.Equal(t, cargasAntes+1, repo.cargas, "mutação recarrega a coleção inteira")
}
