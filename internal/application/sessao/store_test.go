package sessao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/application/sessao"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/storage"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// authFalso devolve a resposta fixa ou o erro configurado.
type authFalso struct {
	resp *dto.LoginResponse
	err  error
}

func (a *authFalso) Login(_ context.Context, _, _ string) (*dto.LoginResponse, error) {
	return a.resp, a.err
}

// memoria implementa storage.Armazenamento em um map.
type memoria struct {
	dados map[string][]byte
}

func novaMemoria() *memoria { return &memoria{dados: map[string][]byte{}} }

func (m *memoria) Gravar(chave string, valor []byte) error {
	m.dados[chave] = valor
	return nil
}

func (m *memoria) Ler(chave string) ([]byte, error) {
	v, ok := m.dados[chave]
	if !ok {
		return nil, storage.ErrChaveInexistente
	}
	return v, nil
}

func (m *memoria) Remover(chave string) error {
	delete(m.dados, chave)
	return nil
}

func adminResp() *dto.LoginResponse {
	return &dto.LoginResponse{ID: 1, Nome: "Carla", Email: "carla@ex.com", Perfil: "ADMIN", Token: "tok-1"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GravaEPublica(t *testing.T) {
	mem := novaMemoria()
	st := sessao.NewStore(&authFalso{resp: adminResp()}, mem, logger.Nop())

	var publicado *entity.Usuario
	cancelar := st.Assinar(func(u *entity.Usuario) { publicado = u })
	defer cancelar()

	u, err := st.Login(context.Background(), "carla@ex.com", "123456")
	require.NoError(t, err)

	assert.True(t, st.EstaAutenticado())
	assert.Equal(t, "tok-1", st.Token())
	assert.Equal(t, "ADMIN", u.Perfil)
	assert.True(t, u.Ativo, "o snapshot reconstruído nasce ativo")

	// As duas chaves são gravadas juntas.
	tok, err := mem.Ler(sessao.ChaveToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", string(tok))
	_, err = mem.Ler(sessao.ChaveUsuario)
	require.NoError(t, err)

	// O assinante recebe o snapshot de forma síncrona.
	require.NotNil(t, publicado)
	assert.Equal(t, "carla@ex.com", publicado.Email)
}

func TestLogin_FalhaPropagaIntocada(t *testing.T) {
	falha := errors.New("credenciais inválidas")
	mem := novaMemoria()
	st := sessao.NewStore(&authFalso{err: falha}, mem, logger.Nop())

	_, err := st.Login(context.Background(), "x@ex.com", "errada")
	assert.ErrorIs(t, err, falha, "o erro do backend deve subir sem tradução")
	assert.False(t, st.EstaAutenticado())
	assert.Empty(t, mem.dados, "nada deve ser persistido em login falho")
}

func TestLogout_LimpaEPublicaNil(t *testing.T) {
	mem := novaMemoria()
	st := sessao.NewStore(&authFalso{resp: adminResp()}, mem, logger.Nop())
	_, err := st.Login(context.Background(), "carla@ex.com", "123456")
	require.NoError(t, err)

	var ultimo *entity.Usuario
	recebido := false
	st.Assinar(func(u *entity.Usuario) { ultimo = u; recebido = true })

	st.Logout()

	assert.False(t, st.EstaAutenticado())
	assert.Nil(t, st.UsuarioAtual())
	assert.True(t, recebido, "logout deve publicar")
	assert.Nil(t, ultimo)
	assert.Empty(t, mem.dados, "as duas chaves são removidas juntas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Restauração de sessão persistida
// ──────────────────────────────────────────────────────────────────────────────

func TestRestaurar_SessaoValida(t *testing.T) {
	mem := novaMemoria()
	mem.dados[sessao.ChaveToken] = []byte("tok-opaco")
	mem.dados[sessao.ChaveUsuario] = []byte(`{"id":2,"nome":"Bia","email":"bia@ex.com","perfil":"CLIENTE","ativo":true}`)

	st := sessao.NewStore(&authFalso{}, mem, logger.Nop())
	st.Restaurar()

	assert.True(t, st.EstaAutenticado())
	assert.True(t, st.EhCliente())
}

func TestRestaurar_JSONCorrompidoVira_SemSessao(t *testing.T) {
	mem := novaMemoria()
	mem.dados[sessao.ChaveToken] = []byte("tok")
	mem.dados[sessao.ChaveUsuario] = []byte(`{invalido`)

	st := sessao.NewStore(&authFalso{}, mem, logger.Nop())
	st.Restaurar() // não deve entrar em pânico nem propagar erro

	assert.Nil(t, st.UsuarioAtual())
}

func TestRestaurar_JWTExpiradoDescartado(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("segredo-do-backend"))
	require.NoError(t, err)

	mem := novaMemoria()
	mem.dados[sessao.ChaveToken] = []byte(tok)
	mem.dados[sessao.ChaveUsuario] = []byte(`{"id":1,"perfil":"ADMIN"}`)

	st := sessao.NewStore(&authFalso{}, mem, logger.Nop())
	st.Restaurar()

	assert.False(t, st.EstaAutenticado(), "token expirado vira sessão inexistente")
	assert.Empty(t, mem.dados, "as chaves expiradas são limpas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestPredicadosDePerfil(t *testing.T) {
	mem := novaMemoria()
	st := sessao.NewStore(&authFalso{resp: adminResp()}, mem, logger.Nop())

	// Caso 1: sem sessão todos os predicados são falsos.
	assert.False(t, st.EhAdmin())
	assert.False(t, st.TemPerfil("ADMIN", "FUNCIONARIO"))

	// Caso 2: com sessão os predicados refletem o perfil.
	_, err := st.Login(context.Background(), "carla@ex.com", "123456")
	require.NoError(t, err)
	assert.True(t, st.EhAdmin())
	assert.False(t, st.EhFuncionario())
	assert.False(t, st.EhCliente())
	assert.True(t, st.TemPerfil("ADMIN"))
	assert.True(t, st.TemPerfil("FUNCIONARIO", "ADMIN"))
	assert.False(t, st.TemPerfil("CLIENTE"))
}

func TestAssinar_CancelamentoParaNotificacoes(t *testing.T) {
	st := sessao.NewStore(&authFalso{resp: adminResp()}, novaMemoria(), logger.Nop())

	notificacoes := 0
	cancelar := st.Assinar(func(*entity.Usuario) { notificacoes++ })

	_, err := st.Login(context.Background(), "carla@ex.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, 1, notificacoes)

	cancelar()
	st.Logout()
	assert.Equal(t, 1, notificacoes, "assinante cancelado não recebe mais nada")
}
