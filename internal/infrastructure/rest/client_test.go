package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/rest"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// novoCliente monta um Client apontando para o servidor de teste.
func novoCliente(t *testing.T, srv *httptest.Server, token string, ao401 func()) *rest.Client {
	t.Helper()
	return rest.NewClient(rest.Config{
		BaseURL:      srv.URL,
		Token:        func() string { return token },
		AoReceber401: ao401,
	}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Anexo do token Bearer
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: com token presente toda requisição sai com Authorization: Bearer <token>.
func TestTransport_AnexaBearer(t *testing.T) {
	var recebido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cli := rest.NewEspacoClient(novoCliente(t, srv, "tok-abc", nil))
	_, err := cli.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", recebido)
}

// Caso 2: sem token o header fica ausente e os demais headers não são tocados.
func TestTransport_SemToken(t *testing.T) {
	var auth, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		accept = r.Header.Get("Accept")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cli := rest.NewEspacoClient(novoCliente(t, srv, "", nil))
	_, err := cli.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth, "sem sessão não deve haver Authorization")
	assert.Equal(t, "application/json", accept, "os demais headers seguem intactos")
}

// Caso 3: Authorization já definido pelo chamador nunca é sobrescrito.
func TestTransport_NaoSobrescreveAuthorization(t *testing.T) {
	var recebido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := &rest.Transport{Token: func() string { return "tok-sessao" }}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Basic abc123")

	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Basic abc123", recebido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tratamento global de 401
// ──────────────────────────────────────────────────────────────────────────────

// O hook de 401 é invocado exatamente uma vez por resposta 401 e o erro ainda
// chega ao chamador.
func TestClient_401DisparaHookESempreDevolveErro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token expirado"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	chamadas := 0
	cli := rest.NewEspacoClient(novoCliente(t, srv, "tok", func() { chamadas++ }))

	_, err := cli.GetAll(context.Background())
	require.Error(t, err, "o erro deve voltar ao chamador mesmo após o hook")
	assert.Equal(t, 1, chamadas)

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expirado", apiErr.Mensagem)
	assert.ErrorIs(t, err, domain.ErrNaoAutenticado)
}

// N requisições concorrentes com 401: o hook dispara N vezes, uma por resposta.
func TestClient_401Concorrente(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	var mu sync.Mutex
	chamadas := 0
	cli := rest.NewEspacoClient(novoCliente(t, srv, "tok", func() {
		mu.Lock()
		chamadas++
		mu.Unlock()
	}))

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cli.GetAll(context.Background())
			assert.Error(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, n, chamadas, "cada 401 deve disparar o hook exatamente uma vez")
}

// Erros que não são 401 não disparam o hook.
func TestClient_ErroComumNaoDisparaHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"espaço não encontrado"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	chamadas := 0
	cli := rest.NewEspacoClient(novoCliente(t, srv, "tok", func() { chamadas++ }))

	_, err := cli.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.Zero(t, chamadas)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precedência de extração de mensagem
// ──────────────────────────────────────────────────────────────────────────────

func TestExtrairMensagem_Precedencia(t *testing.T) {
	// Caso 1: objeto com "message".
	assert.Equal(t, "M", rest.ExtrairMensagem([]byte(`{"message":"M","error":"E"}`), 400))
	// Caso 2: objeto só com "error".
	assert.Equal(t, "E", rest.ExtrairMensagem([]byte(`{"error":"E"}`), 400))
	// Caso 3: corpo string cru.
	assert.Equal(t, "S", rest.ExtrairMensagem([]byte(`S`), 400))
	// Caso 3b: string JSON.
	assert.Equal(t, "S", rest.ExtrairMensagem([]byte(`"S"`), 400))
	// Caso 4: corpo vazio cai no texto do status HTTP.
	assert.Equal(t, "Bad Request", rest.ExtrairMensagem(nil, 400))
	// Caso 5: status desconhecido sem corpo cai na mensagem padrão.
	assert.Equal(t, rest.MensagemPadrao, rest.ExtrairMensagem(nil, 599))
}

// Status, URL e headers originais são preservados no APIError.
func TestAPIError_PreservaContexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Trace-Id", "abc")
		http.Error(w, `{"message":"conflito de datas"}`, http.StatusConflict)
	}))
	defer srv.Close()

	cli := rest.NewReservaClient(novoCliente(t, srv, "tok", nil))
	_, err := cli.GetByID(context.Background(), 7)

	var apiErr *rest.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Contains(t, apiErr.URL, "/reservas/7")
	assert.Equal(t, "abc", apiErr.Header.Get("X-Trace-Id"))
	assert.Equal(t, "conflito de datas", apiErr.Mensagem)
	assert.ErrorIs(t, err, domain.ErrConflito)
}
