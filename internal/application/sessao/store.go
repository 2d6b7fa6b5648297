// Package sessao guarda a identidade autenticada do cliente: token, snapshot
// do usuário, predicados de perfil e um fluxo publish-subscribe com o último
// valor. A sessão é a única entidade com ciclo de vida no cliente: nasce no
// login, é substituída (nunca remendada) e morre no logout ou num 401.
package sessao

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lucasmv/reserva-espacos-cli/internal/domain/entity"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/storage"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

// Chaves persistidas. São gravadas juntas no login e removidas juntas no logout.
const (
	ChaveToken   = "token"
	ChaveUsuario = "usuario"
)

// Assinante recebe o novo snapshot a cada substituição de identidade
// (nil em logout). A notificação é síncrona, último valor vence.
type Assinante func(*entity.Usuario)

// Store mantém a sessão corrente.
type Store struct {
	auth repository.AuthRepository
	arm  storage.Armazenamento
	log  *logger.Logger

	mu         sync.RWMutex
	token      string
	usuario    *entity.Usuario
	assinantes map[int]Assinante
	proximoID  int
}

// NewStore constrói o store com as portas injetadas.
func NewStore(auth repository.AuthRepository, arm storage.Armazenamento, log *logger.Logger) *Store {
	return &Store{
		auth:       auth,
		arm:        arm,
		log:        log,
		assinantes: map[int]Assinante{},
	}
}

// Login autentica no backend e, em caso de sucesso, grava token + snapshot e
// publica a nova identidade. Em caso de falha o erro sobe intocado para o
// chamador interpretar.
func (s *Store) Login(ctx context.Context, email, senha string) (*entity.Usuario, error) {
	resp, err := s.auth.Login(ctx, email, senha)
	if err != nil {
		return nil, err
	}

	u := &entity.Usuario{
		ID:           resp.ID,
		Nome:         resp.Nome,
		Email:        resp.Email,
		Perfil:       resp.Perfil,
		Ativo:        true,
		DataCadastro: time.Now(),
	}

	if err := s.arm.Gravar(ChaveToken, []byte(resp.Token)); err != nil {
		s.log.Warn().Err(err).Msg("persistir token da sessão")
	}
	if b, err := json.Marshal(u); err == nil {
		if err := s.arm.Gravar(ChaveUsuario, b); err != nil {
			s.log.Warn().Err(err).Msg("persistir usuário da sessão")
		}
	}

	s.substituir(resp.Token, u)
	s.log.Info().Str("email", u.Email).Str("perfil", u.Perfil).Msg("sessão aberta")
	return u, nil
}

// Logout limpa token e identidade e publica nil. Nenhuma chamada de rede.
func (s *Store) Logout() {
	_ = s.arm.Remover(ChaveToken)
	_ = s.arm.Remover(ChaveUsuario)
	s.substituir("", nil)
	s.log.Info().Msg("sessão encerrada")
}

// Restaurar recarrega uma sessão persistida de execução anterior. Conteúdo
// corrompido ou token expirado é tratado como "sem sessão", nunca como erro.
func (s *Store) Restaurar() {
	tok, err := s.arm.Ler(ChaveToken)
	if err != nil || len(tok) == 0 {
		return
	}
	if expirado(string(tok)) {
		s.log.Debug().Msg("token persistido expirado; sessão descartada")
		_ = s.arm.Remover(ChaveToken)
		_ = s.arm.Remover(ChaveUsuario)
		return
	}
	raw, err := s.arm.Ler(ChaveUsuario)
	if err != nil {
		return
	}
	var u entity.Usuario
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Debug().Err(err).Msg("snapshot de usuário corrompido; sessão descartada")
		return
	}
	s.substituir(string(tok), &u)
}

// expirado faz um parse sem verificação de assinatura só para ler o claim exp.
// O cliente não conhece o segredo do backend; a validade real é decidida lá.
func expirado(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Token opaco (não JWT): deixa o backend decidir.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// substituir troca a identidade corrente e notifica os assinantes em ordem.
func (s *Store) substituir(token string, u *entity.Usuario) {
	s.mu.Lock()
	s.token = token
	s.usuario = u
	assinantes := make([]Assinante, 0, len(s.assinantes))
	for _, a := range s.assinantes {
		assinantes = append(assinantes, a)
	}
	s.mu.Unlock()

	for _, a := range assinantes {
		a(u)
	}
}

// Assinar registra um assinante e devolve a função de cancelamento.
func (s *Store) Assinar(a Assinante) (cancelar func()) {
	s.mu.Lock()
	id := s.proximoID
	s.proximoID++
	s.assinantes[id] = a
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.assinantes, id)
		s.mu.Unlock()
	}
}

// EstaAutenticado devolve true se há token presente.
func (s *Store) EstaAutenticado() bool {
	return s.Token() != ""
}

// Token devolve o token corrente (vazio = sem sessão).
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UsuarioAtual devolve o último snapshot publicado ou nil.
func (s *Store) UsuarioAtual() *entity.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usuario
}

// Predicados puros sobre o perfil do snapshot corrente.
func (s *Store) EhAdmin() bool       { return s.UsuarioAtual().EhAdmin() }
func (s *Store) EhFuncionario() bool { return s.UsuarioAtual().EhFuncionario() }
func (s *Store) EhCliente() bool     { return s.UsuarioAtual().EhCliente() }

// TemPerfil devolve true se o perfil corrente está entre os informados.
func (s *Store) TemPerfil(perfis ...string) bool {
	return s.UsuarioAtual().TemPerfil(perfis...)
}
