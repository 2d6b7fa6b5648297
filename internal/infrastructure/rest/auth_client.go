package rest

import (
	"context"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/dto"
	"github.com/lucasmv/reserva-espacos-cli/internal/domain/repository"
)

// Verificação em tempo de compilação de que AuthClient implementa a porta.
var _ repository.AuthRepository = (*AuthClient)(nil)

// AuthClient cliente de /auth.
type AuthClient struct {
	c *Client
}

// NewAuthClient constrói o cliente de autenticação.
func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

// Login POST /auth/login. O erro volta intocado para o chamador interpretar.
func (a *AuthClient) Login(ctx context.Context, email, senha string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Email: email, Senha: senha}
	if err := a.c.post(ctx, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
