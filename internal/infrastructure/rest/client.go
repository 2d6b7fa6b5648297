// Package rest implementa os clientes HTTP tipados de cada coleção do backend
// e o pipeline de interceptação: anexo do token Bearer na saída e, na volta,
// normalização de erros e tratamento global de 401.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

const corpoMaximo = 1 << 20 // 1 MiB é suficiente para qualquer resposta deste backend

// Config parâmetros do cliente base.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Token fornece o token de sessão corrente (vazio = sem sessão).
	Token func() string
	// AoReceber401 é invocado uma vez por resposta 401, antes de o erro ser
	// devolvido ao chamador. O wiring encadeia logout e depois o redirect,
	// nessa ordem.
	AoReceber401 func()
}

// Client é a base compartilhada pelos clientes de recurso: URL base, transporte
// com interceptadores e codec JSON. Sem retries e sem cache: cada chamada é uma
// ida completa à rede.
type Client struct {
	baseURL      string
	http         *http.Client
	log          *logger.Logger
	aoReceber401 func()
}

// NewClient constrói o cliente base com o transporte interceptado.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &Transport{Token: cfg.Token},
		},
		log:          log,
		aoReceber401: cfg.AoReceber401,
	}
}

// get faz GET em path e decodifica o JSON em out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post envia in como JSON e decodifica a resposta em out (out pode ser nil).
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// patch faz PATCH sem corpo; os parâmetros vão na query string.
func (c *Client) patch(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, metodo, path string, in, out any) error {
	var corpo io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("rest: serializar request: %w", err)
		}
		corpo = bytes.NewReader(b)
	}

	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, metodo, u, corpo)
	if err != nil {
		return fmt.Errorf("rest: criar request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("metodo", metodo).Str("url", u).Msg("falha de transporte")
		return fmt.Errorf("rest: %s %s: %w", metodo, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, corpoMaximo))
	if err != nil {
		return fmt.Errorf("rest: ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Status:   resp.StatusCode,
			URL:      u,
			Mensagem: ExtrairMensagem(raw, resp.StatusCode),
			Header:   resp.Header,
			Corpo:    raw,
		}
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("metodo", metodo).
			Str("url", u).
			Str("mensagem", apiErr.Mensagem).
			Msg("erro do backend")
		// 401 dispara o encerramento global da sessão antes de o erro
		// voltar ao chamador; o erro é devolvido sempre.
		if resp.StatusCode == http.StatusUnauthorized && c.aoReceber401 != nil {
			c.aoReceber401()
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("rest: decodificar resposta de %s: %w", path, err)
		}
	}
	return nil
}

// caminho monta um path absoluto escapando cada segmento.
func caminho(partes ...string) string {
	for i, p := range partes {
		partes[i] = url.PathEscape(p)
	}
	return "/" + strings.Join(partes, "/")
}
