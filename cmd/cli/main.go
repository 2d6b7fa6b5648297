package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lucasmv/reserva-espacos-cli/internal/application/acesso"
	"github.com/lucasmv/reserva-espacos-cli/internal/application/sessao"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/pdf"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/rest"
	"github.com/lucasmv/reserva-espacos-cli/internal/infrastructure/storage"
	"github.com/lucasmv/reserva-espacos-cli/internal/interfaces/cli"
	"github.com/lucasmv/reserva-espacos-cli/pkg/config"
	"github.com/lucasmv/reserva-espacos-cli/pkg/logger"
)

func main() {
	// .env local é opcional; as env vars têm prioridade.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicação")

	arm, err := storage.NewArquivo(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar diretório de sessão")
	}

	// O cliente base precisa do token da sessão e a sessão precisa do cliente
	// de auth; os closures quebram o ciclo lendo a variável preenchida abaixo.
	var (
		st     *sessao.Store
		tratar func()
	)
	base := rest.NewClient(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
		Token: func() string {
			if st == nil {
				return ""
			}
			return st.Token()
		},
		AoReceber401: func() {
			if tratar != nil {
				tratar()
			}
		},
	}, log)

	st = sessao.NewStore(rest.NewAuthClient(base), arm, log)
	nav := acesso.NavigatorFunc(func(rota string) {
		if rota == acesso.RotaLogin {
			fmt.Fprintln(os.Stderr, "Sessão expirada. Entre novamente.")
		}
	})
	tratar = acesso.Tratador401(st, nav)

	// restaura a sessão anterior, se ainda válida
	st.Restaurar()

	in := bufio.NewReader(os.Stdin)
	ui := cli.NewUI(cli.Deps{
		Sessao:       st,
		Espacos:      rest.NewEspacoClient(base),
		Filiais:      rest.NewFilialClient(base),
		Reservas:     rest.NewReservaClient(base),
		Pagamentos:   rest.NewPagamentoClient(base),
		Clientes:     rest.NewClienteClient(base),
		Funcionarios: rest.NewFuncionarioClient(base),
		Comprovantes: pdf.NewComprovanteGenerator(),
		Dialogo:      cli.NewTerminalDialogo(in, os.Stdout),
		Log:          log,
	}, in, os.Stdout)

	ui.Run(context.Background())
	log.Info().Msg("aplicação encerrada")
}
