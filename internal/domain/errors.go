package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado     = errors.New("recurso não encontrado")
	ErrNaoAutenticado    = errors.New("não autenticado")
	ErrAcessoNegado      = errors.New("acesso negado")
	ErrEntradaInvalida   = errors.New("entrada inválida")
	ErrConflito          = errors.New("conflito com o estado atual")
	ErrSessaoExpirada    = errors.New("sessão expirada")
	ErrReservaEncerrada  = errors.New("reserva cancelada ou finalizada não aceita alterações")
	ErrPagamentoIndevido = errors.New("reserva já quitada não aceita novos pagamentos")
)
