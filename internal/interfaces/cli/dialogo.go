package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dialogo abstrai confirmação e aviso ao usuário. As telas recebem a porta
// injetada; ações destrutivas só executam após Confirmar devolver true.
type Dialogo interface {
	Confirmar(mensagem string) bool
	Notificar(mensagem string)
}

// TerminalDialogo implementa Dialogo sobre o terminal: confirma com s/n.
type TerminalDialogo struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalDialogo constrói o diálogo de terminal.
func NewTerminalDialogo(in *bufio.Reader, out io.Writer) *TerminalDialogo {
	return &TerminalDialogo{in: in, out: out}
}

func (d *TerminalDialogo) Confirmar(mensagem string) bool {
	fmt.Fprintf(d.out, "%s (s/n): ", mensagem)
	linha, _ := d.in.ReadString('\n')
	resposta := strings.ToLower(strings.TrimSpace(linha))
	return resposta == "s" || resposta == "sim"
}

func (d *TerminalDialogo) Notificar(mensagem string) {
	fmt.Fprintln(d.out, mensagem)
}

var _ Dialogo = (*TerminalDialogo)(nil)
