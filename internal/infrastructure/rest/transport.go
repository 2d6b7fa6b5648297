package rest

import "net/http"

// Transport anexa o token de sessão como credencial Bearer em toda requisição
// de saída. Implementa http.RoundTripper para envolver o transporte padrão.
//
// Se a fonte de token devolver vazio a requisição segue inalterada, e um
// Authorization já definido pelo chamador nunca é sobrescrito.
type Transport struct {
	Base  http.RoundTripper
	Token func() string
}

// RoundTrip implementa http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	tok := ""
	if t.Token != nil {
		tok = t.Token()
	}
	if tok == "" || req.Header.Get("Authorization") != "" {
		return base.RoundTrip(req)
	}
	// RoundTrippers não devem mutar a requisição original.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+tok)
	return base.RoundTrip(clone)
}
