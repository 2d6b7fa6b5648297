package dto

// LoginRequest entrada para POST /auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse resposta do backend: dados do usuário + token de sessão.
type LoginResponse struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
	Token  string `json:"token"`
}
