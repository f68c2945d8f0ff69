package models

// Credential é um usuário registrado. A senha é um segredo opaco comparado
// byte a byte no login; proteção do conjunto em repouso está fora de escopo.
type Credential struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

// Session identifica o usuário autenticado. A senha nunca sai do conjunto
// de credenciais.
type Session struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}
