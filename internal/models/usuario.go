package models

import "time"

type Usuario struct {
	ID           uint64    `db:"id"`
	Nome         string    `db:"nome"`
	Email        string    `db:"email"`
	Senha        string    `db:"senha"`
	Ativo        bool      `db:"ativo"`
	DataCadastro time.Time `db:"data_cadastro"`
}

// UsuarioResource is the public projection of a user. The password hash
// never leaves the service boundary.
type UsuarioResource struct {
	ID    uint64 `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

func (u *Usuario) ToResource() *UsuarioResource {
	return &UsuarioResource{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
	}
}
