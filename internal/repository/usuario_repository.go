package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DevKaiky/appfit-API/internal/models"
)

type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	FindByID(ctx context.Context, id uint64) (*models.Usuario, error)
}

type usuarioRepository struct {
	db *sql.DB
}

func NewUsuarioRepository(db *sql.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// FindByEmail looks up an active user by e-mail. Inactive users are
// invisible to every lookup.
func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	query := `
		SELECT id, nome, email, senha, ativo
		FROM usuarios
		WHERE email = ? AND ativo = 1
	`
	usuario := &models.Usuario{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.Senha, &usuario.Ativo,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return usuario, nil
}

func (r *usuarioRepository) FindByID(ctx context.Context, id uint64) (*models.Usuario, error) {
	query := `
		SELECT id, nome, email, senha, ativo, data_cadastro
		FROM usuarios
		WHERE id = ? AND ativo = 1
	`
	usuario := &models.Usuario{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.Senha,
		&usuario.Ativo, &usuario.DataCadastro,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return usuario, nil
}
