package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/DevKaiky/appfit-API/internal/models"
)

type DesafioRepository interface {
	Create(ctx context.Context, desafio *models.Desafio) (uint64, error)
	FindByID(ctx context.Context, id uint64) (*models.Desafio, error)
	FindAll(ctx context.Context) ([]*models.Desafio, error)
	Update(ctx context.Context, id uint64, update *models.DesafioUpdate) (bool, error)
	SoftDelete(ctx context.Context, id uint64) (bool, error)
	Exists(ctx context.Context, id uint64) (bool, error)
}

type desafioRepository struct {
	db *sql.DB
}

func NewDesafioRepository(db *sql.DB) DesafioRepository {
	return &desafioRepository{db: db}
}

func (r *desafioRepository) Create(ctx context.Context, desafio *models.Desafio) (uint64, error) {
	query := `
		INSERT INTO desafios (titulo, descricao, data_inicio, data_fim, nivel_dificuldade, recompensa, criado_por)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		desafio.Titulo, desafio.Descricao, desafio.DataInicio, desafio.DataFim,
		desafio.NivelDificuldade, desafio.Recompensa, desafio.CriadoPor,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create desafio: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return uint64(id), nil
}

// FindByID returns one active challenge joined with its creator's name, or
// nil when it is absent or soft deleted.
func (r *desafioRepository) FindByID(ctx context.Context, id uint64) (*models.Desafio, error) {
	query := `
		SELECT d.id, d.titulo, d.descricao, d.data_inicio, d.data_fim,
			d.nivel_dificuldade, d.recompensa, d.criado_por, u.nome AS criador_nome,
			d.ativo, d.data_criacao
		FROM desafios d
		LEFT JOIN usuarios u ON d.criado_por = u.id
		WHERE d.id = ? AND d.ativo = 1
	`
	desafio := &models.Desafio{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&desafio.ID, &desafio.Titulo, &desafio.Descricao, &desafio.DataInicio,
		&desafio.DataFim, &desafio.NivelDificuldade, &desafio.Recompensa,
		&desafio.CriadoPor, &desafio.CriadorNome, &desafio.Ativo, &desafio.DataCriacao,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find desafio by id: %w", err)
	}
	return desafio, nil
}

// FindAll lists the active challenges, newest first.
func (r *desafioRepository) FindAll(ctx context.Context) ([]*models.Desafio, error) {
	query := `
		SELECT d.id, d.titulo, d.descricao, d.data_inicio, d.data_fim,
			d.nivel_dificuldade, d.recompensa, d.criado_por, u.nome AS criador_nome,
			d.ativo, d.data_criacao
		FROM desafios d
		LEFT JOIN usuarios u ON d.criado_por = u.id
		WHERE d.ativo = 1
		ORDER BY d.data_criacao DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list desafios: %w", err)
	}
	defer rows.Close()

	var desafios []*models.Desafio
	for rows.Next() {
		desafio := &models.Desafio{}
		if err := rows.Scan(
			&desafio.ID, &desafio.Titulo, &desafio.Descricao, &desafio.DataInicio,
			&desafio.DataFim, &desafio.NivelDificuldade, &desafio.Recompensa,
			&desafio.CriadoPor, &desafio.CriadorNome, &desafio.Ativo, &desafio.DataCriacao,
		); err != nil {
			return nil, fmt.Errorf("failed to scan desafio: %w", err)
		}
		desafios = append(desafios, desafio)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating desafios: %w", err)
	}
	return desafios, nil
}

// Update persists only the supplied fields, building the SET clause in a
// fixed column order. Inactive rows are never touched.
func (r *desafioRepository) Update(ctx context.Context, id uint64, update *models.DesafioUpdate) (bool, error) {
	var sets []string
	var args []interface{}

	if update.Titulo != nil {
		sets = append(sets, "titulo = ?")
		args = append(args, *update.Titulo)
	}
	if update.Descricao != nil {
		sets = append(sets, "descricao = ?")
		args = append(args, *update.Descricao)
	}
	if update.DataInicio != nil {
		sets = append(sets, "data_inicio = ?")
		args = append(args, *update.DataInicio)
	}
	if update.DataFim != nil {
		sets = append(sets, "data_fim = ?")
		args = append(args, *update.DataFim)
	}
	if update.NivelDificuldade != nil {
		sets = append(sets, "nivel_dificuldade = ?")
		args = append(args, *update.NivelDificuldade)
	}
	if update.Recompensa != nil {
		sets = append(sets, "recompensa = ?")
		args = append(args, *update.Recompensa)
	}

	if len(sets) == 0 {
		// Nothing to persist; the row was already checked to exist.
		return true, nil
	}

	query := fmt.Sprintf("UPDATE desafios SET %s WHERE id = ? AND ativo = 1", strings.Join(sets, ", "))
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update desafio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected > 0, nil
}

// SoftDelete flips the active flag. The row stays in place and disappears
// from every subsequent read.
func (r *desafioRepository) SoftDelete(ctx context.Context, id uint64) (bool, error) {
	query := `UPDATE desafios SET ativo = 0 WHERE id = ? AND ativo = 1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete desafio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *desafioRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	query := `SELECT COUNT(*) FROM desafios WHERE id = ? AND ativo = 1`

	var total int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&total); err != nil {
		return false, fmt.Errorf("failed to check desafio existence: %w", err)
	}
	return total > 0, nil
}
