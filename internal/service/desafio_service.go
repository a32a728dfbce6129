package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DevKaiky/appfit-API/internal/models"
	"github.com/DevKaiky/appfit-API/internal/repository"
	"github.com/DevKaiky/appfit-API/internal/validation"
)

var (
	ErrDesafioNaoEncontrado = errors.New("Desafio não encontrado")
	ErrIDInvalido           = errors.New("ID inválido")
)

type DesafioService interface {
	Criar(ctx context.Context, in *models.DesafioInput, criadoPor uint64) (*models.Desafio, error)
	ListarTodos(ctx context.Context) ([]*models.Desafio, error)
	BuscarPorID(ctx context.Context, id uint64) (*models.Desafio, error)
	Atualizar(ctx context.Context, id uint64, in *models.DesafioInput) (*models.Desafio, error)
	Excluir(ctx context.Context, id uint64) error
}

type desafioService struct {
	desafioRepo repository.DesafioRepository
}

func NewDesafioService(desafioRepo repository.DesafioRepository) DesafioService {
	return &desafioService{desafioRepo: desafioRepo}
}

// Criar validates the full payload, persists it with the authenticated user
// as creator, and returns the freshly read record.
func (s *desafioService) Criar(ctx context.Context, in *models.DesafioInput, criadoPor uint64) (*models.Desafio, error) {
	if err := validation.ValidateDesafio(in, true); err != nil {
		return nil, err
	}

	// Dates were already format-checked by the validation engine.
	dataInicio, err := validation.ParseDate(*in.DataInicio)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data_inicio: %w", err)
	}
	dataFim, err := validation.ParseDate(*in.DataFim)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data_fim: %w", err)
	}

	desafio := &models.Desafio{
		Titulo:           *in.Titulo,
		Descricao:        *in.Descricao,
		DataInicio:       dataInicio,
		DataFim:          dataFim,
		NivelDificuldade: *in.NivelDificuldade,
		CriadoPor:        criadoPor,
	}
	if in.Recompensa != nil {
		desafio.Recompensa = sql.NullString{String: *in.Recompensa, Valid: true}
	}

	id, err := s.desafioRepo.Create(ctx, desafio)
	if err != nil {
		return nil, fmt.Errorf("failed to create desafio: %w", err)
	}

	criado, err := s.desafioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read created desafio: %w", err)
	}
	if criado == nil {
		return nil, fmt.Errorf("created desafio %d not found on re-read", id)
	}
	return criado, nil
}

func (s *desafioService) ListarTodos(ctx context.Context) ([]*models.Desafio, error) {
	desafios, err := s.desafioRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list desafios: %w", err)
	}
	return desafios, nil
}

func (s *desafioService) BuscarPorID(ctx context.Context, id uint64) (*models.Desafio, error) {
	if id == 0 {
		return nil, ErrIDInvalido
	}

	desafio, err := s.desafioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find desafio: %w", err)
	}
	if desafio == nil {
		return nil, ErrDesafioNaoEncontrado
	}
	return desafio, nil
}

// Atualizar revalidates only the supplied fields and persists them. The
// target must currently be active.
func (s *desafioService) Atualizar(ctx context.Context, id uint64, in *models.DesafioInput) (*models.Desafio, error) {
	if id == 0 {
		return nil, ErrIDInvalido
	}

	exists, err := s.desafioRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check desafio: %w", err)
	}
	if !exists {
		return nil, ErrDesafioNaoEncontrado
	}

	if err := validation.ValidateDesafio(in, false); err != nil {
		return nil, err
	}

	update := &models.DesafioUpdate{
		Titulo:           in.Titulo,
		Descricao:        in.Descricao,
		NivelDificuldade: in.NivelDificuldade,
		Recompensa:       in.Recompensa,
	}
	if in.DataInicio != nil {
		dataInicio, err := validation.ParseDate(*in.DataInicio)
		if err != nil {
			return nil, fmt.Errorf("failed to parse data_inicio: %w", err)
		}
		update.DataInicio = &dataInicio
	}
	if in.DataFim != nil {
		dataFim, err := validation.ParseDate(*in.DataFim)
		if err != nil {
			return nil, fmt.Errorf("failed to parse data_fim: %w", err)
		}
		update.DataFim = &dataFim
	}

	// RowsAffected is 0 when the new values equal the old ones; existence
	// was already established, so that is not treated as a failure.
	if _, err := s.desafioRepo.Update(ctx, id, update); err != nil {
		return nil, fmt.Errorf("failed to update desafio: %w", err)
	}

	atualizado, err := s.desafioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read updated desafio: %w", err)
	}
	if atualizado == nil {
		return nil, ErrDesafioNaoEncontrado
	}
	return atualizado, nil
}

// Excluir soft deletes an active challenge. A second call for the same id
// fails with not found, since the row is no longer visible.
func (s *desafioService) Excluir(ctx context.Context, id uint64) error {
	if id == 0 {
		return ErrIDInvalido
	}

	exists, err := s.desafioRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check desafio: %w", err)
	}
	if !exists {
		return ErrDesafioNaoEncontrado
	}

	excluido, err := s.desafioRepo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete desafio: %w", err)
	}
	if !excluido {
		return ErrDesafioNaoEncontrado
	}
	return nil
}
