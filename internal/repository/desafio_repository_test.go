package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/DevKaiky/appfit-API/internal/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

var desafioColumns = []string{
	"id", "titulo", "descricao", "data_inicio", "data_fim",
	"nivel_dificuldade", "recompensa", "criado_por", "criador_nome",
	"ativo", "data_criacao",
}

func desafioRow(id int64, titulo string, criacao time.Time) []driver.Value {
	return []driver.Value{
		id, titulo, "Descrição longa o suficiente",
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		"Intermediario", "Medalha", int64(1), "Admin Teste",
		true, criacao,
	}
}

func TestDesafioRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDesafioRepository(db)

	desafio := &models.Desafio{
		Titulo:           "30 Dias de Corrida",
		Descricao:        "Correr pelo menos 5km todos os dias",
		DataInicio:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		DataFim:          time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		NivelDificuldade: "Intermediario",
		Recompensa:       sql.NullString{String: "Medalha", Valid: true},
		CriadoPor:        1,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO desafios (titulo, descricao, data_inicio, data_fim, nivel_dificuldade, recompensa, criado_por)")).
		WithArgs(desafio.Titulo, desafio.Descricao, desafio.DataInicio, desafio.DataFim,
			desafio.NivelDificuldade, desafio.Recompensa, desafio.CriadoPor).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Create(context.Background(), desafio)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestDesafioRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		rows := sqlmock.NewRows(desafioColumns).
			AddRow(desafioRow(5, "30 Dias de Corrida", time.Now())...)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id = ? AND d.ativo = 1")).
			WithArgs(uint64(5)).
			WillReturnRows(rows)

		desafio, err := repo.FindByID(context.Background(), 5)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if desafio.ID != 5 || desafio.Titulo != "30 Dias de Corrida" {
			t.Fatalf("unexpected row: %+v", desafio)
		}
		if !desafio.CriadorNome.Valid || desafio.CriadorNome.String != "Admin Teste" {
			t.Fatalf("creator name not joined: %+v", desafio.CriadorNome)
		}
	})

	t.Run("absent or soft deleted returns nil, nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id = ? AND d.ativo = 1")).
			WithArgs(uint64(99)).
			WillReturnError(sql.ErrNoRows)

		desafio, err := repo.FindByID(context.Background(), 99)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if desafio != nil {
			t.Fatalf("expected nil desafio, got %+v", desafio)
		}
	})
}

func TestDesafioRepository_FindAll(t *testing.T) {
	t.Run("filters active and orders newest first", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		newest := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
		oldest := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(desafioColumns).
			AddRow(desafioRow(2, "Desafio Novo", newest)...).
			AddRow(desafioRow(1, "Desafio Antigo", oldest)...)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE d.ativo = 1") + `\s+ORDER BY d\.data_criacao DESC`).
			WillReturnRows(rows)

		desafios, err := repo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if len(desafios) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(desafios))
		}
		if desafios[0].ID != 2 || desafios[1].ID != 1 {
			t.Fatalf("row order not preserved: %d, %d", desafios[0].ID, desafios[1].ID)
		}
	})

	t.Run("empty result", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE d.ativo = 1")).
			WillReturnRows(sqlmock.NewRows(desafioColumns))

		desafios, err := repo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if len(desafios) != 0 {
			t.Fatalf("expected no rows, got %d", len(desafios))
		}
	})
}

func TestDesafioRepository_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("builds SET from the supplied subset only", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		update := &models.DesafioUpdate{
			Titulo:     strPtr("Novo título"),
			Recompensa: strPtr("Nova recompensa"),
		}

		mock.ExpectExec(regexp.QuoteMeta("UPDATE desafios SET titulo = ?, recompensa = ? WHERE id = ? AND ativo = 1")).
			WithArgs("Novo título", "Nova recompensa", uint64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.Update(context.Background(), 5, update)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if !updated {
			t.Fatal("expected updated true")
		}
	})

	t.Run("all columns in fixed order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		inicio := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		fim := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
		update := &models.DesafioUpdate{
			Titulo:           strPtr("Novo título"),
			Descricao:        strPtr("Nova descrição bem longa"),
			DataInicio:       &inicio,
			DataFim:          &fim,
			NivelDificuldade: strPtr("Extremo"),
			Recompensa:       strPtr("Troféu"),
		}

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE desafios SET titulo = ?, descricao = ?, data_inicio = ?, data_fim = ?, nivel_dificuldade = ?, recompensa = ? WHERE id = ? AND ativo = 1")).
			WithArgs("Novo título", "Nova descrição bem longa", inicio, fim, "Extremo", "Troféu", uint64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if _, err := repo.Update(context.Background(), 5, update); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	})

	t.Run("empty update touches nothing", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewDesafioRepository(db)

		updated, err := repo.Update(context.Background(), 5, &models.DesafioUpdate{})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if !updated {
			t.Fatal("no-op update must report success")
		}
	})

	t.Run("zero affected rows reports false", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE desafios SET titulo = ? WHERE id = ? AND ativo = 1")).
			WithArgs("Mesmo título", uint64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.Update(context.Background(), 5, &models.DesafioUpdate{Titulo: strPtr("Mesmo título")})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated {
			t.Fatal("expected updated false")
		}
	})
}

func TestDesafioRepository_SoftDelete(t *testing.T) {
	t.Run("active row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE desafios SET ativo = 0 WHERE id = ? AND ativo = 1")).
			WithArgs(uint64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.SoftDelete(context.Background(), 5)
		if err != nil {
			t.Fatalf("SoftDelete failed: %v", err)
		}
		if !deleted {
			t.Fatal("expected deleted true")
		}
	})

	t.Run("already deleted row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDesafioRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE desafios SET ativo = 0 WHERE id = ? AND ativo = 1")).
			WithArgs(uint64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.SoftDelete(context.Background(), 5)
		if err != nil {
			t.Fatalf("SoftDelete failed: %v", err)
		}
		if deleted {
			t.Fatal("expected deleted false")
		}
	})
}

func TestDesafioRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDesafioRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM desafios WHERE id = ? AND ativo = 1")).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 5)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists true")
	}
}

func TestDesafioRepository_QueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDesafioRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.ativo = 1")).
		WillReturnError(errors.New("connection refused"))

	if _, err := repo.FindAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
