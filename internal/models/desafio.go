package models

import (
	"database/sql"
	"time"
)

const DateLayout = "2006-01-02"

type Desafio struct {
	ID               uint64         `db:"id"`
	Titulo           string         `db:"titulo"`
	Descricao        string         `db:"descricao"`
	DataInicio       time.Time      `db:"data_inicio"`
	DataFim          time.Time      `db:"data_fim"`
	NivelDificuldade string         `db:"nivel_dificuldade"`
	Recompensa       sql.NullString `db:"recompensa"`
	CriadoPor        uint64         `db:"criado_por"`
	CriadorNome      sql.NullString `db:"criador_nome"`
	Ativo            bool           `db:"ativo"`
	DataCriacao      time.Time      `db:"data_criacao"`
}

// DesafioInput carries the decoded request body for create and update.
// Pointer fields distinguish "absent" from "empty" so partial updates only
// touch the fields the client actually sent.
type DesafioInput struct {
	Titulo           *string `json:"titulo"`
	Descricao        *string `json:"descricao"`
	DataInicio       *string `json:"data_inicio"`
	DataFim          *string `json:"data_fim"`
	NivelDificuldade *string `json:"nivel_dificuldade"`
	Recompensa       *string `json:"recompensa"`
}

// DesafioUpdate holds the subset of columns an update will persist.
// Only non-nil fields end up in the SET clause.
type DesafioUpdate struct {
	Titulo           *string
	Descricao        *string
	DataInicio       *time.Time
	DataFim          *time.Time
	NivelDificuldade *string
	Recompensa       *string
}

// DesafioResource is the API representation of a challenge, joined with the
// creator's display name.
type DesafioResource struct {
	ID               uint64  `json:"id"`
	Titulo           string  `json:"titulo"`
	Descricao        string  `json:"descricao"`
	DataInicio       string  `json:"data_inicio"`
	DataFim          string  `json:"data_fim"`
	NivelDificuldade string  `json:"nivel_dificuldade"`
	Recompensa       *string `json:"recompensa"`
	CriadoPor        uint64  `json:"criado_por"`
	CriadorNome      *string `json:"criador_nome"`
	Ativo            bool    `json:"ativo"`
	DataCriacao      string  `json:"data_criacao"`
}

func (d *Desafio) ToResource() *DesafioResource {
	r := &DesafioResource{
		ID:               d.ID,
		Titulo:           d.Titulo,
		Descricao:        d.Descricao,
		DataInicio:       d.DataInicio.Format(DateLayout),
		DataFim:          d.DataFim.Format(DateLayout),
		NivelDificuldade: d.NivelDificuldade,
		CriadoPor:        d.CriadoPor,
		Ativo:            d.Ativo,
		DataCriacao:      d.DataCriacao.Format("2006-01-02 15:04:05"),
	}
	if d.Recompensa.Valid {
		r.Recompensa = &d.Recompensa.String
	}
	if d.CriadorNome.Valid {
		r.CriadorNome = &d.CriadorNome.String
	}
	return r
}
