package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/DevKaiky/appfit-API/internal/models"
)

// NiveisDificuldade enumerates the accepted difficulty levels. Matching is
// case-sensitive.
var NiveisDificuldade = []string{"Iniciante", "Intermediario", "Avancado", "Extremo"}

// camposObrigatorios lists the fields a creation must supply. Recompensa is
// optional.
var camposObrigatorios = []struct {
	nome  string
	valor func(*models.DesafioInput) *string
}{
	{"titulo", func(in *models.DesafioInput) *string { return in.Titulo }},
	{"descricao", func(in *models.DesafioInput) *string { return in.Descricao }},
	{"data_inicio", func(in *models.DesafioInput) *string { return in.DataInicio }},
	{"data_fim", func(in *models.DesafioInput) *string { return in.DataFim }},
	{"nivel_dificuldade", func(in *models.DesafioInput) *string { return in.NivelDificuldade }},
}

// timeNow is swapped out in tests that need a fixed clock.
var timeNow = time.Now

// ValidateDesafio checks a challenge payload. With requireAll set (creation)
// every mandatory field must be present and non-blank; otherwise (partial
// update) only the supplied fields are checked. The first failure wins.
func ValidateDesafio(in *models.DesafioInput, requireAll bool) error {
	if requireAll {
		for _, campo := range camposObrigatorios {
			v := campo.valor(in)
			if v == nil || strings.TrimSpace(*v) == "" {
				return newFieldError(campo.nome, fmt.Sprintf("O campo '%s' é obrigatório", campo.nome))
			}
		}
	}

	if in.Titulo != nil {
		if len(*in.Titulo) < 5 {
			return newFieldError("titulo", "O título deve ter no mínimo 5 caracteres")
		}
		if len(*in.Titulo) > 150 {
			return newFieldError("titulo", "O título deve ter no máximo 150 caracteres")
		}
	}

	if in.Descricao != nil && len(*in.Descricao) < 10 {
		return newFieldError("descricao", "A descrição deve ter no mínimo 10 caracteres")
	}

	if err := validarDatas(in.DataInicio, in.DataFim); err != nil {
		return err
	}

	if in.NivelDificuldade != nil {
		if err := validarNivelDificuldade(*in.NivelDificuldade); err != nil {
			return err
		}
	}

	return nil
}

// ParseDate parses a calendar date in the wire format, normalized to
// midnight UTC so comparisons ignore time of day and timezone drift.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func validarDatas(dataInicio, dataFim *string) error {
	var inicio, fim time.Time

	if dataInicio != nil {
		var err error
		inicio, err = ParseDate(*dataInicio)
		if err != nil {
			return newFieldError("data_inicio", "Formato de data inválido. Use o formato YYYY-MM-DD")
		}
	}
	if dataFim != nil {
		var err error
		fim, err = ParseDate(*dataFim)
		if err != nil {
			return newFieldError("data_fim", "Formato de data inválido. Use o formato YYYY-MM-DD")
		}
	}

	// The pair rules only apply when both ends are supplied; a partial
	// update touching a single date cannot be cross-checked without the
	// stored counterpart.
	if dataInicio == nil || dataFim == nil {
		return nil
	}

	if !fim.After(inicio) {
		return newFieldError("data_fim", "A data de término deve ser posterior à data de início")
	}

	agora := timeNow()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.UTC)
	if inicio.Before(hoje) {
		return newFieldError("data_inicio", "A data de início não pode ser anterior à data atual")
	}

	if fim.Sub(inicio) < 24*time.Hour {
		return newFieldError("data_fim", "O desafio deve ter duração mínima de 1 dia")
	}

	return nil
}

func validarNivelDificuldade(nivel string) error {
	for _, valido := range NiveisDificuldade {
		if nivel == valido {
			return nil
		}
	}
	return newFieldError("nivel_dificuldade",
		"Nível de dificuldade inválido. Use: "+strings.Join(NiveisDificuldade, ", "))
}
