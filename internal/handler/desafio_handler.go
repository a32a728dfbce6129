package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/DevKaiky/appfit-API/internal/logger"
	"github.com/DevKaiky/appfit-API/internal/middleware"
	"github.com/DevKaiky/appfit-API/internal/models"
	"github.com/DevKaiky/appfit-API/internal/response"
	"github.com/DevKaiky/appfit-API/internal/service"
	"github.com/DevKaiky/appfit-API/internal/validation"
)

type DesafioHandler struct {
	desafioService service.DesafioService
	log            *logger.Logger
}

func NewDesafioHandler(desafioService service.DesafioService, log *logger.Logger) *DesafioHandler {
	return &DesafioHandler{
		desafioService: desafioService,
		log:            log,
	}
}

// Criar handles POST /desafios. The creator comes from the authenticated
// context, never from the request body.
func (h *DesafioHandler) Criar(w http.ResponseWriter, r *http.Request, _ []string) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "Token não enviado")
		return
	}

	var in models.DesafioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "JSON inválido na requisição")
		return
	}

	desafio, err := h.desafioService.Criar(r.Context(), &in, user.UserID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Desafio criado com sucesso", desafio.ToResource())
}

// ListarTodos handles GET /desafios.
func (h *DesafioHandler) ListarTodos(w http.ResponseWriter, r *http.Request, _ []string) {
	desafios, err := h.desafioService.ListarTodos(r.Context())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("failed to list desafios")
		response.Error(w, http.StatusInternalServerError, "Não foi possível listar os desafios")
		return
	}

	resources := make([]*models.DesafioResource, 0, len(desafios))
	for _, desafio := range desafios {
		resources = append(resources, desafio.ToResource())
	}

	response.Success(w, http.StatusOK, "Desafios recuperados com sucesso", resources)
}

// BuscarPorID handles GET /desafios/{id}.
func (h *DesafioHandler) BuscarPorID(w http.ResponseWriter, r *http.Request, params []string) {
	id := h.parseID(params)

	desafio, err := h.desafioService.BuscarPorID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Desafio encontrado com sucesso", desafio.ToResource())
}

// Atualizar handles PUT /desafios/{id}.
func (h *DesafioHandler) Atualizar(w http.ResponseWriter, r *http.Request, params []string) {
	id := h.parseID(params)

	var in models.DesafioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "JSON inválido na requisição")
		return
	}

	desafio, err := h.desafioService.Atualizar(r.Context(), id, &in)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Desafio atualizado com sucesso", desafio.ToResource())
}

// Excluir handles DELETE /desafios/{id}.
func (h *DesafioHandler) Excluir(w http.ResponseWriter, r *http.Request, params []string) {
	id := h.parseID(params)

	if err := h.desafioService.Excluir(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Desafio excluído com sucesso", nil)
}

// parseID reads the first positional parameter. The router only matches
// digit sequences, so a parse failure maps to id 0 and the service rejects
// it as invalid.
func (h *DesafioHandler) parseID(params []string) uint64 {
	if len(params) == 0 {
		return 0
	}
	id, err := strconv.ParseUint(params[0], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// respondError maps service errors onto the error taxonomy: validation →
// 400, not found → 404, everything else → logged 500 with a generic body.
func (h *DesafioHandler) respondError(w http.ResponseWriter, err error) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.Error(w, http.StatusBadRequest, fieldErr.Message)
	case errors.Is(err, service.ErrIDInvalido):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDesafioNaoEncontrado):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		h.log.WithField("error", err.Error()).Error("desafio handler error")
		response.Error(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}
