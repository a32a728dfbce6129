package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DevKaiky/appfit-API/internal/logger"
	"github.com/DevKaiky/appfit-API/internal/response"
	"github.com/DevKaiky/appfit-API/internal/service"
	"github.com/DevKaiky/appfit-API/internal/validation"
)

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type AuthHandler struct {
	authService service.AuthService
	log         *logger.Logger
}

func NewAuthHandler(authService service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ []string) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "JSON inválido na requisição")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Senha)
	if err != nil {
		var fieldErr *validation.FieldError
		switch {
		case errors.As(err, &fieldErr):
			response.Error(w, http.StatusBadRequest, fieldErr.Message)
		case errors.Is(err, service.ErrCredenciaisInvalidas):
			response.Error(w, http.StatusUnauthorized, err.Error())
		default:
			h.log.WithField("error", err.Error()).Error("login failed")
			response.Error(w, http.StatusInternalServerError, "Erro interno do servidor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login realizado com sucesso", result)
}
