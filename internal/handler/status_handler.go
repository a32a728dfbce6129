package handler

import (
	"net/http"

	"github.com/DevKaiky/appfit-API/internal/response"
)

// Index handles GET / with a small API descriptor.
func Index(w http.ResponseWriter, r *http.Request, _ []string) {
	response.Success(w, http.StatusOK, "API AppFit Desafios", map[string]interface{}{
		"rotas": []string{
			"POST /login",
			"GET /desafios",
			"GET /desafios/{id}",
			"POST /desafios",
			"PUT /desafios/{id}",
			"DELETE /desafios/{id}",
		},
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request, _ []string) {
	response.Success(w, http.StatusOK, "ok", nil)
}
