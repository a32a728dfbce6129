// Package response writes the two JSON envelope shapes the API exposes.
//
// Success responses use {"status","mensagem","dados"} while errors use
// {"erro","dado"}. The asymmetric field naming (dados vs dado) is inherited
// from the first version of this API and is kept for client compatibility.
package response

import (
	"encoding/json"
	"net/http"
)

type successEnvelope struct {
	Status   string      `json:"status"`
	Mensagem string      `json:"mensagem"`
	Dados    interface{} `json:"dados"`
}

type errorEnvelope struct {
	Erro string      `json:"erro"`
	Dado interface{} `json:"dado"`
}

type routeErrorEnvelope struct {
	Status   string      `json:"status"`
	Mensagem string      `json:"mensagem"`
	Dados    interface{} `json:"dados"`
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, code int, mensagem string, dados interface{}) {
	writeJSON(w, code, successEnvelope{
		Status:   "sucesso",
		Mensagem: mensagem,
		Dados:    dados,
	})
}

func Error(w http.ResponseWriter, code int, mensagem string) {
	writeJSON(w, code, errorEnvelope{Erro: mensagem})
}

// RouteNotFound uses the three-field envelope with status "erro"; the
// original router answered unmatched routes this way and clients match on it.
func RouteNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, routeErrorEnvelope{
		Status:   "erro",
		Mensagem: "Rota não encontrada",
	})
}
