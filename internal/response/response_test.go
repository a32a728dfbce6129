package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Desafio criado com sucesso", map[string]int{"id": 1})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected content type: %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "sucesso" || body["mensagem"] != "Desafio criado com sucesso" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	if _, ok := body["dados"]; !ok {
		t.Fatal("dados key must be present")
	}
}

func TestSuccess_NilData(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, "Desafio excluído com sucesso", nil)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dados, ok := body["dados"]; !ok || dados != nil {
		t.Fatalf("expected explicit dados null, got %v", body)
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusUnauthorized, "Token não enviado")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["erro"] != "Token não enviado" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	if dado, ok := body["dado"]; !ok || dado != nil {
		t.Fatalf("expected explicit dado null, got %v", body)
	}
	if _, ok := body["status"]; ok {
		t.Fatal("error envelope must not carry a status field")
	}
}

func TestRouteNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	RouteNotFound(rec)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "erro" || body["mensagem"] != "Rota não encontrada" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}
