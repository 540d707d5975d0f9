package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/product"
)

func doJSON(t *testing.T, env *testEnv, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var got struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid error body: %v (%s)", err, w.Body.String())
	}
	return got.Error
}

func TestCreateProduct_RoundTrip(t *testing.T) {
	env := newTestEnv()

	w := doJSON(t, env, http.MethodPost, "/products", `{"name":"Clavier","about":"mécanique","price":10}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var created product.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created.ID == 0 || created.Name != "Clavier" {
		t.Fatalf("unexpected product: %+v", created)
	}
	if !created.Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("price=%s, expected 10", created.Price)
	}
	if !created.AverageScore.IsZero() || len(created.ReviewIDs) != 0 {
		t.Fatalf("new product must have zero aggregate: %+v", created)
	}

	w = doJSON(t, env, http.MethodGet, "/products/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var detail struct {
		product.Product
		Reviews   []json.RawMessage `json:"reviews"`
		Reviewers []int64           `json:"reviewers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if detail.ID != 1 || len(detail.Reviews) != 0 || len(detail.Reviewers) != 0 {
		t.Fatalf("unexpected detail: %s", w.Body.String())
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	env := newTestEnv()

	for _, body := range []string{
		`{"about":"sans nom","price":10}`,
		`{"name":"x","price":10}`,
		`{"name":"x","about":"y"}`,
		`{"name":"x","about":"y","price":0}`,
		`{"name":"x","about":"y","price":-3}`,
	} {
		w := doJSON(t, env, http.MethodPost, "/products", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s status=%d, expected 400", body, w.Code)
		}
		if msg := errorMessage(t, w); msg != "Données invalides" {
			t.Fatalf("body=%s error=%q", body, msg)
		}
	}
}

func TestListProducts_FiltersAreANDed(t *testing.T) {
	env := newTestEnv()
	seed := []string{
		`{"name":"Clavier gamer","about":"mécanique rétroéclairé","price":80}`,
		`{"name":"Clavier bureau","about":"membrane silencieuse","price":25}`,
		`{"name":"Souris gamer","about":"optique","price":40}`,
	}
	for _, b := range seed {
		if w := doJSON(t, env, http.MethodPost, "/products", b); w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %s", w.Body.String())
		}
	}

	w := doJSON(t, env, http.MethodGet, "/products?name=clavier&price=50", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []product.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Clavier bureau" {
		t.Fatalf("unexpected result: %s", w.Body.String())
	}

	w = doJSON(t, env, http.MethodGet, "/products?price=pasunprix", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad price filter: status=%d", w.Code)
	}
}

func TestPatchProduct(t *testing.T) {
	env := newTestEnv()
	doJSON(t, env, http.MethodPost, "/products", `{"name":"Avant","about":"x","price":10}`)

	w := doJSON(t, env, http.MethodPatch, "/products/1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty patch: status=%d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Aucune donnée à mettre à jour" {
		t.Fatalf("error=%q", msg)
	}

	w = doJSON(t, env, http.MethodPatch, "/products/1", `{"name":"Après","price":12.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got product.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Name != "Après" || !got.Price.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected product: %+v", got)
	}

	w = doJSON(t, env, http.MethodPatch, "/products/99", `{"name":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id: status=%d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Produit non trouvé" {
		t.Fatalf("error=%q", msg)
	}
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv()
	doJSON(t, env, http.MethodPost, "/products", `{"name":"Éphémère","about":"x","price":5}`)

	w := doJSON(t, env, http.MethodDelete, "/products/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("delete must not return a body, got %q", w.Body.String())
	}

	w = doJSON(t, env, http.MethodGet, "/products/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("after delete: status=%d", w.Code)
	}

	w = doJSON(t, env, http.MethodDelete, "/products/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("double delete: status=%d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Produit non trouvé" {
		t.Fatalf("error=%q", msg)
	}
}
