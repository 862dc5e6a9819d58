package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jenven8/intelligent-case-routing/internal/crm"
)

func getJSON(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	r := newTestRouter(crm.NewMockSource())
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, body
}

func TestRootEndpoint(t *testing.T) {
	w, body := getJSON(t, "/")

	if w.Code != 200 {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if body["status"] != "operational" {
		t.Fatalf("unexpected status field: %v", body["status"])
	}
	if body["version"] != Version {
		t.Fatalf("unexpected version: %v", body["version"])
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	w, body := getJSON(t, "/api/categories")

	if w.Code != 200 {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	categories, ok := body["categories"].([]interface{})
	if !ok || len(categories) != 6 {
		t.Fatalf("unexpected categories: %v", body["categories"])
	}
	if categories[0] != "payroll" {
		t.Fatalf("unexpected first category: %v", categories[0])
	}

	mapping, ok := body["queue_mapping"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing queue_mapping")
	}
	if mapping["fraud"] != "Fraud Investigation" {
		t.Fatalf("unexpected fraud queue: %v", mapping["fraud"])
	}
}

func TestModelInfoEndpoint(t *testing.T) {
	w, body := getJSON(t, "/api/model-info")

	if w.Code != 200 {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if body["model_type"] != "Rule-based Classifier" {
		t.Fatalf("unexpected model type: %v", body["model_type"])
	}
	queues, ok := body["queues"].([]interface{})
	if !ok || len(queues) != 6 {
		t.Fatalf("unexpected queues: %v", body["queues"])
	}
}
