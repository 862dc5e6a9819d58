package crm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestHTTPSourceLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cases/00001234" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"case_number": "00001234",
			"subject": "Payroll discrepancy",
			"description": "paycheck missing wages",
			"priority": "High",
			"status": "Open",
			"origin": "Email",
			"type": "Payroll Issue",
			"created_date": "2024-08-20"
		}`))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, 5*time.Second, zap.NewNop())

	record, err := source.Lookup(context.Background(), "00001234")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if record.Subject != "Payroll discrepancy" {
		t.Fatalf("unexpected subject: %s", record.Subject)
	}
	if record.Type != "Payroll Issue" {
		t.Fatalf("unexpected type: %s", record.Type)
	}
}

func TestHTTPSourceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, 5*time.Second, zap.NewNop())

	if _, err := source.Lookup(context.Background(), "missing"); !errors.Is(err, ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestHTTPSourceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, 5*time.Second, zap.NewNop())

	if _, err := source.Lookup(context.Background(), "00001234"); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}
