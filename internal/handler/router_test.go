package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turibot/internal/service/session"
)

func TestHealthz(t *testing.T) {
	router := NewRouter(session.NewStore(), time.Now())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestStatusReportsSessions(t *testing.T) {
	sessions := session.NewStore()
	sessions.Select(1, "destinos")
	sessions.Select(2, "gastronomia")
	router := NewRouter(sessions, time.Now())

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		Sessions int `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if payload.Sessions != 2 {
		t.Fatalf("expected 2 sessions, got %d", payload.Sessions)
	}
}
