package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anchorhq/anchor/internal/service"
)

const strategyDoc = `---
title: Box Breathing
category: grounding
summary: A four-count breathing pattern.
tags:
  - breathing
---

Breathe in for four, hold for four, out for four, hold for four.
`

func newLibraryFixture(t *testing.T) *LibraryHandler {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "strategies"), 0o755); err != nil {
		t.Fatal(err)
	}
	err := os.WriteFile(filepath.Join(dir, "strategies", "box-breathing.md"), []byte(strategyDoc), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return NewLibraryHandler(service.NewLibraryService(dir))
}

func TestLibraryList(t *testing.T) {
	h := newLibraryFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/library/strategies", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Strategies []struct {
			Slug     string `json:"slug"`
			Title    string `json:"title"`
			Category string `json:"category"`
		} `json:"strategies"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Strategies) != 1 {
		t.Fatalf("got %d strategies, want 1", len(body.Strategies))
	}
	if body.Strategies[0].Slug != "box-breathing" || body.Strategies[0].Category != "grounding" {
		t.Errorf("unexpected strategy %+v", body.Strategies[0])
	}
}

func TestLibraryListFiltersByCategory(t *testing.T) {
	h := newLibraryFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/library/strategies?category=craving", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Strategies []json.RawMessage `json:"strategies"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Strategies) != 0 {
		t.Errorf("got %d strategies for unmatched category, want 0", len(body.Strategies))
	}
}

func TestLibraryGet(t *testing.T) {
	h := newLibraryFixture(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /library/strategies/{slug}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/library/strategies/box-breathing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Title       string `json:"title"`
		HTMLContent string `json:"html_content"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Title != "Box Breathing" {
		t.Errorf("title = %q, want Box Breathing", body.Title)
	}
	if !strings.Contains(body.HTMLContent, "<p>") {
		t.Errorf("html_content not rendered: %q", body.HTMLContent)
	}
}

func TestLibraryGetUnknownSlug(t *testing.T) {
	h := newLibraryFixture(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /library/strategies/{slug}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/library/strategies/nope", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
