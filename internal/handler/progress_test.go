package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/service"
)

func newProgressHandler(checkIns *fakeCheckInRepo) *ProgressHandler {
	progressService := service.NewProgressService(checkIns, &fakeProfileRepo{}, 731)
	return NewProgressHandler(progressService, 30)
}

func TestProgressOverviewHonorsDaysParam(t *testing.T) {
	h := newProgressHandler(&fakeCheckInRepo{})

	for _, tt := range []struct {
		name   string
		target string
		want   int
	}{
		{"default window", "/api/progress", 30},
		{"weekly window", "/api/progress?days=7", 7},
		{"quarterly window", "/api/progress?days=90", 90},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Overview(w, authedRequest(http.MethodGet, tt.target))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			var resp struct {
				Summary struct {
					WindowDays int `json:"window_days"`
				} `json:"summary"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Summary.WindowDays != tt.want {
				t.Errorf("summary.window_days = %d, want %d", resp.Summary.WindowDays, tt.want)
			}
		})
	}
}

func TestProgressOverviewRejectsInvalidDays(t *testing.T) {
	h := newProgressHandler(&fakeCheckInRepo{})

	for _, days := range []string{"0", "366", "-7", "abc"} {
		w := httptest.NewRecorder()
		h.Overview(w, authedRequest(http.MethodGet, "/api/progress?days="+days))

		if w.Code != http.StatusBadRequest {
			t.Errorf("days=%s: status = %d, want %d", days, w.Code, http.StatusBadRequest)
		}
	}
}

func TestProgressDates(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(model.DateLayout, s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}
	h := newProgressHandler(&fakeCheckInRepo{
		dates: []time.Time{day("2026-08-31"), day("2026-08-30"), day("2026-08-28")},
	})

	w := httptest.NewRecorder()
	h.Dates(w, authedRequest(http.MethodGet, "/api/progress/dates"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Dates []string `json:"dates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"2026-08-31", "2026-08-30", "2026-08-28"}
	if len(resp.Dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(resp.Dates), len(want))
	}
	for i := range want {
		if resp.Dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, resp.Dates[i], want[i])
		}
	}
}

func TestProgressDatesEmptyHistory(t *testing.T) {
	h := newProgressHandler(&fakeCheckInRepo{})

	w := httptest.NewRecorder()
	h.Dates(w, authedRequest(http.MethodGet, "/api/progress/dates"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != "{\"dates\":[]}\n" {
		t.Errorf("body = %q, want empty dates list", got)
	}
}
