package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sportapp/internal/domain"
	"sportapp/pkg/e"
)

func newTestClient(url string) *ExternalServices {
	return NewExternalServices(Config{
		BaseURL:         url,
		IncidentsAPIKey: "incidents-key",
		SessionsAPIKey:  "sessions-key",
		Timeout:         2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExternalServices_GetIncidents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/incidents/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "incidents-key" {
			t.Errorf("unexpected api key %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.AdverseIncident{{
			Description: "Fog",
			BoundingBox: domain.BoundingBox{LatitudeFrom: 9.5, LatitudeTo: 10.5, LongitudeFrom: 9.5, LongitudeTo: 10.5},
		}})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetIncidents(context.Background())
	if err != nil {
		t.Fatalf("get incidents: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Fog" || got[0].BoundingBox.LatitudeTo != 10.5 {
		t.Fatalf("unexpected incidents: %+v", got)
	}
}

func TestExternalServices_GetActiveSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/sport-session/active-sport-sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "sessions-key" {
			t.Errorf("unexpected api key %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"user_id":"u1","latitude":10.1,"longitude":10.1}]`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetActiveSnapshots(context.Background())
	if err != nil {
		t.Fatalf("get snapshots: %v", err)
	}
	want := domain.ActiveSnapshot{UserID: "u1", Latitude: 10.1, Longitude: 10.1}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected snapshots: %+v", got)
	}
}

func TestExternalServices_RejectedKey(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetActiveSnapshots(context.Background())
	if !errors.Is(err, e.ErrExternalService) {
		t.Fatalf("want ErrExternalService, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("4xx must not be retried, got %d calls", n)
	}
}

func TestExternalServices_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).GetIncidents(context.Background())
	if err != nil {
		t.Fatalf("get incidents: %v", err)
	}
	if len(got) != 0 || atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("unexpected result: %+v after %d calls", got, calls)
	}
}

func TestExternalServices_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).GetIncidents(context.Background())
	if !errors.Is(err, e.ErrExternalService) {
		t.Fatalf("want ErrExternalService, got %v", err)
	}
}
