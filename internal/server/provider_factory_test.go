package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"match-notify-service/internal/config"
	"match-notify-service/internal/metrics"
)

func TestBuildFixtureProvider(t *testing.T) {
	factory := newProviderFactory(nil, metrics.NewRecorder())
	provider := factory.build(config.Config{Provider: "fixture"}, nil)

	got, err := provider.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("FetchMatches() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 fixture matches, got %d", len(got))
	}
}

func TestBuildUnknownProviderFallsBackToFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	provider := factory.build(config.Config{Provider: "mystery"}, nil)

	got, err := provider.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("FetchMatches() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected fixture fallback, got %d matches", len(got))
	}
}

func TestBuildFifaProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matches/today" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	provider := factory.build(config.Config{
		Provider: "fifa",
		Feed:     config.FeedConfig{BaseURL: srv.URL},
	}, nil)

	if _, err := provider.FetchMatches(context.Background()); err != nil {
		t.Fatalf("FetchMatches() error = %v", err)
	}
	if calls := rec.ProviderCalls("fifa"); calls != 1 {
		t.Errorf("instrumentation missing, calls = %d", calls)
	}
}
