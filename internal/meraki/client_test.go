package meraki_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hexctl/internal/meraki"
	"hexctl/internal/testsupport"
)

func TestChampionsFetchesAndCaches(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/champions.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		requests++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sampleChampions())
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t)
	cfg.Meraki.BaseURL = server.URL

	client := meraki.NewClient(cfg, nil)

	champions, err := client.Champions(context.Background())
	if err != nil {
		t.Fatalf("Champions: %v", err)
	}
	if champions["Aatrox"].Name != "Aatrox" {
		t.Fatalf("unexpected data: %+v", champions)
	}

	// Second call with a fresh client should hit the disk cache.
	client2 := meraki.NewClient(cfg, nil)
	if _, err := client2.Champions(context.Background()); err != nil {
		t.Fatalf("Champions from cache: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected 1 CDN request, got %d", requests)
	}
}

func TestChampionsRejectsEmptyDataSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t)
	cfg.Meraki.BaseURL = server.URL

	if _, err := meraki.NewClient(cfg, nil).Champions(context.Background()); err == nil {
		t.Fatal("expected error for empty data set")
	}
}
