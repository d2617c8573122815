package meraki_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hexctl/internal/meraki"
)

func sampleChampions() meraki.Champions {
	return meraki.Champions{
		"Aatrox": {
			ID:   266,
			Key:  "Aatrox",
			Name: "Aatrox",
			Skins: []meraki.Skin{
				{Name: "Original Aatrox", ID: 266000, IsBase: true},
				{Name: "Justicar Aatrox", ID: 266001, Cost: 975},
			},
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "champions.json")
	cache := meraki.NewCache(path, time.Hour)

	if err := cache.Store(sampleChampions()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	champions, ok, err := cache.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected fresh cache hit")
	}
	if champions["Aatrox"].ID != 266 {
		t.Fatalf("unexpected cache contents: %+v", champions)
	}
}

func TestCacheExpires(t *testing.T) {
	path := filepath.Join(t.TempDir(), "champions.json")
	cache := meraki.NewCache(path, time.Nanosecond)

	if err := cache.Store(sampleChampions()); err != nil {
		t.Fatalf("Store: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, ok, err := cache.Load(); err != nil || ok {
		t.Fatalf("expected stale cache miss, got ok=%v err=%v", ok, err)
	}
}

func TestCacheMissingFile(t *testing.T) {
	cache := meraki.NewCache(filepath.Join(t.TempDir(), "absent.json"), time.Hour)
	if _, ok, err := cache.Load(); err != nil || ok {
		t.Fatalf("expected miss for absent file, got ok=%v err=%v", ok, err)
	}
}

func TestCacheCorruptFileTreatedAsMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "champions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt cache: %v", err)
	}

	cache := meraki.NewCache(path, time.Hour)
	if _, ok, err := cache.Load(); err != nil || ok {
		t.Fatalf("expected miss for corrupt file, got ok=%v err=%v", ok, err)
	}
}

func TestCacheNoPathIsNoop(t *testing.T) {
	cache := meraki.NewCache("", time.Hour)
	if err := cache.Store(sampleChampions()); err != nil {
		t.Fatalf("Store on no-op cache: %v", err)
	}
	if _, ok, err := cache.Load(); err != nil || ok {
		t.Fatalf("expected no-op cache miss, got ok=%v err=%v", ok, err)
	}
}
