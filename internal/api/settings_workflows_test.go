package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"hexctl/internal/api"
	"hexctl/internal/lcu"
	"hexctl/internal/settings"
	"hexctl/internal/testsupport"
)

func settingsFake(t *testing.T) *testsupport.FakeClient {
	t.Helper()
	fake := testsupport.NewFakeClient(t)
	fake.Handle("/lol-game-settings/v1/game-settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"HUD":{"showTimers":true}}`))
		case http.MethodPatch:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	fake.Handle("/lol-game-settings/v1/input-settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"keybinds":{"evtCastSpell1":"[q]"}}`))
		case http.MethodPatch:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	fake.RespondJSON("/lol-summoner/v1/current-summoner", lcu.Summoner{DisplayName: "Best Summoner", ProfileIconID: 29})
	return fake
}

func TestBackupThenRestoreRoundTrip(t *testing.T) {
	fake := settingsFake(t)
	store := settings.NewStore(t.TempDir())

	req := api.SettingsRequest{Client: fake.NewClient(), Store: store}

	snapshot, err := api.BackupSettings(context.Background(), req)
	if err != nil {
		t.Fatalf("BackupSettings: %v", err)
	}
	if len(snapshot.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %v", snapshot.Documents)
	}
	if snapshot.Summoner != "Best Summoner" {
		t.Fatalf("unexpected summoner: %q", snapshot.Summoner)
	}

	result, err := api.RestoreSettings(context.Background(), req, "")
	if err != nil {
		t.Fatalf("RestoreSettings: %v", err)
	}
	if result.Failed() != 0 {
		t.Fatalf("expected clean restore, got %+v", result.Documents)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("expected 2 document statuses, got %d", len(result.Documents))
	}
}

func TestRestoreSendsSnapshotBody(t *testing.T) {
	fake := testsupport.NewFakeClient(t)
	var patched []byte
	fake.Handle("/lol-game-settings/v1/game-settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"HUD":{"showTimers":true}}`))
		case http.MethodPatch:
			patched, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusNoContent)
		}
	})
	fake.Handle("/lol-game-settings/v1/input-settings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	fake.RespondJSON("/lol-summoner/v1/current-summoner", lcu.Summoner{})

	store := settings.NewStore(t.TempDir())
	req := api.SettingsRequest{Client: fake.NewClient(), Store: store}

	if _, err := api.BackupSettings(context.Background(), req); err != nil {
		t.Fatalf("BackupSettings: %v", err)
	}
	if _, err := api.RestoreSettings(context.Background(), req, ""); err != nil {
		t.Fatalf("RestoreSettings: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(patched, &decoded); err != nil {
		t.Fatalf("patched body not valid JSON: %v", err)
	}
	if _, ok := decoded["HUD"]; !ok {
		t.Fatalf("patched body lost content: %s", patched)
	}
}

func TestRestoreContinuesPastRejectedDocument(t *testing.T) {
	fake := testsupport.NewFakeClient(t)
	fake.Handle("/lol-game-settings/v1/game-settings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	})
	fake.Handle("/lol-game-settings/v1/input-settings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	fake.RespondJSON("/lol-summoner/v1/current-summoner", lcu.Summoner{})

	store := settings.NewStore(t.TempDir())
	req := api.SettingsRequest{Client: fake.NewClient(), Store: store}

	if _, err := api.BackupSettings(context.Background(), req); err != nil {
		t.Fatalf("BackupSettings: %v", err)
	}

	result, err := api.RestoreSettings(context.Background(), req, "")
	if err != nil {
		t.Fatalf("RestoreSettings: %v", err)
	}
	if result.Failed() != 1 {
		t.Fatalf("expected exactly one rejected document, got %+v", result.Documents)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("restore aborted early: %+v", result.Documents)
	}
}

func TestRestoreSnapshotWithShortManifestID(t *testing.T) {
	fake := settingsFake(t)

	// A snapshot directory written by hand, not by Create: its manifest id is
	// shorter than the eight characters the run summary truncates to.
	dir := filepath.Join(t.TempDir(), "manual")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir snapshot dir: %v", err)
	}
	manifest := `{"id":"abc","taken_at":"2026-08-29T10:00:00Z","documents":["game-settings"]}`
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "game-settings.json"), []byte(`{"HUD":{}}`), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	req := api.SettingsRequest{Client: fake.NewClient(), Store: settings.NewStore(t.TempDir())}

	result, err := api.RestoreSettings(context.Background(), req, dir)
	if err != nil {
		t.Fatalf("RestoreSettings: %v", err)
	}
	if result.Snapshot.ID != "abc" {
		t.Fatalf("snapshot id = %q, want %q", result.Snapshot.ID, "abc")
	}
	if result.Failed() != 0 {
		t.Fatalf("expected clean restore, got %+v", result.Documents)
	}
}

func TestRestoreUnknownRef(t *testing.T) {
	fake := settingsFake(t)
	store := settings.NewStore(t.TempDir())
	req := api.SettingsRequest{Client: fake.NewClient(), Store: store}

	if _, err := api.RestoreSettings(context.Background(), req, "deadbeef"); err == nil {
		t.Fatal("expected error for unknown snapshot ref")
	}
}
