package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"hexctl/internal/history"
	"hexctl/internal/lcu"
	"hexctl/internal/logging"
	"hexctl/internal/settings"
)

// SettingsRequest carries dependencies for the settings backup and restore
// workflows.
type SettingsRequest struct {
	Client  *lcu.Client
	Store   *settings.Store
	History *history.Store
	Logger  *slog.Logger
}

// BackupSettings snapshots every settings document into the backup dir.
func BackupSettings(ctx context.Context, req SettingsRequest) (settings.Snapshot, error) {
	logger := logging.NewComponentLogger(req.Logger, "settings")

	documents := make(map[string]json.RawMessage, len(lcu.SettingsDocs))
	for _, doc := range lcu.SettingsDocs {
		raw, err := req.Client.GetSettings(ctx, doc)
		if err != nil {
			return settings.Snapshot{}, fmt.Errorf("fetch %s: %w", doc, err)
		}
		documents[doc] = raw
	}

	summonerName := ""
	if summoner, err := req.Client.CurrentSummoner(ctx); err == nil {
		summonerName = summoner.DisplayName
	}

	snapshot, err := req.Store.Create(documents, summonerName)
	if err != nil {
		return settings.Snapshot{}, err
	}

	logger.Info("settings backed up",
		logging.String("snapshot", snapshot.ID),
		logging.Int("documents", len(snapshot.Documents)))

	recordRun(ctx, req.History, logger, history.Run{
		Command:       "settings backup",
		Summary:       fmt.Sprintf("snapshot %s with %d documents", snapshot.ShortID(), len(snapshot.Documents)),
		ItemsAffected: len(snapshot.Documents),
	})

	return snapshot, nil
}

// DocumentStatus is the per-document outcome of a restore.
type DocumentStatus struct {
	Document string `json:"document"`
	Status   int    `json:"status"`
	Err      string `json:"error,omitempty"`
}

// OK reports whether the client accepted the document.
func (d DocumentStatus) OK() bool {
	return d.Err == "" && d.Status >= 200 && d.Status < 300
}

// RestoreResult lists what happened to each document in a restore run.
type RestoreResult struct {
	Snapshot  settings.Snapshot `json:"snapshot"`
	Documents []DocumentStatus  `json:"documents"`
}

// Failed counts documents the client rejected.
func (r RestoreResult) Failed() int {
	failed := 0
	for _, doc := range r.Documents {
		if !doc.OK() {
			failed++
		}
	}
	return failed
}

// RestoreSettings applies a snapshot back to the client. Each document is
// patched independently; one rejection does not abort the others.
func RestoreSettings(ctx context.Context, req SettingsRequest, ref string) (RestoreResult, error) {
	logger := logging.NewComponentLogger(req.Logger, "settings")

	snapshot, err := req.Store.Resolve(ref)
	if err != nil {
		return RestoreResult{}, err
	}

	result := RestoreResult{Snapshot: snapshot}
	for _, doc := range snapshot.Documents {
		raw, err := snapshot.Document(doc)
		if err != nil {
			result.Documents = append(result.Documents, DocumentStatus{Document: doc, Err: err.Error()})
			continue
		}

		status, err := req.Client.PatchSettings(ctx, doc, raw)
		entry := DocumentStatus{Document: doc, Status: status}
		if err != nil {
			entry.Err = err.Error()
		}
		result.Documents = append(result.Documents, entry)

		if entry.OK() {
			logger.Info("settings document restored", logging.String("document", doc), logging.Int("status", status))
		} else {
			logger.Warn("settings document rejected",
				logging.String("document", doc),
				logging.Int("status", status),
				logging.String("error", entry.Err))
		}
	}

	applied := len(result.Documents) - result.Failed()
	summary := fmt.Sprintf("restored %d/%d documents from %s", applied, len(result.Documents), snapshot.ShortID())
	recordRun(ctx, req.History, logger, history.Run{
		Command:       "settings restore",
		Summary:       summary,
		ItemsAffected: applied,
	})

	return result, nil
}

// StatusText renders an HTTP status for table output; 0 means no response.
func StatusText(status int) string {
	if status == 0 {
		return "no response"
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
