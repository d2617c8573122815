package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const manifestName = "manifest.json"

// ErrNoSnapshots indicates the backup directory holds no snapshots yet.
var ErrNoSnapshots = errors.New("no settings snapshots found")

// Manifest describes one snapshot.
type Manifest struct {
	ID        string    `json:"id"`
	TakenAt   time.Time `json:"taken_at"`
	Summoner  string    `json:"summoner,omitempty"`
	Documents []string  `json:"documents"`
}

// ShortID returns the leading eight characters of the snapshot id, the form
// summaries and tables use. Hand-edited manifests may carry shorter ids; those
// are returned whole.
func (m Manifest) ShortID() string {
	if len(m.ID) > 8 {
		return m.ID[:8]
	}
	return m.ID
}

// Snapshot is a manifest together with its directory on disk.
type Snapshot struct {
	Manifest
	Dir string `json:"dir"`
}

// Document reads one settings document from the snapshot directory.
func (s Snapshot) Document(name string) (json.RawMessage, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("read snapshot document %s: %w", name, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("snapshot document %s is not valid JSON", name)
	}
	return json.RawMessage(data), nil
}

// Store manages the snapshot directory tree under the backup dir.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Create writes a new snapshot holding the given documents and returns it.
func (s *Store) Create(documents map[string]json.RawMessage, summoner string) (Snapshot, error) {
	if len(documents) == 0 {
		return Snapshot{}, errors.New("snapshot needs at least one document")
	}

	manifest := Manifest{
		ID:       uuid.NewString(),
		TakenAt:  time.Now().UTC(),
		Summoner: strings.TrimSpace(summoner),
	}
	for name := range documents {
		manifest.Documents = append(manifest.Documents, name)
	}
	sort.Strings(manifest.Documents)

	dir := filepath.Join(s.dir, manifest.TakenAt.Format("20060102-150405")+"-"+manifest.ShortID())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Snapshot{}, fmt.Errorf("create snapshot directory: %w", err)
	}

	for name, raw := range documents {
		pretty, err := indentJSON(raw)
		if err != nil {
			return Snapshot{}, fmt.Errorf("document %s: %w", name, err)
		}
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, pretty, 0o644); err != nil {
			return Snapshot{}, fmt.Errorf("write snapshot document %s: %w", name, err)
		}
	}

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), manifestData, 0o644); err != nil {
		return Snapshot{}, fmt.Errorf("write manifest: %w", err)
	}

	return Snapshot{Manifest: manifest, Dir: dir}, nil
}

// List returns all snapshots sorted newest first.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var snapshots []Snapshot
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(s.dir, entry.Name())
		manifest, err := readManifest(dir)
		if err != nil {
			// Foreign directories in the backup dir are skipped.
			continue
		}
		snapshots = append(snapshots, Snapshot{Manifest: manifest, Dir: dir})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].TakenAt.After(snapshots[j].TakenAt)
	})
	return snapshots, nil
}

// Latest returns the most recent snapshot.
func (s *Store) Latest() (Snapshot, error) {
	snapshots, err := s.List()
	if err != nil {
		return Snapshot{}, err
	}
	if len(snapshots) == 0 {
		return Snapshot{}, ErrNoSnapshots
	}
	return snapshots[0], nil
}

// Resolve finds a snapshot by id prefix or directory path. An empty ref means
// the latest snapshot.
func (s *Store) Resolve(ref string) (Snapshot, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return s.Latest()
	}

	if manifest, err := readManifest(ref); err == nil {
		return Snapshot{Manifest: manifest, Dir: ref}, nil
	}

	snapshots, err := s.List()
	if err != nil {
		return Snapshot{}, err
	}
	for _, snapshot := range snapshots {
		if strings.HasPrefix(snapshot.ID, ref) || filepath.Base(snapshot.Dir) == ref {
			return snapshot, nil
		}
	}
	return Snapshot{}, fmt.Errorf("snapshot %q not found", ref)
}

func readManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return Manifest{}, err
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest in %s: %w", dir, err)
	}
	if manifest.ID == "" {
		return Manifest{}, fmt.Errorf("manifest in %s has no id", dir)
	}
	return manifest, nil
}

func indentJSON(raw json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
