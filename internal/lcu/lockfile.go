package lcu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hexctl/internal/config"
)

// ErrClientNotRunning indicates no lockfile was found at any candidate path.
var ErrClientNotRunning = errors.New("game client is not running (no lockfile found)")

// Credentials holds the connection details parsed from the client lockfile.
type Credentials struct {
	Name     string
	PID      int
	Port     int
	Password string
	Protocol string
}

// Discover locates and parses the client lockfile using the configured
// override or the well-known install directories.
func Discover(cfg *config.Config) (Credentials, error) {
	for _, path := range candidatePaths(cfg) {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Credentials{}, fmt.Errorf("read lockfile %s: %w", path, err)
		}
		creds, err := ParseLockfile(string(data))
		if err != nil {
			return Credentials{}, fmt.Errorf("lockfile %s: %w", path, err)
		}
		return creds, nil
	}
	return Credentials{}, ErrClientNotRunning
}

func candidatePaths(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}
	if cfg.Client.Lockfile != "" {
		return []string{cfg.Client.Lockfile}
	}
	paths := make([]string, 0, len(cfg.Client.InstallDirs))
	for _, dir := range cfg.Client.InstallDirs {
		paths = append(paths, filepath.Join(dir, "lockfile"))
	}
	return paths
}

// ParseLockfile decodes the client's name:pid:port:password:protocol lockfile
// contents.
func ParseLockfile(contents string) (Credentials, error) {
	trimmed := strings.TrimSpace(contents)
	if trimmed == "" {
		return Credentials{}, errors.New("lockfile is empty")
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) != 5 {
		return Credentials{}, fmt.Errorf("lockfile has %d fields, expected 5", len(parts))
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return Credentials{}, fmt.Errorf("lockfile pid %q: %w", parts[1], err)
	}
	port, err := strconv.Atoi(parts[2])
	if err != nil {
		return Credentials{}, fmt.Errorf("lockfile port %q: %w", parts[2], err)
	}
	if port <= 0 || port > 65535 {
		return Credentials{}, fmt.Errorf("lockfile port %d out of range", port)
	}
	if parts[3] == "" {
		return Credentials{}, errors.New("lockfile password is empty")
	}

	return Credentials{
		Name:     parts[0],
		PID:      pid,
		Port:     port,
		Password: parts[3],
		Protocol: parts[4],
	}, nil
}
