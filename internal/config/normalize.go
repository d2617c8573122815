package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeClient(); err != nil {
		return err
	}
	c.normalizeLoot()
	c.normalizeMeraki()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		c.Paths.BackupDir = defaultBackupDir
	}
	if c.Paths.BackupDir, err = expandPath(c.Paths.BackupDir); err != nil {
		return fmt.Errorf("paths.backup_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeClient() error {
	c.Client.Lockfile = strings.TrimSpace(c.Client.Lockfile)
	if c.Client.Lockfile == "" {
		if value, ok := os.LookupEnv("HEXCTL_LOCKFILE"); ok {
			c.Client.Lockfile = strings.TrimSpace(value)
		}
	}
	if c.Client.Lockfile != "" {
		expanded, err := expandPath(c.Client.Lockfile)
		if err != nil {
			return fmt.Errorf("client.lockfile: %w", err)
		}
		c.Client.Lockfile = expanded
	}
	if len(c.Client.InstallDirs) == 0 {
		c.Client.InstallDirs = append([]string(nil), defaultInstallDirs...)
	}
	dirs := make([]string, 0, len(c.Client.InstallDirs))
	for _, dir := range c.Client.InstallDirs {
		trimmed := strings.TrimSpace(dir)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("client.install_dirs: %w", err)
		}
		dirs = append(dirs, expanded)
	}
	c.Client.InstallDirs = dirs
	if c.Client.RequestTimeout <= 0 {
		c.Client.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

func (c *Config) normalizeLoot() {
	if c.Loot.KeepShards < 0 {
		c.Loot.KeepShards = 0
	}
}

func (c *Config) normalizeMeraki() {
	c.Meraki.BaseURL = strings.TrimRight(strings.TrimSpace(c.Meraki.BaseURL), "/")
	if c.Meraki.BaseURL == "" {
		c.Meraki.BaseURL = defaultMerakiBaseURL
	}
	if c.Meraki.CacheMaxAgeHours <= 0 {
		c.Meraki.CacheMaxAgeHours = defaultCacheMaxAgeHours
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
