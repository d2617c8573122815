package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateClient(); err != nil {
		return err
	}
	if err := c.validateMeraki(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateClient() error {
	if c.Client.Lockfile == "" && len(c.Client.InstallDirs) == 0 {
		return errors.New("client.lockfile or client.install_dirs must be set so the running client can be found")
	}
	if c.Client.RequestTimeout > 300 {
		return errors.New("client.request_timeout must be at most 300 seconds")
	}
	return nil
}

func (c *Config) validateMeraki() error {
	parsed, err := url.Parse(c.Meraki.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("meraki.base_url %q is not a valid URL", c.Meraki.BaseURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	return nil
}
