package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"hexctl/internal/config"
	"hexctl/internal/history"
	"hexctl/internal/lcu"
	"hexctl/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		verbose := c.verboseFlag != nil && *c.verboseFlag
		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr(), verbose)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withClient discovers the running game client and hands an authenticated
// client (plus its credentials) to fn.
func (c *commandContext) withClient(cmd *cobra.Command, fn func(*lcu.Client, lcu.Credentials) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	creds, err := lcu.Discover(cfg)
	if err != nil {
		if errors.Is(err, lcu.ErrClientNotRunning) {
			return fmt.Errorf("%w; start the client or set client.lockfile in the config", err)
		}
		return err
	}

	client := lcu.New(creds, lcu.Options{
		Timeout: time.Duration(cfg.Client.RequestTimeout) * time.Second,
		Logger:  c.ensureLogger(cmd),
	})
	return fn(client, creds)
}

// openHistory opens the run-history store. History is bookkeeping: when the
// database cannot be opened the command proceeds without it.
func (c *commandContext) openHistory(cmd *cobra.Command) *history.Store {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil
	}
	store, err := history.Open(cfg)
	if err != nil {
		c.ensureLogger(cmd).Warn("run history unavailable", logging.Error(err))
		return nil
	}
	return store
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
