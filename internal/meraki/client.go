package meraki

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"

	"hexctl/internal/config"
	"hexctl/internal/logging"
)

// Client fetches champion reference data, serving from the local cache when
// it is fresh enough.
type Client struct {
	http   *resty.Client
	cache  *Cache
	logger *slog.Logger
}

// NewClient builds a CDN client from config, caching under the data dir.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	logger = logging.NewComponentLogger(logger, "meraki")

	http := resty.New()
	http.SetBaseURL(cfg.Meraki.BaseURL)
	http.SetTimeout(30 * time.Second)
	http.SetHeader("Accept", "application/json")

	cachePath := ""
	if cfg.Paths.DataDir != "" {
		cachePath = filepath.Join(cfg.Paths.DataDir, "champions_cache.json")
	}
	maxAge := time.Duration(cfg.Meraki.CacheMaxAgeHours) * time.Hour

	return &Client{
		http:   http,
		cache:  NewCache(cachePath, maxAge),
		logger: logger,
	}
}

// Champions returns the full champion data set.
func (c *Client) Champions(ctx context.Context) (Champions, error) {
	if cached, ok, err := c.cache.Load(); err != nil {
		return nil, err
	} else if ok {
		c.logger.Debug("champion data served from cache", logging.Int("champions", len(cached)))
		return cached, nil
	}

	var champions Champions
	resp, err := c.http.R().SetContext(ctx).SetResult(&champions).Get("/champions.json")
	if err != nil {
		return nil, fmt.Errorf("fetch champions.json: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch champions.json: status %d", resp.StatusCode())
	}
	if len(champions) == 0 {
		return nil, fmt.Errorf("fetch champions.json: empty data set")
	}

	if err := c.cache.Store(champions); err != nil {
		c.logger.Warn("champion cache not updated", logging.Error(err))
	}
	c.logger.Debug("champion data fetched", logging.Int("champions", len(champions)))
	return champions, nil
}
