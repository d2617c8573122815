package lcu

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"hexctl/internal/logging"
)

// StatusError reports a non-2xx response from the local client API.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

// Options adjusts client construction.
type Options struct {
	// BaseURL overrides the https://127.0.0.1:<port> endpoint. Tests point
	// this at a local fake server.
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client issues authenticated requests against the local game-client API.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// New builds a client for the given lockfile credentials.
func New(creds Credentials, opts Options) *Client {
	logger := logging.NewComponentLogger(opts.Logger, "lcu")

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://127.0.0.1:%d", creds.Port)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	http := resty.New()
	http.SetBaseURL(baseURL)
	http.SetBasicAuth("riot", creds.Password)
	http.SetTimeout(timeout)
	http.SetHeader("Accept", "application/json")
	// The client serves a self-signed certificate on loopback.
	http.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})

	http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("request complete",
			logging.String("method", resp.Request.Method),
			logging.String("path", resp.Request.URL),
			logging.Int("status", resp.StatusCode()),
			logging.Duration("elapsed", resp.Time()))
		return nil
	})

	return &Client{http: http, logger: logger}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return &StatusError{Method: "GET", Path: path, Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}

// PlayerLoot returns every item in the loot inventory.
func (c *Client) PlayerLoot(ctx context.Context) ([]LootItem, error) {
	var items []LootItem
	if err := c.get(ctx, "/lol-loot/v1/player-loot", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Disenchant crafts the given disenchant recipe against a loot item, repeat
// times in a single call.
func (c *Client) Disenchant(ctx context.Context, recipe, lootID string, repeat int) error {
	if repeat < 1 {
		repeat = 1
	}
	path := fmt.Sprintf("/lol-loot/v1/recipes/%s/craft", url.PathEscape(recipe))
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("repeat", strconv.Itoa(repeat)).
		SetHeader("Content-Type", "application/json").
		SetBody([]string{lootID}).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if resp.IsError() {
		return &StatusError{Method: "POST", Path: path, Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}

// Inventory returns owned items of the given kind, e.g. CHAMPION_SKIN or ICON.
func (c *Client) Inventory(ctx context.Context, kind string) ([]InventoryItem, error) {
	var items []InventoryItem
	path := "/lol-inventory/v2/inventory/" + url.PathEscape(kind)
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CurrentSummoner returns the logged-in account.
func (c *Client) CurrentSummoner(ctx context.Context) (Summoner, error) {
	var summoner Summoner
	if err := c.get(ctx, "/lol-summoner/v1/current-summoner", &summoner); err != nil {
		return Summoner{}, err
	}
	return summoner, nil
}

// GetSettings fetches one settings document as raw JSON.
func (c *Client) GetSettings(ctx context.Context, doc string) (json.RawMessage, error) {
	path := "/lol-game-settings/v1/" + url.PathEscape(doc)
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, &StatusError{Method: "GET", Path: path, Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("GET %s: response is not valid JSON", path)
	}
	return json.RawMessage(body), nil
}

// PatchSettings applies one settings document and returns the HTTP status.
func (c *Client) PatchSettings(ctx context.Context, doc string, body json.RawMessage) (int, error) {
	path := "/lol-game-settings/v1/" + url.PathEscape(doc)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(body)).
		Patch(path)
	if err != nil {
		return 0, fmt.Errorf("PATCH %s: %w", path, err)
	}
	return resp.StatusCode(), nil
}

// SetIcon switches the account's profile icon.
func (c *Client) SetIcon(ctx context.Context, iconID int) error {
	path := "/lol-summoner/v1/current-summoner/icon"
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int{"profileIconId": iconID}).
		Put(path)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", path, err)
	}
	if resp.IsError() {
		return &StatusError{Method: "PUT", Path: path, Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}
