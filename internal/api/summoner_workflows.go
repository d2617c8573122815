package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"hexctl/internal/history"
	"hexctl/internal/lcu"
	"hexctl/internal/logging"
)

// RandomizeIconRequest carries dependencies for the icon randomizer.
type RandomizeIconRequest struct {
	Client  *lcu.Client
	History *history.Store
	Logger  *slog.Logger

	// Pick overrides random selection in tests. It receives the candidate
	// icon ids and returns the chosen one.
	Pick func(candidates []int) int
}

// RandomizeIconResult reports the icon switch.
type RandomizeIconResult struct {
	OldIcon int `json:"old_icon"`
	NewIcon int `json:"new_icon"`
	Owned   int `json:"owned"`
}

// RandomizeIcon switches the profile icon to a random owned one, excluding
// the current icon so the change is always visible.
func RandomizeIcon(ctx context.Context, req RandomizeIconRequest) (RandomizeIconResult, error) {
	logger := logging.NewComponentLogger(req.Logger, "summoner")

	summoner, err := req.Client.CurrentSummoner(ctx)
	if err != nil {
		return RandomizeIconResult{}, fmt.Errorf("fetch current summoner: %w", err)
	}

	icons, err := req.Client.Inventory(ctx, "ICON")
	if err != nil {
		return RandomizeIconResult{}, fmt.Errorf("fetch owned icons: %w", err)
	}

	candidates := make([]int, 0, len(icons))
	for _, icon := range icons {
		if icon.ItemID == summoner.ProfileIconID {
			continue
		}
		candidates = append(candidates, icon.ItemID)
	}
	if len(candidates) == 0 {
		return RandomizeIconResult{}, errors.New("no other owned icons to switch to")
	}

	pick := req.Pick
	if pick == nil {
		pick = func(candidates []int) int {
			return candidates[rand.Intn(len(candidates))]
		}
	}
	chosen := pick(candidates)

	if err := req.Client.SetIcon(ctx, chosen); err != nil {
		return RandomizeIconResult{}, err
	}

	result := RandomizeIconResult{
		OldIcon: summoner.ProfileIconID,
		NewIcon: chosen,
		Owned:   len(icons),
	}
	logger.Info("profile icon randomized",
		logging.Int("old_icon", result.OldIcon),
		logging.Int("new_icon", result.NewIcon))

	recordRun(ctx, req.History, logger, history.Run{
		Command:       "randomize icon",
		Summary:       fmt.Sprintf("icon %d -> %d", result.OldIcon, result.NewIcon),
		ItemsAffected: 1,
	})

	return result, nil
}

// StatusRequest carries dependencies for the connectivity check.
type StatusRequest struct {
	Client *lcu.Client
	Creds  lcu.Credentials
	Logger *slog.Logger
}

// StatusResult describes the running client and logged-in account.
type StatusResult struct {
	Port     int    `json:"port"`
	PID      int    `json:"pid"`
	Summoner string `json:"summoner"`
	Level    int    `json:"level"`
	IconID   int    `json:"icon_id"`
}

// Status verifies the client is reachable and returns who is logged in.
func Status(ctx context.Context, req StatusRequest) (StatusResult, error) {
	summoner, err := req.Client.CurrentSummoner(ctx)
	if err != nil {
		return StatusResult{}, fmt.Errorf("query current summoner: %w", err)
	}

	name := summoner.DisplayName
	if name == "" && summoner.GameName != "" {
		name = summoner.GameName + "#" + summoner.TagLine
	}

	return StatusResult{
		Port:     req.Creds.Port,
		PID:      req.Creds.PID,
		Summoner: name,
		Level:    summoner.SummonerLevel,
		IconID:   summoner.ProfileIconID,
	}, nil
}
