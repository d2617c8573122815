package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"hexctl/internal/api"
	"hexctl/internal/lcu"
	"hexctl/internal/testsupport"
)

func TestRandomizeIconExcludesCurrent(t *testing.T) {
	fake := testsupport.NewFakeClient(t)
	fake.RespondJSON("/lol-summoner/v1/current-summoner", lcu.Summoner{ProfileIconID: 29})
	fake.RespondJSON("/lol-inventory/v2/inventory/ICON", []lcu.InventoryItem{
		{ItemID: 29, Owned: true},
		{ItemID: 4368, Owned: true},
		{ItemID: 588, Owned: true},
	})

	var setIcon int
	fake.Handle("/lol-summoner/v1/current-summoner/icon", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		_ = json.NewDecoder(r.Body).Decode(&body)
		setIcon = body["profileIconId"]
		w.WriteHeader(http.StatusCreated)
	})

	result, err := api.RandomizeIcon(context.Background(), api.RandomizeIconRequest{
		Client: fake.NewClient(),
		Pick: func(candidates []int) int {
			for _, id := range candidates {
				if id == 29 {
					t.Fatal("current icon offered as candidate")
				}
			}
			return candidates[0]
		},
	})
	if err != nil {
		t.Fatalf("RandomizeIcon: %v", err)
	}
	if result.OldIcon != 29 {
		t.Fatalf("unexpected old icon: %d", result.OldIcon)
	}
	if result.NewIcon != setIcon {
		t.Fatalf("result icon %d does not match PUT body %d", result.NewIcon, setIcon)
	}
	if result.NewIcon == 29 {
		t.Fatal("randomizer picked the current icon")
	}
}

func TestRandomizeIconNoCandidates(t *testing.T) {
	fake := testsupport.NewFakeClient(t)
	fake.RespondJSON("/lol-summoner/v1/current-summoner", lcu.Summoner{ProfileIconID: 29})
	fake.RespondJSON("/lol-inventory/v2/inventory/ICON", []lcu.InventoryItem{
		{ItemID: 29, Owned: true},
	})

	_, err := api.RandomizeIcon(context.Background(), api.RandomizeIconRequest{Client: fake.NewClient()})
	if err == nil {
		t.Fatal("expected error when only the current icon is owned")
	}
}

func TestStatus(t *testing.T) {
	fake := testsupport.NewFakeClient(t)
	fake.RespondJSON("/lol-summoner/v1/current-summoner", lcu.Summoner{
		GameName:      "Best Summoner",
		TagLine:       "EUW",
		SummonerLevel: 512,
		ProfileIconID: 4368,
	})

	result, err := api.Status(context.Background(), api.StatusRequest{
		Client: fake.NewClient(),
		Creds:  fake.Credentials(),
	})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if result.Summoner != "Best Summoner#EUW" {
		t.Fatalf("unexpected summoner: %q", result.Summoner)
	}
	if result.Port != fake.Credentials().Port || result.Level != 512 {
		t.Fatalf("unexpected status: %+v", result)
	}
}
