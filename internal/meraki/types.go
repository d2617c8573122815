package meraki

// Skin is one champion skin from the CDN data set.
type Skin struct {
	Name         string `json:"name"`
	ID           int    `json:"id"`
	IsBase       bool   `json:"isBase"`
	Cost         int    `json:"cost"`
	Rarity       string `json:"rarity"`
	LootEligible bool   `json:"lootEligible"`
}

// Champion is one champion entry, keyed in Champions by its string key.
type Champion struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Skins []Skin `json:"skins"`
}

// Champions is the full champion data set keyed by champion key.
type Champions map[string]Champion

// NonBaseSkins returns the champion's skins with the base skin removed.
func (c Champion) NonBaseSkins() []Skin {
	skins := make([]Skin, 0, len(c.Skins))
	for _, skin := range c.Skins {
		if skin.IsBase {
			continue
		}
		skins = append(skins, skin)
	}
	return skins
}
