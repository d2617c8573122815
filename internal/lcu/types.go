package lcu

// Loot item status values reported by the client.
const (
	ItemStatusOwned = "OWNED"
	ItemStatusFree  = "FREE"
)

// Loot display categories and types used by the bookkeeping commands.
const (
	CategorySkin        = "SKIN"
	TypeChampionRental  = "CHAMPION_RENTAL"
	RecipeChampionShard = "CHAMPION_RENTAL_disenchant"
	RecipeSkinShard     = "SKIN_RENTAL_disenchant"
)

// SettingsDocs are the settings documents covered by backup and restore.
var SettingsDocs = []string{"game-settings", "input-settings"}

// LootItem is one row of the player's loot inventory.
type LootItem struct {
	LootID               string `json:"lootId"`
	LootName             string `json:"lootName"`
	ItemDesc             string `json:"itemDesc"`
	Type                 string `json:"type"`
	DisplayCategories    string `json:"displayCategories"`
	ItemStatus           string `json:"itemStatus"`
	Count                int    `json:"count"`
	Value                int    `json:"value"`
	DisenchantValue      int    `json:"disenchantValue"`
	DisenchantRecipeName string `json:"disenchantRecipeName"`
	StoreItemID          int    `json:"storeItemId"`
	ParentStoreItemID    int    `json:"parentStoreItemId"`
}

// InventoryItem is one owned entry from the inventory endpoint.
type InventoryItem struct {
	ItemID        int    `json:"itemId"`
	InventoryType string `json:"inventoryType"`
	Owned         bool   `json:"owned"`
}

// Summoner is the account currently logged into the client.
type Summoner struct {
	SummonerID    int64  `json:"summonerId"`
	DisplayName   string `json:"displayName"`
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}
