package cache

import (
	"context"
	"time"

	"github.com/forgehall/forgehall/internal/models"
)

const factionListKey = "catalog:factions"
const factionListTTL = 5 * time.Minute

// GetFactionList reads the cached faction index for the catalog page.
func GetFactionList(ctx context.Context) ([]models.Faction, bool, error) {
	var factions []models.Faction
	hit, err := GetJSON(ctx, factionListKey, &factions)
	if err != nil || !hit {
		return nil, hit, err
	}
	return factions, true, nil
}

// SetFactionList caches the faction index.
func SetFactionList(ctx context.Context, factions []models.Faction) error {
	return SetJSON(ctx, factionListKey, factions, factionListTTL)
}

// InvalidateFactionList drops the cached index after admin edits.
func InvalidateFactionList(ctx context.Context) error {
	return Del(ctx, factionListKey)
}
