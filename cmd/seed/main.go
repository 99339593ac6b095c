package main

import (
	"time"

	"github.com/forgehall/forgehall/internal/config"
	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/logger"
	"github.com/forgehall/forgehall/internal/models"

	"github.com/shopspring/decimal"
)

// Seeds a demo catalog: three factions, their starter sets and squads,
// plus faction-less hobby supplies. Existing rows are left alone so the
// command can run repeatedly.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	factions := []models.Faction{
		{
			Name:        "Iron Legion",
			Description: "Unyielding warriors clad in powered plate, masters of siege warfare.",
			SortOrder:   10,
		},
		{
			Name:        "Void Reavers",
			Description: "Corsair fleets that strike from the dark between the stars.",
			SortOrder:   20,
		},
		{
			Name:        "Sylvan Court",
			Description: "Ancient forest spirits and their fey-sworn champions.",
			SortOrder:   30,
		},
	}

	for _, faction := range factions {
		var existing models.Faction
		if err := models.DB.Where("name = ?", faction.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&faction).Error; err != nil {
				stdLog.Printf("Failed to create faction %s: %v", faction.Name, err)
			} else {
				stdLog.Printf("Created faction: %s", faction.Name)
			}
		} else {
			stdLog.Printf("Faction already exists: %s", faction.Name)
		}
	}

	factionIDs := map[string]uint{}
	var factionList []models.Faction
	if err := models.DB.Where("name IN ?", []string{"Iron Legion", "Void Reavers", "Sylvan Court"}).Find(&factionList).Error; err != nil {
		stdLog.Printf("Failed to load factions: %v", err)
	}
	for _, faction := range factionList {
		factionIDs[faction.Name] = faction.ID
	}
	ironLegionID := factionIDs["Iron Legion"]
	voidReaversID := factionIDs["Void Reavers"]
	sylvanCourtID := factionIDs["Sylvan Court"]

	releaseNextMonth := time.Now().AddDate(0, 1, 0)

	products := []models.Product{
		{
			FactionID:   &ironLegionID,
			Name:        "Iron Legion Starter Set",
			Description: "Everything a new commander needs: 20 legionnaires, a siege walker, and the faction rulebook.",
			Category:    constants.CategoryStarterSet,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(5000.00)),
			Stock:       40,
			SortOrder:   10,
		},
		{
			FactionID:   &ironLegionID,
			Name:        "Legion Breacher Squad",
			Description: "Five breachers with thermal lances and storm shields.",
			Category:    constants.CategoryMiniature,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1500.00)),
			Stock:       120,
			SortOrder:   20,
		},
		{
			FactionID:   &voidReaversID,
			Name:        "Void Reavers Starter Set",
			Description: "Boarding party box: 15 reavers, 2 assault skiffs, and quick-start rules.",
			Category:    constants.CategoryStarterSet,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(5000.00)),
			Stock:       35,
			SortOrder:   10,
		},
		{
			FactionID:   &voidReaversID,
			Name:        "Reaver Corsair Pack",
			Description: "Ten corsairs with grav-harpoons, multi-part plastic kit.",
			Category:    constants.CategoryMiniature,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1500.00)),
			Stock:       90,
			SortOrder:   20,
		},
		{
			FactionID:   &sylvanCourtID,
			Name:        "Sylvan Court Starter Set",
			Description: "The court assembles: treekin retinue, dryad swarm, and campaign primer.",
			Category:    constants.CategoryStarterSet,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(5000.00)),
			Stock:       30,
			SortOrder:   10,
		},
		{
			FactionID:   &sylvanCourtID,
			Name:        "Heartwood Treekin",
			Description: "Three towering treekin, poseable branch weapons included.",
			Category:    constants.CategoryMiniature,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1800.00)),
			Stock:       0,
			IsPreorder:  true,
			ReleaseDate: &releaseNextMonth,
			SortOrder:   20,
		},
		{
			Name:        "Basecoat Paint Set",
			Description: "Twelve acrylic basecoats covering all three faction schemes.",
			Category:    constants.CategoryPaint,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(450.00)),
			Stock:       200,
			SortOrder:   30,
		},
		{
			Name:        "Precision Hobby Knife",
			Description: "Sprue-cutting knife with five spare blades.",
			Category:    constants.CategoryAccessory,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(250.00)),
			Stock:       150,
			SortOrder:   40,
		},
		{
			Name:        "Chronicles of the Forge",
			Description: "Hardback lore anthology spanning all factions.",
			Category:    constants.CategoryBook,
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(900.00)),
			Stock:       60,
			SortOrder:   50,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	stdLog.Printf("Seed complete")
}
