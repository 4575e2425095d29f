// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brushfuel/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.FuelLog{},
		&entities.EquipmentModel{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// defaultCatalog is the factory list of common brush cutter models. Users
// extend it through the catalog endpoints; seeding never overwrites rows
// they already edited.
var defaultCatalog = [][2]string{
	{"Stihl", "FS 38"}, {"Stihl", "FS 55"}, {"Stihl", "FS 85"}, {"Stihl", "FS 120"},
	{"Stihl", "FS 160"}, {"Stihl", "FS 220"}, {"Stihl", "FS 280"}, {"Stihl", "FS 300"},
	{"Stihl", "FS 350"}, {"Stihl", "FS 400"},
	{"Husqvarna", "128R"}, {"Husqvarna", "226R"}, {"Husqvarna", "236R"}, {"Husqvarna", "240R"},
	{"Husqvarna", "333R"}, {"Husqvarna", "335R"}, {"Husqvarna", "345R"}, {"Husqvarna", "545RXT"},
	{"Husqvarna", "553RS"}, {"Husqvarna", "555RXT"},
	{"Echo", "SRM-22GES"}, {"Echo", "SRM-266"}, {"Echo", "SRM-3020"}, {"Echo", "SRM-410X"},
	{"Shindaiwa", "C350"}, {"Shindaiwa", "C450"}, {"Shindaiwa", "B45"}, {"Shindaiwa", "B530"},
	{"Shindaiwa", "BP510S"},
	{"Honda", "UMK 425"}, {"Honda", "UMK 435"}, {"Honda", "UMK 450T"},
	{"Toyama", "RT33"}, {"Toyama", "RT43L"}, {"Toyama", "RT52"}, {"Toyama", "RT520H"},
	{"Toyama", "RT430"},
	{"Vulcan", "VR260"}, {"Vulcan", "VR330"}, {"Vulcan", "VR430"}, {"Vulcan", "VR520H"},
	{"Makita", "DUR368LZ"}, {"Makita", "UR100DZ"}, {"Makita", "DUR181Z"},
	{"DeWalt", "DCM571X1"},
	{"Ryobi", "RBC36X26B"},
	{"EGO", "BC3800E"},
	{"FortGpro", "43cc"},
	{"Buffalo", "BF43"},
	{"Branco", "B43L"},
	{"Oleo-Mac", "BC 300 T"}, {"Oleo-Mac", "BC 400 T"},
	{"Efco", "DS 2400"}, {"Efco", "DS 3000"},
}

// SeedCatalog inserts the factory models, skipping pairs that already exist.
func SeedCatalog(db *gorm.DB) error {
	models := make([]entities.EquipmentModel, 0, len(defaultCatalog))
	for _, p := range defaultCatalog {
		models = append(models, entities.EquipmentModel{Brand: p[0], Model: p[1]})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models).Error
}
