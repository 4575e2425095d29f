package service

import "brushfuel/entities"

// Entry is one catalog row coming from a form or an import file.
type Entry struct {
	Brand string   `json:"brand"`
	Model string   `json:"model"`
	Rated *float64 `json:"rated_litres_per_hour"`
}

type CatalogService interface {
	List(brand string) ([]entities.EquipmentModel, error)
	Brands() ([]string, error)
	Upsert(e Entry) (*entities.EquipmentModel, error)
	// RatedFor returns nil without error when the pair is unknown or unrated.
	RatedFor(brand, model string) (*float64, error)
	ImportEntries(entries []Entry) (imported, skipped int, err error)
}
