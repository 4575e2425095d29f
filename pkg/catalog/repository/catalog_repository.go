package repository

import "brushfuel/entities"

type CatalogRepository interface {
	List(brand string) ([]entities.EquipmentModel, error)
	Brands() ([]string, error)
	FindByPair(brand, model string) (*entities.EquipmentModel, error)
	Upsert(m *entities.EquipmentModel) error
	BulkUpsert(ms []entities.EquipmentModel) error
}
