package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brushfuel/entities"
	"brushfuel/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) List(brand string) ([]entities.EquipmentModel, error) {
	q := r.db.Model(&entities.EquipmentModel{})
	if brand != "" {
		q = q.Where("brand = ?", brand)
	}
	var list []entities.EquipmentModel
	return list, q.Order("brand, model").Find(&list).Error
}

func (r *catalogRepo) Brands() ([]string, error) {
	var out []string
	err := r.db.Model(&entities.EquipmentModel{}).
		Distinct("brand").Order("brand").Pluck("brand", &out).Error
	return out, err
}

func (r *catalogRepo) FindByPair(brand, model string) (*entities.EquipmentModel, error) {
	var m entities.EquipmentModel
	if err := r.db.Where("brand = ? AND model = ?", brand, model).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert inserts or refreshes the rated figure for an existing pair.
func (r *catalogRepo) Upsert(m *entities.EquipmentModel) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "brand"}, {Name: "model"}},
		DoUpdates: clause.AssignmentColumns([]string{"rated_litres_per_hour", "updated_at"}),
	}).Create(m).Error
}

func (r *catalogRepo) BulkUpsert(ms []entities.EquipmentModel) error {
	if len(ms) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "brand"}, {Name: "model"}},
		DoUpdates: clause.AssignmentColumns([]string{"rated_litres_per_hour", "updated_at"}),
	}).Create(&ms).Error
}
