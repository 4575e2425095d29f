package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"brushfuel/entities"
	"brushfuel/pkg/fuellog/repository"
)

type logRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FuelLogRepository { return &logRepo{db} }

func (r *logRepo) Create(l *entities.FuelLog) error { return r.db.Create(l).Error }

func (r *logRepo) FindByID(id uint) (*entities.FuelLog, error) {
	var l entities.FuelLog
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns newest first, matching the register screen.
func (r *logRepo) List(f repository.Filter) ([]entities.FuelLog, error) {
	q := r.db.Model(&entities.FuelLog{})
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.Model != "" {
		q = q.Where("model = ?", f.Model)
	}
	if f.Query != "" {
		needle := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("lower(notes) LIKE ? OR lower(equipment) LIKE ?", needle, needle)
	}
	var list []entities.FuelLog
	return list, q.Order("date DESC, log_id DESC").Find(&list).Error
}

func (r *logRepo) Update(l *entities.FuelLog) error { return r.db.Save(l).Error }

func (r *logRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.FuelLog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
