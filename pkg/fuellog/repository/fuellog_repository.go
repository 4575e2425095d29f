package repository

import "brushfuel/entities"

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Brand string
	Model string
	Query string // substring over notes and equipment, case-insensitive
}

type FuelLogRepository interface {
	Create(l *entities.FuelLog) error
	FindByID(id uint) (*entities.FuelLog, error)
	List(f Filter) ([]entities.FuelLog, error)
	Update(l *entities.FuelLog) error
	Delete(id uint) error
}
