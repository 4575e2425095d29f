package service

import (
	"brushfuel/entities"
	"brushfuel/pkg/fuellog/repository"
	"brushfuel/pkg/metrics"
)

type FuelLogService interface {
	Create(l *entities.FuelLog) (*entities.FuelLog, error)
	List(f repository.Filter) ([]metrics.DerivedRecord, error)
	UpdatePartial(id uint, p LogPatch) (*entities.FuelLog, error)
	Delete(id uint) error
}

// LogPatch carries only the fields the caller wants changed.
type LogPatch struct {
	Date          *string  `json:"date"`
	Brand         *string  `json:"brand"`
	Model         *string  `json:"model"`
	Equipment     *string  `json:"equipment"`
	Litres        *float64 `json:"litres"`
	Hours         *float64 `json:"hours"`
	AreaValue     *float64 `json:"area_value"`
	AreaUnit      *string  `json:"area_unit"`
	PricePerLitre *float64 `json:"price_per_litre"`
	TotalCost     *float64 `json:"total_cost"`
	Notes         *string  `json:"notes"`
}
