package entities

import "time"

// DefaultEquipmentLabel is applied when a log arrives without a label.
const DefaultEquipmentLabel = "Brush cutter"

type FuelLog struct {
	LogID         uint     `gorm:"primaryKey" json:"log_id"`
	Date          string   `json:"date" gorm:"index"` // YYYY-MM-DD
	Brand         string   `json:"brand" gorm:"index"`
	Model         string   `json:"model" gorm:"index"`
	Equipment     string   `json:"equipment"` // free-text label
	Litres        float64  `json:"litres"`
	Hours         float64  `json:"hours"`
	AreaValue     float64  `json:"area_value"`
	AreaUnit      string   `json:"area_unit"` // m2|ha
	PricePerLitre *float64 `json:"price_per_litre"`
	TotalCost     *float64 `json:"total_cost"`
	Notes         string   `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
