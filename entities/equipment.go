package entities

import "time"

type EquipmentModel struct {
	ModelID            uint     `gorm:"primaryKey" json:"model_id"`
	Brand              string   `json:"brand" gorm:"uniqueIndex:idx_models_brand_model"`
	Model              string   `json:"model" gorm:"uniqueIndex:idx_models_brand_model"`
	RatedLitresPerHour *float64 `json:"rated_litres_per_hour"` // manufacturer-stated L/h
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
