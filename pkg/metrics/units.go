package metrics

// M2PerHectare is the fixed m² per hectare ratio used everywhere.
const M2PerHectare = 10_000.0

const (
	UnitM2 = "m2"
	UnitHa = "ha"
)

// ToSquareMeters converts an area value into m². Hectares multiply by
// M2PerHectare; anything else is already m².
func ToSquareMeters(value float64, unit string) float64 {
	if unit == UnitHa {
		return value * M2PerHectare
	}
	return value
}

func ValidUnit(unit string) bool { return unit == UnitM2 || unit == UnitHa }
