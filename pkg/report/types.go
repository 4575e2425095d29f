package report

// Summary holds the dashboard figures for an arbitrary record subset.
// Nil pointers mean "no defined samples", never zero.
type Summary struct {
	Records           int      `json:"records"`
	TotalLitres       float64  `json:"total_litres"`
	TotalCost         *float64 `json:"total_cost"`
	MeanLitresPerHour *float64 `json:"mean_litres_per_hour"`
	MeanLitresPerHa   *float64 `json:"mean_litres_per_ha"`
	MeanPricePerLitre *float64 `json:"mean_price_per_litre"` // sum(cost)/sum(litres)
}

type MonthlyRow struct {
	Month             string   `json:"month"` // YYYY-MM
	TotalLitres       float64  `json:"total_litres"`
	TotalHours        float64  `json:"total_hours"`
	TotalAreaM2       float64  `json:"total_area_m2"`
	TotalCost         *float64 `json:"total_cost"`
	MeanLitresPerHour *float64 `json:"mean_litres_per_hour"`
	MeanLitresPerHa   *float64 `json:"mean_litres_per_ha"`
}

type EquipmentRow struct {
	Brand             string   `json:"brand"`
	Model             string   `json:"model"`
	Refuels           int      `json:"refuels"`
	TotalLitres       float64  `json:"total_litres"`
	TotalHours        float64  `json:"total_hours"`
	TotalAreaM2       float64  `json:"total_area_m2"`
	TotalCost         *float64 `json:"total_cost"`
	MeanLitresPerHour *float64 `json:"mean_litres_per_hour"`
	MeanLitresPerHa   *float64 `json:"mean_litres_per_ha"`
}

// ComparisonRow pairs the observed mean L/h of one (brand, model) against the
// catalog's manufacturer figure. PercentDiff is absent unless both sides are
// defined and the rated value is strictly positive.
type ComparisonRow struct {
	Brand              string   `json:"brand"`
	Model              string   `json:"model"`
	RealLitresPerHour  *float64 `json:"real_litres_per_hour"`
	RatedLitresPerHour *float64 `json:"rated_litres_per_hour"`
	PercentDiff        *float64 `json:"percent_diff"`
}

type TrendPoint struct {
	Date          string   `json:"date"`
	LitresPerHour *float64 `json:"litres_per_hour"`
}
