package metrics

import (
	"math"

	"brushfuel/entities"
)

// DerivedRecord is a fuel log plus its computed efficiency and cost metrics.
// Nil means the metric is undefined for that record (zero or missing
// denominator); it is never collapsed to zero.
type DerivedRecord struct {
	entities.FuelLog
	AreaM2        float64  `json:"area_m2"`
	LitresPerHour *float64 `json:"litres_per_hour"`
	LitresPerM2   *float64 `json:"litres_per_m2"`
	LitresPerHa   *float64 `json:"litres_per_ha"`
	CostPerHour   *float64 `json:"cost_per_hour"`
	CostPerHa     *float64 `json:"cost_per_ha"`
}

// ratio returns num/den only when den is a positive finite number and the
// result is finite; otherwise nil.
func ratio(num, den float64) *float64 {
	if den <= 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return nil
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ComputeDerived augments one fuel log with its rate metrics. It never fails:
// edge values like zero hours degrade to absent metrics instead of errors.
func ComputeDerived(e entities.FuelLog) DerivedRecord {
	areaM2 := ToSquareMeters(e.AreaValue, e.AreaUnit)
	price, total := ResolveCosts(e.Litres, e.PricePerLitre, e.TotalCost)

	d := DerivedRecord{FuelLog: e, AreaM2: areaM2}
	d.PricePerLitre = price
	d.TotalCost = total
	d.LitresPerHour = ratio(e.Litres, e.Hours)
	d.LitresPerM2 = ratio(e.Litres, areaM2)
	d.LitresPerHa = ratio(e.Litres, areaM2/M2PerHectare)
	if total != nil {
		d.CostPerHour = ratio(*total, e.Hours)
		d.CostPerHa = ratio(*total, areaM2/M2PerHectare)
	}
	return d
}

func ComputeAll(logs []entities.FuelLog) []DerivedRecord {
	out := make([]DerivedRecord, 0, len(logs))
	for _, e := range logs {
		out = append(out, ComputeDerived(e))
	}
	return out
}
