package report

import (
	"math"
	"sort"

	"brushfuel/entities"
	"brushfuel/pkg/metrics"
)

// equipmentKey groups strictly on the (brand, model) pair, never on a joined
// string, so "A B"+"C" and "A"+"B C" stay distinct.
type equipmentKey struct{ brand, model string }

// meanAcc averages only the defined samples it sees.
type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(v *float64) {
	if v != nil {
		a.sum += *v
		a.n++
	}
}

func (a *meanAcc) mean() *float64 {
	if a.n == 0 {
		return nil
	}
	m := a.sum / float64(a.n)
	return &m
}

// sumAcc totals only the defined samples; all-absent stays absent.
type sumAcc struct {
	sum float64
	any bool
}

func (a *sumAcc) add(v *float64) {
	if v != nil {
		a.sum += *v
		a.any = true
	}
}

func (a *sumAcc) total() *float64 {
	if !a.any {
		return nil
	}
	s := a.sum
	return &s
}

// Summarize computes the dashboard figures over any subset of records.
func Summarize(recs []metrics.DerivedRecord) Summary {
	var lh, lha meanAcc
	var cost sumAcc
	s := Summary{Records: len(recs)}
	for _, r := range recs {
		s.TotalLitres += r.Litres
		lh.add(r.LitresPerHour)
		lha.add(r.LitresPerHa)
		cost.add(r.TotalCost)
	}
	s.MeanLitresPerHour = lh.mean()
	s.MeanLitresPerHa = lha.mean()
	s.TotalCost = cost.total()
	if s.TotalCost != nil && s.TotalLitres > 0 {
		p := *s.TotalCost / s.TotalLitres
		s.MeanPricePerLitre = &p
	}
	return s
}

func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

// Monthly buckets records by calendar month (YYYY-MM), ascending.
func Monthly(recs []metrics.DerivedRecord) []MonthlyRow {
	type acc struct {
		litres, hours, area float64
		cost                sumAcc
		lh, lha             meanAcc
	}
	byMonth := map[string]*acc{}
	for _, r := range recs {
		m := monthOf(r.Date)
		a := byMonth[m]
		if a == nil {
			a = &acc{}
			byMonth[m] = a
		}
		a.litres += r.Litres
		a.hours += r.Hours
		a.area += r.AreaM2
		a.cost.add(r.TotalCost)
		a.lh.add(r.LitresPerHour)
		a.lha.add(r.LitresPerHa)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyRow, 0, len(months))
	for _, m := range months {
		a := byMonth[m]
		out = append(out, MonthlyRow{
			Month:             m,
			TotalLitres:       a.litres,
			TotalHours:        a.hours,
			TotalAreaM2:       a.area,
			TotalCost:         a.cost.total(),
			MeanLitresPerHour: a.lh.mean(),
			MeanLitresPerHa:   a.lha.mean(),
		})
	}
	return out
}

// PerEquipment buckets records by (brand, model), ordered by brand then model.
func PerEquipment(recs []metrics.DerivedRecord) []EquipmentRow {
	type acc struct {
		refuels             int
		litres, hours, area float64
		cost                sumAcc
		lh, lha             meanAcc
	}
	byEq := map[equipmentKey]*acc{}
	for _, r := range recs {
		k := equipmentKey{r.Brand, r.Model}
		a := byEq[k]
		if a == nil {
			a = &acc{}
			byEq[k] = a
		}
		a.refuels++
		a.litres += r.Litres
		a.hours += r.Hours
		a.area += r.AreaM2
		a.cost.add(r.TotalCost)
		a.lh.add(r.LitresPerHour)
		a.lha.add(r.LitresPerHa)
	}

	keys := make([]equipmentKey, 0, len(byEq))
	for k := range byEq {
		keys = append(keys, k)
	}
	sortEquipmentKeys(keys)

	out := make([]EquipmentRow, 0, len(keys))
	for _, k := range keys {
		a := byEq[k]
		out = append(out, EquipmentRow{
			Brand:             k.brand,
			Model:             k.model,
			Refuels:           a.refuels,
			TotalLitres:       a.litres,
			TotalHours:        a.hours,
			TotalAreaM2:       a.area,
			TotalCost:         a.cost.total(),
			MeanLitresPerHour: a.lh.mean(),
			MeanLitresPerHa:   a.lha.mean(),
		})
	}
	return out
}

// RankByEfficiency sorts ascending by litres/ha; records without a defined
// value go after every defined one. Returns at most limit records (limit <= 0
// means no bound). The input slice is left untouched.
func RankByEfficiency(recs []metrics.DerivedRecord, limit int) []metrics.DerivedRecord {
	ranked := make([]metrics.DerivedRecord, len(recs))
	copy(ranked, recs)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].LitresPerHa, ranked[j].LitresPerHa
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CompareRealVsRated joins the per-equipment observed mean L/h against the
// catalog. Equipment missing from the catalog still gets a row, with the
// rated side absent.
func CompareRealVsRated(recs []metrics.DerivedRecord, models []entities.EquipmentModel) []ComparisonRow {
	rated := make(map[equipmentKey]*float64, len(models))
	for _, m := range models {
		rated[equipmentKey{m.Brand, m.Model}] = m.RatedLitresPerHour
	}

	byEq := map[equipmentKey]*meanAcc{}
	for _, r := range recs {
		k := equipmentKey{r.Brand, r.Model}
		a := byEq[k]
		if a == nil {
			a = &meanAcc{}
			byEq[k] = a
		}
		a.add(r.LitresPerHour)
	}

	keys := make([]equipmentKey, 0, len(byEq))
	for k := range byEq {
		keys = append(keys, k)
	}
	sortEquipmentKeys(keys)

	out := make([]ComparisonRow, 0, len(keys))
	for _, k := range keys {
		row := ComparisonRow{
			Brand:              k.brand,
			Model:              k.model,
			RealLitresPerHour:  byEq[k].mean(),
			RatedLitresPerHour: rated[k],
		}
		row.PercentDiff = percentDiff(row.RealLitresPerHour, row.RatedLitresPerHour)
		out = append(out, row)
	}
	return out
}

// percentDiff is round1(((observed-rated)/rated)*100), undefined unless both
// sides are present, rated > 0 and the result is finite.
func percentDiff(observed, rated *float64) *float64 {
	if observed == nil || rated == nil || *rated <= 0 {
		return nil
	}
	v := (*observed - *rated) / *rated * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	v = math.Round(v*10) / 10
	return &v
}

// Trend orders the L/h series by date (then id) for charting.
func Trend(recs []metrics.DerivedRecord) []TrendPoint {
	ordered := make([]metrics.DerivedRecord, len(recs))
	copy(ordered, recs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].LogID < ordered[j].LogID
	})
	out := make([]TrendPoint, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, TrendPoint{Date: r.Date, LitresPerHour: r.LitresPerHour})
	}
	return out
}

func sortEquipmentKeys(keys []equipmentKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].brand != keys[j].brand {
			return keys[i].brand < keys[j].brand
		}
		return keys[i].model < keys[j].model
	})
}
