package report

import (
	"testing"

	"brushfuel/entities"
	"brushfuel/pkg/metrics"
)

func fptr(v float64) *float64 { return &v }

func logOf(date, brand, model string, litres, hours, areaHa float64) entities.FuelLog {
	return entities.FuelLog{
		Date: date, Brand: brand, Model: model,
		Litres: litres, Hours: hours, AreaValue: areaHa, AreaUnit: metrics.UnitHa,
	}
}

func derive(logs ...entities.FuelLog) []metrics.DerivedRecord {
	return metrics.ComputeAll(logs)
}

func TestSummarize(t *testing.T) {
	a := logOf("2024-01-05", "Stihl", "FS 220", 10, 2, 1)
	a.TotalCost = fptr(60.0)
	b := logOf("2024-01-20", "Stihl", "FS 220", 20, 4, 2) // no cost

	s := Summarize(derive(a, b))
	if s.Records != 2 {
		t.Fatalf("records = %d, want 2", s.Records)
	}
	if s.TotalLitres != 30 {
		t.Errorf("total_litres = %v, want 30", s.TotalLitres)
	}
	if s.TotalCost == nil || *s.TotalCost != 60 {
		t.Errorf("total_cost = %v, want 60", s.TotalCost)
	}
	if s.MeanLitresPerHour == nil || *s.MeanLitresPerHour != 5 {
		t.Errorf("mean L/h = %v, want 5", s.MeanLitresPerHour)
	}
	if s.MeanLitresPerHa == nil || *s.MeanLitresPerHa != 10 {
		t.Errorf("mean L/ha = %v, want 10", s.MeanLitresPerHa)
	}
	// 60 / 30 litres
	if s.MeanPricePerLitre == nil || *s.MeanPricePerLitre != 2 {
		t.Errorf("mean price = %v, want 2", s.MeanPricePerLitre)
	}
}

func TestSummarizeAllCostsAbsent(t *testing.T) {
	s := Summarize(derive(
		logOf("2024-01-05", "Echo", "SRM-266", 10, 2, 1),
		logOf("2024-01-06", "Echo", "SRM-266", 5, 1, 1),
	))
	if s.TotalCost != nil {
		t.Errorf("total_cost = %v, want absent when no record has a cost", *s.TotalCost)
	}
	if s.MeanPricePerLitre != nil {
		t.Errorf("mean price = %v, want absent without cost totals", *s.MeanPricePerLitre)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Records != 0 || s.TotalLitres != 0 {
		t.Fatalf("empty summary = %+v", s)
	}
	if s.MeanLitresPerHour != nil || s.MeanLitresPerHa != nil || s.TotalCost != nil || s.MeanPricePerLitre != nil {
		t.Error("means and sums over no records must be absent, not zero")
	}
}

func TestMonthlyConsolidation(t *testing.T) {
	rows := Monthly(derive(
		logOf("2024-01-05", "Stihl", "FS 220", 10, 2, 1),
		logOf("2024-01-20", "Stihl", "FS 220", 20, 4, 2),
	))
	if len(rows) != 1 {
		t.Fatalf("buckets = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Month != "2024-01" {
		t.Errorf("month = %q, want 2024-01", r.Month)
	}
	if r.TotalLitres != 30 || r.TotalHours != 6 {
		t.Errorf("totals = %v L / %v h, want 30 / 6", r.TotalLitres, r.TotalHours)
	}
	if r.TotalAreaM2 != 30000 {
		t.Errorf("area = %v m2, want 30000", r.TotalAreaM2)
	}
	if r.MeanLitresPerHour == nil || *r.MeanLitresPerHour != 5.0 {
		t.Errorf("mean L/h = %v, want 5.0", r.MeanLitresPerHour)
	}
	if r.TotalCost != nil {
		t.Errorf("cost = %v, want absent", *r.TotalCost)
	}
}

func TestMonthlyOrdersBuckets(t *testing.T) {
	rows := Monthly(derive(
		logOf("2024-03-01", "Stihl", "FS 55", 1, 1, 1),
		logOf("2023-12-31", "Stihl", "FS 55", 1, 1, 1),
		logOf("2024-01-15", "Stihl", "FS 55", 1, 1, 1),
	))
	want := []string{"2023-12", "2024-01", "2024-03"}
	if len(rows) != len(want) {
		t.Fatalf("buckets = %d, want %d", len(rows), len(want))
	}
	for i, m := range want {
		if rows[i].Month != m {
			t.Errorf("rows[%d].Month = %q, want %q", i, rows[i].Month, m)
		}
	}
}

func TestPerEquipmentKeysAreExactPairs(t *testing.T) {
	// concatenating brand+model would merge these two
	rows := PerEquipment(derive(
		logOf("2024-01-05", "Stihl FS", "38", 5, 1, 1),
		logOf("2024-01-06", "Stihl", "FS 38", 7, 1, 1),
	))
	if len(rows) != 2 {
		t.Fatalf("groups = %d, want 2 distinct (brand, model) pairs", len(rows))
	}
	if rows[0].Brand != "Stihl" || rows[1].Brand != "Stihl FS" {
		t.Errorf("unexpected group order: %q then %q", rows[0].Brand, rows[1].Brand)
	}
}

func TestPerEquipmentCountsAndMeans(t *testing.T) {
	a := logOf("2024-01-05", "Husqvarna", "236R", 10, 2, 1)
	a.TotalCost = fptr(50.0)
	b := logOf("2024-02-05", "Husqvarna", "236R", 30, 10, 3)
	rows := PerEquipment(derive(a, b))
	if len(rows) != 1 {
		t.Fatalf("groups = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Refuels != 2 {
		t.Errorf("refuels = %d, want 2", r.Refuels)
	}
	if r.TotalLitres != 40 || r.TotalHours != 12 {
		t.Errorf("totals = %v L / %v h, want 40 / 12", r.TotalLitres, r.TotalHours)
	}
	// mean of 5.0 and 3.0
	if r.MeanLitresPerHour == nil || *r.MeanLitresPerHour != 4 {
		t.Errorf("mean L/h = %v, want 4", r.MeanLitresPerHour)
	}
	if r.TotalCost == nil || *r.TotalCost != 50 {
		t.Errorf("cost = %v, want 50", r.TotalCost)
	}
}

func TestRankByEfficiencyAbsentLast(t *testing.T) {
	noArea := entities.FuelLog{Date: "2024-01-01", Brand: "Toyama", Model: "RT43L",
		Litres: 2, Hours: 1, AreaValue: 0, AreaUnit: metrics.UnitM2} // L/ha undefined
	recs := derive(
		logOf("2024-01-02", "Stihl", "FS 300", 30, 3, 1), // 30 L/ha
		noArea,
		logOf("2024-01-03", "Echo", "SRM-410X", 5, 1, 1), // 5 L/ha
	)
	ranked := RankByEfficiency(recs, 50)
	if len(ranked) != 3 {
		t.Fatalf("ranked = %d records, want 3", len(ranked))
	}
	if ranked[0].Brand != "Echo" || ranked[1].Brand != "Stihl" {
		t.Errorf("defined values out of order: %q, %q", ranked[0].Brand, ranked[1].Brand)
	}
	if ranked[2].LitresPerHa != nil {
		t.Error("record with absent L/ha must sort last")
	}
	// input order untouched
	if recs[1].Brand != "Toyama" {
		t.Error("RankByEfficiency mutated its input")
	}
}

func TestRankByEfficiencyLimit(t *testing.T) {
	var logs []entities.FuelLog
	for i := 0; i < 60; i++ {
		logs = append(logs, logOf("2024-01-05", "Stihl", "FS 55", float64(i+1), 1, 1))
	}
	ranked := RankByEfficiency(derive(logs...), 50)
	if len(ranked) != 50 {
		t.Fatalf("ranked = %d records, want capped at 50", len(ranked))
	}
}

func TestCompareRealVsRated(t *testing.T) {
	recs := derive(
		logOf("2024-01-05", "Stihl", "FS 220", 12, 2, 1), // 6 L/h
		logOf("2024-01-06", "Honda", "UMK 435", 4, 1, 1), // not in catalog
		logOf("2024-01-07", "Echo", "SRM-266", 3, 1, 1),  // rated missing
	)
	models := []entities.EquipmentModel{
		{Brand: "Stihl", Model: "FS 220", RatedLitresPerHour: fptr(5.0)},
		{Brand: "Echo", Model: "SRM-266"},
	}
	rows := CompareRealVsRated(recs, models)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	byPair := map[string]ComparisonRow{}
	for _, r := range rows {
		byPair[r.Brand+"/"+r.Model] = r
	}

	stihl := byPair["Stihl/FS 220"]
	if stihl.PercentDiff == nil || *stihl.PercentDiff != 20.0 {
		t.Errorf("Stihl diff = %v, want 20.0", stihl.PercentDiff)
	}
	honda := byPair["Honda/UMK 435"]
	if honda.RealLitresPerHour == nil || *honda.RealLitresPerHour != 4 {
		t.Errorf("uncataloged equipment should still report real L/h, got %v", honda.RealLitresPerHour)
	}
	if honda.RatedLitresPerHour != nil || honda.PercentDiff != nil {
		t.Error("uncataloged equipment must have absent rated and diff")
	}
	echo := byPair["Echo/SRM-266"]
	if echo.RatedLitresPerHour != nil || echo.PercentDiff != nil {
		t.Error("catalog entry without a rated value must yield absent diff")
	}
}

func TestCompareRealVsRatedRounding(t *testing.T) {
	recs := derive(logOf("2024-01-05", "Makita", "DUR368LZ", 5.5, 1, 1)) // 5.5 L/h
	models := []entities.EquipmentModel{{Brand: "Makita", Model: "DUR368LZ", RatedLitresPerHour: fptr(3.0)}}
	rows := CompareRealVsRated(recs, models)
	// ((5.5-3)/3)*100 = 83.333... -> 83.3
	if rows[0].PercentDiff == nil || *rows[0].PercentDiff != 83.3 {
		t.Fatalf("diff = %v, want 83.3", rows[0].PercentDiff)
	}
}

func TestCompareRealVsRatedZeroRated(t *testing.T) {
	recs := derive(logOf("2024-01-05", "Vulcan", "VR330", 6, 1, 1))
	models := []entities.EquipmentModel{{Brand: "Vulcan", Model: "VR330", RatedLitresPerHour: fptr(0.0)}}
	rows := CompareRealVsRated(recs, models)
	if rows[0].PercentDiff != nil {
		t.Fatalf("diff = %v, want absent for rated == 0", *rows[0].PercentDiff)
	}
}

func TestAggregationsOverEmptyInput(t *testing.T) {
	if rows := Monthly(nil); len(rows) != 0 {
		t.Errorf("Monthly(nil) = %d rows", len(rows))
	}
	if rows := PerEquipment(nil); len(rows) != 0 {
		t.Errorf("PerEquipment(nil) = %d rows", len(rows))
	}
	if recs := RankByEfficiency(nil, 50); len(recs) != 0 {
		t.Errorf("RankByEfficiency(nil) = %d records", len(recs))
	}
	if rows := CompareRealVsRated(nil, nil); len(rows) != 0 {
		t.Errorf("CompareRealVsRated(nil, nil) = %d rows", len(rows))
	}
	if pts := Trend(nil); len(pts) != 0 {
		t.Errorf("Trend(nil) = %d points", len(pts))
	}
}

func TestTrendOrdersByDate(t *testing.T) {
	pts := Trend(derive(
		logOf("2024-02-01", "Stihl", "FS 55", 4, 2, 1),
		logOf("2024-01-01", "Stihl", "FS 55", 6, 2, 1),
	))
	if len(pts) != 2 || pts[0].Date != "2024-01-01" || pts[1].Date != "2024-02-01" {
		t.Fatalf("trend out of order: %+v", pts)
	}
	if pts[0].LitresPerHour == nil || *pts[0].LitresPerHour != 3 {
		t.Errorf("first point L/h = %v, want 3", pts[0].LitresPerHour)
	}
}
