package export

import (
	"github.com/xuri/excelize/v2"

	"brushfuel/pkg/metrics"
	"brushfuel/pkg/report"
)

// ContentType is the MIME type browsers expect for .xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names are kept from the spreadsheets users already exchange.
const (
	SheetHistory    = "Historico"
	SheetMonthly    = "Consolidado Mensal"
	SheetEquipment  = "Por Equipamento"
	SheetRanking    = "Ranking Eficiencia"
	SheetComparison = "Real_vs_Fabricante"
)

// History writes the filtered register with every derived column.
func History(recs []metrics.DerivedRecord) (*excelize.File, error) {
	f, err := newSheet(SheetHistory)
	if err != nil {
		return nil, err
	}
	head := []interface{}{
		"id", "date", "brand", "model", "equipment", "litres", "hours",
		"area_value", "area_unit", "price_per_litre", "total_cost", "notes",
		"area_m2", "litres_per_hour", "litres_per_m2", "litres_per_ha",
		"cost_per_hour", "cost_per_ha",
	}
	if err := writeRow(f, SheetHistory, 1, head); err != nil {
		return nil, err
	}
	for i, r := range recs {
		row := []interface{}{
			r.LogID, r.Date, r.Brand, r.Model, r.Equipment, r.Litres, r.Hours,
			r.AreaValue, r.AreaUnit, opt(r.PricePerLitre), opt(r.TotalCost), r.Notes,
			r.AreaM2, opt(r.LitresPerHour), opt(r.LitresPerM2), opt(r.LitresPerHa),
			opt(r.CostPerHour), opt(r.CostPerHa),
		}
		if err := writeRow(f, SheetHistory, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func MonthlyReport(rows []report.MonthlyRow) (*excelize.File, error) {
	f, err := newSheet(SheetMonthly)
	if err != nil {
		return nil, err
	}
	head := []interface{}{
		"month", "total_litres", "total_hours", "total_area_m2", "total_cost",
		"mean_litres_per_hour", "mean_litres_per_ha",
	}
	if err := writeRow(f, SheetMonthly, 1, head); err != nil {
		return nil, err
	}
	for i, r := range rows {
		row := []interface{}{
			r.Month, r.TotalLitres, r.TotalHours, r.TotalAreaM2, opt(r.TotalCost),
			opt(r.MeanLitresPerHour), opt(r.MeanLitresPerHa),
		}
		if err := writeRow(f, SheetMonthly, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func EquipmentReport(rows []report.EquipmentRow) (*excelize.File, error) {
	f, err := newSheet(SheetEquipment)
	if err != nil {
		return nil, err
	}
	head := []interface{}{
		"brand", "model", "refuels", "total_litres", "total_hours",
		"total_area_m2", "total_cost", "mean_litres_per_hour", "mean_litres_per_ha",
	}
	if err := writeRow(f, SheetEquipment, 1, head); err != nil {
		return nil, err
	}
	for i, r := range rows {
		row := []interface{}{
			r.Brand, r.Model, r.Refuels, r.TotalLitres, r.TotalHours,
			r.TotalAreaM2, opt(r.TotalCost), opt(r.MeanLitresPerHour), opt(r.MeanLitresPerHa),
		}
		if err := writeRow(f, SheetEquipment, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// RankingReport keeps the column order of the on-screen ranking table.
func RankingReport(recs []metrics.DerivedRecord) (*excelize.File, error) {
	f, err := newSheet(SheetRanking)
	if err != nil {
		return nil, err
	}
	head := []interface{}{
		"date", "brand", "model", "equipment", "litres", "hours",
		"area_unit", "area_value", "litres_per_ha", "litres_per_hour",
		"total_cost", "notes",
	}
	if err := writeRow(f, SheetRanking, 1, head); err != nil {
		return nil, err
	}
	for i, r := range recs {
		row := []interface{}{
			r.Date, r.Brand, r.Model, r.Equipment, r.Litres, r.Hours,
			r.AreaUnit, r.AreaValue, opt(r.LitresPerHa), opt(r.LitresPerHour),
			opt(r.TotalCost), r.Notes,
		}
		if err := writeRow(f, SheetRanking, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func ComparisonReport(rows []report.ComparisonRow) (*excelize.File, error) {
	f, err := newSheet(SheetComparison)
	if err != nil {
		return nil, err
	}
	head := []interface{}{
		"brand", "model", "real_litres_per_hour", "rated_litres_per_hour", "percent_diff",
	}
	if err := writeRow(f, SheetComparison, 1, head); err != nil {
		return nil, err
	}
	for i, r := range rows {
		row := []interface{}{
			r.Brand, r.Model, opt(r.RealLitresPerHour), opt(r.RatedLitresPerHour), opt(r.PercentDiff),
		}
		if err := writeRow(f, SheetComparison, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Bytes serializes the workbook for an HTTP download.
func Bytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newSheet(name string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, ref, &cells)
}

// opt maps an absent value to an empty cell, never to 0.
func opt(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
