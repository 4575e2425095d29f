package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"brushfuel/entities"
)

// ParseFuelLogs reads fuel log rows from the first sheet of an xlsx workbook.
// Rows that cannot be parsed are reported in the RowError slice; the returned
// error covers only unreadable files. Deeper validation happens on create.
func ParseFuelLogs(r io.Reader) ([]FuelLogRow, []RowError, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, errors.New("workbook has no header row")
	}

	h := indexHeader(rows[0])
	cDate := h.findAny("date", "data", "dia")
	cBrand := h.findAny("brand", "marca")
	cModel := h.findAny("model", "modelo")
	cEquip := h.findAny("equipment", "equipamento", "identificacao")
	cLitres := h.findAny("litres", "liters", "litros")
	cHours := h.findAny("hours", "horas")
	cArea := h.findAny("area_value", "area_valor", "area")
	cUnit := h.findAny("area_unit", "area_unidade", "unidade", "unit")
	cPrice := h.findAny("price_per_litre", "preco_por_litro", "preco_litro")
	cCost := h.findAny("total_cost", "custo_total", "custo")
	cNotes := h.findAny("notes", "observacoes", "obs")

	if cDate == -1 || cBrand == -1 || cModel == -1 || cLitres == -1 || cHours == -1 || cArea == -1 {
		return nil, nil, fmt.Errorf("missing required columns, found headers: %v", rows[0])
	}

	var logs []FuelLogRow
	var errs []RowError
	for i, rec := range rows[1:] {
		rowNo := i + 2
		if blankRow(rec) {
			continue
		}
		litres, ok := parseFloat(get(rec, cLitres))
		if !ok {
			errs = append(errs, RowError{Row: rowNo, Reason: "litres is not a number"})
			continue
		}
		hours, ok := parseFloat(get(rec, cHours))
		if !ok {
			errs = append(errs, RowError{Row: rowNo, Reason: "hours is not a number"})
			continue
		}
		area, ok := parseFloat(get(rec, cArea))
		if !ok {
			errs = append(errs, RowError{Row: rowNo, Reason: "area is not a number"})
			continue
		}

		l := entities.FuelLog{
			Date:      normalizeDate(get(rec, cDate)),
			Brand:     get(rec, cBrand),
			Model:     get(rec, cModel),
			Equipment: get(rec, cEquip),
			Litres:    litres,
			Hours:     hours,
			AreaValue: area,
			AreaUnit:  normalizeUnit(get(rec, cUnit)),
			Notes:     get(rec, cNotes),
		}
		if v, ok := parseFloat(get(rec, cPrice)); ok {
			l.PricePerLitre = &v
		}
		if v, ok := parseFloat(get(rec, cCost)); ok {
			l.TotalCost = &v
		}
		logs = append(logs, FuelLogRow{Row: rowNo, Log: l})
	}
	return logs, errs, nil
}

func blankRow(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// normalizeDate passes YYYY-MM-DD through and converts the Brazilian
// DD/MM/YYYY form. Anything else is left for create-side validation.
func normalizeDate(s string) string {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s
	}
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}

func normalizeUnit(s string) string {
	switch norm(s) {
	case "", "m2", "m²":
		return "m2"
	case "ha", "hectare", "hectares":
		return "ha"
	}
	return s
}
