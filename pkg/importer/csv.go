package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseCatalogCSV reads (brand, model, rated L/h) rows. The rated column is
// optional per row; pairs with a blank brand or model are rejected.
func ParseCatalogCSV(r io.Reader) ([]CatalogRow, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	h := indexHeader(head)
	cBrand := h.findAny("brand", "marca")
	cModel := h.findAny("model", "modelo")
	cRated := h.findAny("rated_litres_per_hour", "consumo_fabricante_l_h", "rated", "consumo")
	if cBrand == -1 || cModel == -1 {
		return nil, nil, fmt.Errorf("missing brand/model columns, found headers: %v", head)
	}

	var out []CatalogRow
	var errs []RowError
	rowNo := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, err
		}
		rowNo++
		row := CatalogRow{Brand: get(rec, cBrand), Model: get(rec, cModel)}
		if row.Brand == "" || row.Model == "" {
			errs = append(errs, RowError{Row: rowNo, Reason: "brand and model are required"})
			continue
		}
		if v, ok := parseFloat(get(rec, cRated)); ok {
			row.Rated = &v
		}
		out = append(out, row)
	}
	return out, errs, nil
}
