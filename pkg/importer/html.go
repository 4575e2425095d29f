package importer

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseCatalogHTML extracts catalog pairs from the first <table> of a
// manufacturer spec page. Tables with three or more columns are read as
// (brand, model, rated); two-column tables use fallbackBrand. Header rows
// come out as <th> cells and fall through naturally.
func ParseCatalogHTML(r io.Reader, fallbackBrand string) ([]CatalogRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var out []CatalogRow
	doc.Find("table").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var texts []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(td.Text()))
		})

		var row CatalogRow
		switch {
		case len(texts) >= 3:
			row = CatalogRow{Brand: texts[0], Model: texts[1], Rated: firstNumber(texts[2])}
		case len(texts) == 2:
			row = CatalogRow{Brand: strings.TrimSpace(fallbackBrand), Model: texts[0], Rated: firstNumber(texts[1])}
		default:
			return
		}
		if row.Brand == "" || row.Model == "" {
			return
		}
		out = append(out, row)
	})
	if len(out) == 0 {
		return nil, errors.New("no usable table rows found")
	}
	return out, nil
}

// firstNumber pulls the leading numeric value out of cells like "0,8 L/h".
func firstNumber(s string) *float64 {
	s = strings.ReplaceAll(s, ",", ".")
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	end := start
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[start:end], "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
