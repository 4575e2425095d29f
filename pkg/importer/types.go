package importer

import "brushfuel/entities"

// RowError records why one row of an import file was rejected.
// Row is the 1-based row number in the source file.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// FuelLogRow pairs a parsed log with its source row so create-side
// rejections can point back at the file.
type FuelLogRow struct {
	Row int
	Log entities.FuelLog
}

// CatalogRow is a parsed catalog line before service-side validation.
type CatalogRow struct {
	Brand string
	Model string
	Rated *float64
}
