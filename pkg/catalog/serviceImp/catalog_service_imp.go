package serviceImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"brushfuel/entities"
	"brushfuel/pkg/catalog/repository"
	svc "brushfuel/pkg/catalog/service"
)

type catalogSvc struct{ r repository.CatalogRepository }

func New(r repository.CatalogRepository) svc.CatalogService { return &catalogSvc{r} }

func (s *catalogSvc) List(brand string) ([]entities.EquipmentModel, error) {
	return s.r.List(strings.TrimSpace(brand))
}

func (s *catalogSvc) Brands() ([]string, error) { return s.r.Brands() }

func (s *catalogSvc) Upsert(e svc.Entry) (*entities.EquipmentModel, error) {
	m, ok := normalize(e)
	if !ok {
		return nil, errors.New("brand and model are required")
	}
	if err := s.r.Upsert(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *catalogSvc) RatedFor(brand, model string) (*float64, error) {
	m, err := s.r.FindByPair(strings.TrimSpace(brand), strings.TrimSpace(model))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.RatedLitresPerHour, nil
}

// ImportEntries bulk-upserts the valid entries and counts the rest as skipped.
func (s *catalogSvc) ImportEntries(entries []svc.Entry) (int, int, error) {
	var ms []entities.EquipmentModel
	skipped := 0
	for _, e := range entries {
		m, ok := normalize(e)
		if !ok {
			skipped++
			continue
		}
		ms = append(ms, m)
	}
	if err := s.r.BulkUpsert(ms); err != nil {
		return 0, 0, err
	}
	return len(ms), skipped, nil
}

// normalize trims the pair and drops non-positive rated figures.
func normalize(e svc.Entry) (entities.EquipmentModel, bool) {
	m := entities.EquipmentModel{
		Brand: strings.TrimSpace(e.Brand),
		Model: strings.TrimSpace(e.Model),
	}
	if m.Brand == "" || m.Model == "" {
		return m, false
	}
	if e.Rated != nil && *e.Rated > 0 {
		m.RatedLitresPerHour = e.Rated
	}
	return m, true
}
