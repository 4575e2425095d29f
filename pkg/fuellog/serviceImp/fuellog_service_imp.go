package serviceImp

import (
	"errors"
	"strings"
	"time"

	"brushfuel/entities"
	"brushfuel/pkg/fuellog/repository"
	svc "brushfuel/pkg/fuellog/service"
	"brushfuel/pkg/metrics"
)

type logSvc struct{ r repository.FuelLogRepository }

func New(r repository.FuelLogRepository) svc.FuelLogService { return &logSvc{r} }

func (s *logSvc) Create(l *entities.FuelLog) (*entities.FuelLog, error) {
	if l == nil {
		return nil, errors.New("nil log")
	}
	l.Brand = strings.TrimSpace(l.Brand)
	l.Model = strings.TrimSpace(l.Model)
	l.Notes = strings.TrimSpace(l.Notes)
	l.Equipment = strings.TrimSpace(l.Equipment)
	if l.Equipment == "" {
		l.Equipment = entities.DefaultEquipmentLabel
	}
	if err := validate(l); err != nil {
		return nil, err
	}
	// a payload 0 on either cost field means "not informed"
	l.PricePerLitre = positiveOrNil(l.PricePerLitre)
	l.TotalCost = positiveOrNil(l.TotalCost)
	l.PricePerLitre, l.TotalCost = metrics.ResolveCosts(l.Litres, l.PricePerLitre, l.TotalCost)
	if err := s.r.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *logSvc) List(f repository.Filter) ([]metrics.DerivedRecord, error) {
	logs, err := s.r.List(f)
	if err != nil {
		return nil, err
	}
	return metrics.ComputeAll(logs), nil
}

func (s *logSvc) UpdatePartial(id uint, p svc.LogPatch) (*entities.FuelLog, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Date != nil {
		cur.Date = *p.Date
	}
	if p.Brand != nil {
		cur.Brand = strings.TrimSpace(*p.Brand)
	}
	if p.Model != nil {
		cur.Model = strings.TrimSpace(*p.Model)
	}
	if p.Equipment != nil {
		cur.Equipment = strings.TrimSpace(*p.Equipment)
	}
	if p.Litres != nil {
		cur.Litres = *p.Litres
	}
	if p.Hours != nil {
		cur.Hours = *p.Hours
	}
	if p.AreaValue != nil {
		cur.AreaValue = *p.AreaValue
	}
	if p.AreaUnit != nil {
		cur.AreaUnit = *p.AreaUnit
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	if p.PricePerLitre != nil {
		cur.PricePerLitre = positiveOrNil(p.PricePerLitre)
	}
	if p.TotalCost != nil {
		cur.TotalCost = positiveOrNil(p.TotalCost)
	}
	if err := validate(cur); err != nil {
		return nil, err
	}
	// re-derive the untouched cost side when fuel volume or either cost changes
	if p.Litres != nil || p.PricePerLitre != nil || p.TotalCost != nil {
		switch {
		case p.PricePerLitre != nil && p.TotalCost == nil:
			cur.TotalCost = nil
		case p.TotalCost != nil && p.PricePerLitre == nil:
			cur.PricePerLitre = nil
		case p.PricePerLitre == nil && p.TotalCost == nil:
			// litres changed: the per-litre price stays, the total follows it
			if cur.PricePerLitre != nil {
				cur.TotalCost = nil
			}
		}
		cur.PricePerLitre, cur.TotalCost = metrics.ResolveCosts(cur.Litres, cur.PricePerLitre, cur.TotalCost)
	}
	return cur, s.r.Update(cur)
}

func (s *logSvc) Delete(id uint) error { return s.r.Delete(id) }

func validate(l *entities.FuelLog) error {
	if l.Date == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse("2006-01-02", l.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if l.Brand == "" || l.Model == "" {
		return errors.New("brand and model are required")
	}
	if l.Litres <= 0 {
		return errors.New("litres must be > 0")
	}
	if l.Hours <= 0 {
		return errors.New("hours must be > 0")
	}
	if l.AreaValue <= 0 {
		return errors.New("area must be > 0")
	}
	if !metrics.ValidUnit(l.AreaUnit) {
		return errors.New("area_unit must be m2 or ha")
	}
	return nil
}

func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
