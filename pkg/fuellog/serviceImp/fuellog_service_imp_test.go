package serviceImp

import (
	"path/filepath"
	"testing"

	"brushfuel/database"
	"brushfuel/entities"
	"brushfuel/pkg/fuellog/repository"
	"brushfuel/pkg/fuellog/repositoryImp"
	svc "brushfuel/pkg/fuellog/service"
)

func newSvc(t *testing.T) svc.FuelLogService {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return New(repositoryImp.New(db))
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func baseLog() *entities.FuelLog {
	return &entities.FuelLog{
		Date: "2024-03-10", Brand: "Stihl", Model: "FS 220",
		Litres: 10, Hours: 2, AreaValue: 1, AreaUnit: "ha",
	}
}

func TestCreateResolvesCosts(t *testing.T) {
	s := newSvc(t)
	in := baseLog()
	in.PricePerLitre = fptr(2.5)
	out, err := s.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.LogID == 0 {
		t.Error("expected assigned id")
	}
	if out.TotalCost == nil || *out.TotalCost != 25 {
		t.Errorf("total = %v, want 25 derived from price", out.TotalCost)
	}
	if out.Equipment != entities.DefaultEquipmentLabel {
		t.Errorf("equipment = %q, want default label", out.Equipment)
	}
}

func TestCreateDerivesPriceFromTotal(t *testing.T) {
	s := newSvc(t)
	in := baseLog()
	in.TotalCost = fptr(30.0)
	out, err := s.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.PricePerLitre == nil || *out.PricePerLitre != 3 {
		t.Errorf("price = %v, want 3 derived from total", out.PricePerLitre)
	}
}

func TestCreateZeroCostMeansAbsent(t *testing.T) {
	s := newSvc(t)
	in := baseLog()
	in.PricePerLitre = fptr(0.0)
	in.TotalCost = fptr(0.0)
	out, err := s.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.PricePerLitre != nil || out.TotalCost != nil {
		t.Errorf("zero payload costs must be stored absent, got %v / %v", out.PricePerLitre, out.TotalCost)
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	s := newSvc(t)
	cases := []struct {
		name   string
		mutate func(*entities.FuelLog)
	}{
		{"zero litres", func(l *entities.FuelLog) { l.Litres = 0 }},
		{"negative hours", func(l *entities.FuelLog) { l.Hours = -1 }},
		{"zero area", func(l *entities.FuelLog) { l.AreaValue = 0 }},
		{"bad unit", func(l *entities.FuelLog) { l.AreaUnit = "acre" }},
		{"bad date", func(l *entities.FuelLog) { l.Date = "10/03/2024" }},
		{"no brand", func(l *entities.FuelLog) { l.Brand = " " }},
	}
	for _, tc := range cases {
		l := baseLog()
		tc.mutate(l)
		if _, err := s.Create(l); err == nil {
			t.Errorf("%s: create accepted an invalid log", tc.name)
		}
	}
}

func TestListNewestFirstWithDerived(t *testing.T) {
	s := newSvc(t)
	older := baseLog()
	older.Date = "2024-01-05"
	newer := baseLog()
	newer.Date = "2024-02-05"
	newer.Notes = "east pasture"
	for _, l := range []*entities.FuelLog{older, newer} {
		if _, err := s.Create(l); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	recs, err := s.List(repository.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 || recs[0].Date != "2024-02-05" {
		t.Fatalf("expected newest first, got %+v", recs)
	}
	if recs[0].LitresPerHour == nil || *recs[0].LitresPerHour != 5 {
		t.Errorf("derived L/h = %v, want 5", recs[0].LitresPerHour)
	}

	found, err := s.List(repository.Filter{Query: "EAST"})
	if err != nil {
		t.Fatalf("list query: %v", err)
	}
	if len(found) != 1 || found[0].Notes != "east pasture" {
		t.Errorf("case-insensitive note search failed: %+v", found)
	}

	none, err := s.List(repository.Filter{Brand: "Husqvarna"})
	if err != nil {
		t.Fatalf("list brand: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("brand filter returned %d records, want 0", len(none))
	}
}

func TestUpdatePartialReResolvesCosts(t *testing.T) {
	s := newSvc(t)
	in := baseLog()
	in.PricePerLitre = fptr(2.0)
	created, err := s.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// litres change keeps the per-litre price, total follows
	out, err := s.UpdatePartial(created.LogID, svc.LogPatch{Litres: fptr(20)})
	if err != nil {
		t.Fatalf("patch litres: %v", err)
	}
	if out.TotalCost == nil || *out.TotalCost != 40 {
		t.Errorf("total after litres patch = %v, want 40", out.TotalCost)
	}

	out, err = s.UpdatePartial(created.LogID, svc.LogPatch{PricePerLitre: fptr(3)})
	if err != nil {
		t.Fatalf("patch price: %v", err)
	}
	if out.TotalCost == nil || *out.TotalCost != 60 {
		t.Errorf("total after price patch = %v, want 60", out.TotalCost)
	}

	out, err = s.UpdatePartial(created.LogID, svc.LogPatch{TotalCost: fptr(30)})
	if err != nil {
		t.Fatalf("patch total: %v", err)
	}
	if out.PricePerLitre == nil || *out.PricePerLitre != 1.5 {
		t.Errorf("price after total patch = %v, want 1.5", out.PricePerLitre)
	}

	// clearing the price clears the derived total too
	out, err = s.UpdatePartial(created.LogID, svc.LogPatch{PricePerLitre: fptr(0)})
	if err != nil {
		t.Fatalf("patch clear: %v", err)
	}
	if out.PricePerLitre != nil || out.TotalCost != nil {
		t.Errorf("costs after clearing = %v / %v, want both absent", out.PricePerLitre, out.TotalCost)
	}
}

func TestUpdatePartialValidates(t *testing.T) {
	s := newSvc(t)
	created, err := s.Create(baseLog())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.UpdatePartial(created.LogID, svc.LogPatch{Hours: fptr(0)}); err == nil {
		t.Error("patch accepted zero hours")
	}
	if _, err := s.UpdatePartial(created.LogID, svc.LogPatch{AreaUnit: sptr("km2")}); err == nil {
		t.Error("patch accepted an unknown unit")
	}
}

func TestDeleteMissing(t *testing.T) {
	s := newSvc(t)
	if err := s.Delete(12345); err == nil {
		t.Fatal("deleting a missing id should fail")
	}
}
