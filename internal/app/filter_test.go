package app_test

import (
	"testing"

	"puntosabor/internal/app"
	"puntosabor/internal/domain"
)

func ids(rs []domain.Restaurant) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func priced(id, name, specialty string, lo, hi int64) domain.Restaurant {
	return domain.Restaurant{ID: id, Name: name, Specialty: specialty, PriceRange: &domain.PriceRange{Min: lo, Max: hi}}
}

func TestFilterRestaurants(t *testing.T) {
	site := "https://nonna.cl"
	rs := []domain.Restaurant{
		priced("a", "Donde Juan", "Chilena", 5000, 10000),
		{ID: "b", Name: "La Nonna", Specialty: "Italiana", Website: &site},
		priced("c", "El Rincón de Juan", "Chilena", 3000, 6000),
	}

	for _, all := range []string{"", domain.AllSpecialties, "all"} {
		if got := ids(app.FilterRestaurants(rs, domain.RestaurantFilter{Specialty: all})); !equal(got, []string{"a", "b", "c"}) {
			t.Fatalf("%q should be identity, got %v", all, got)
		}
	}
	if got := ids(app.FilterRestaurants(rs, domain.RestaurantFilter{Specialty: "Chilena", Name: "JUAN"})); !equal(got, []string{"a", "c"}) {
		t.Fatalf("specialty+name: %v", got)
	}
	if got := ids(app.FilterRestaurants(rs, domain.RestaurantFilter{WebsiteRequired: true})); !equal(got, []string{"b"}) {
		t.Fatalf("website: %v", got)
	}
	if got := app.FilterRestaurants(rs, domain.RestaurantFilter{Specialty: "Peruana"}); len(got) != 0 {
		t.Fatalf("want none, got %v", ids(got))
	}
}

func TestSortRestaurants_ByPrice(t *testing.T) {
	rs := []domain.Restaurant{
		priced("A", "A", "x", 5000, 10000),
		{ID: "N", Name: "N"},
		priced("B", "B", "x", 3000, 8000),
	}
	got := ids(app.SortRestaurants(rs, domain.RestaurantSortPrice))
	if !equal(got, []string{"B", "A", "N"}) {
		t.Fatalf("got %v", got)
	}
	if rs[0].ID != "A" {
		t.Fatal("input was reordered")
	}
}

func TestSortRestaurants_ByNameAndSpecialty(t *testing.T) {
	rs := []domain.Restaurant{
		{ID: "1", Name: "Ñandú", Specialty: "Peruana"},
		{ID: "2", Name: "Álamo", Specialty: "Chilena"},
		{ID: "3", Name: "Zeta", Specialty: "Chilena"},
		{ID: "4", Name: "Nube", Specialty: "Árabe"},
	}
	if got := ids(app.SortRestaurants(rs, domain.RestaurantSortName)); !equal(got, []string{"2", "4", "1", "3"}) {
		t.Fatalf("by name: %v", got)
	}
	// ties keep their input order
	if got := ids(app.SortRestaurants(rs, domain.RestaurantSortSpecialty)); !equal(got, []string{"4", "2", "3", "1"}) {
		t.Fatalf("by specialty: %v", got)
	}
}

func TestSortRestaurants_ByNameIsStable(t *testing.T) {
	rs := []domain.Restaurant{
		{ID: "3", Name: "Sabor"},
		{ID: "1", Name: "Ébano"},
		{ID: "2", Name: "Sabor"},
		{ID: "4", Name: "Ebano"},
	}
	// "Ébano" and "Ebano" differ only by accent and collate apart; both
	// "Sabor" keep their input order.
	got := ids(app.SortRestaurants(rs, domain.RestaurantSortName))
	if got[2] != "3" || got[3] != "2" {
		t.Fatalf("equal names reordered: %v", got)
	}
	if !equal(got[:2], []string{"4", "1"}) {
		t.Fatalf("accented name order: %v", got)
	}
}

func TestSpecialtyOptions(t *testing.T) {
	rs := []domain.Restaurant{
		{Specialty: "Chilena"}, {Specialty: "Italiana"}, {Specialty: "Chilena"},
	}
	if got := app.SpecialtyOptions(rs); !equal(got, []string{"Todos", "Chilena", "Italiana"}) {
		t.Fatalf("got %v", got)
	}
	if got := app.SpecialtyOptions(nil); !equal(got, []string{"Todos"}) {
		t.Fatalf("empty: %v", got)
	}
}
