package app

import (
	"encoding/json"
	"errors"
	"testing"

	"puntosabor/internal/domain"
)

func decodeDoc(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func TestMapRestaurant_Nested(t *testing.T) {
	doc := decodeDoc(t, `{
		"id": "r1",
		"data": {
			"name": "Donde Juan",
			"specialty": "Chilena",
			"address": "Av. Siempre Viva 742",
			"phone": "+56 9 1234 5678",
			"upTime": "12:00 - 23:00",
			"priceRange": "5000 - 10000",
			"website": "https://dondejuan.cl",
			"services": [{"delivery": true}, {"takeOut": true}, {"booking": false}]
		},
		"dishes": [
			{"id": "d1", "data": {"name": "Cazuela", "description": "de vacuno", "price": 5000, "category": "Platos de Fondo"}},
			{"id": "d2", "data": {"name": "Sin precio", "category": "Otros"}},
			"garbage"
		]
	}`)

	r, err := mapRestaurant(doc)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.ID != "r1" || r.Name != "Donde Juan" || r.Specialty != "Chilena" || r.UpTime != "12:00 - 23:00" {
		t.Fatalf("fields: %+v", r)
	}
	if r.PriceRange == nil || *r.PriceRange != (domain.PriceRange{Min: 5000, Max: 10000}) {
		t.Fatalf("price range: %+v", r.PriceRange)
	}
	if !r.HasWebsite() {
		t.Fatal("website lost")
	}
	if !r.Services.Delivery || !r.Services.TakeOut || r.Services.Booking || r.Services.Parking {
		t.Fatalf("services: %+v", r.Services)
	}
	if len(r.Dishes) != 1 {
		t.Fatalf("want the priced dish only, got %+v", r.Dishes)
	}
	d := r.Dishes[0]
	if d.RestaurantID != "r1" || d.Restaurant.Name != "Donde Juan" || d.Restaurant.Specialty != "Chilena" || d.Price != 5000 {
		t.Fatalf("dish: %+v", d)
	}
}

func TestMapRestaurant_FlatAndObjectPrice(t *testing.T) {
	doc := decodeDoc(t, `{
		"_id": 42,
		"name": "La Nonna",
		"cuisine": "Italiana",
		"priceRange": {"from": "$3.000", "to": 8000},
		"services": {"take_out": true, "parking": true}
	}`)
	r, err := mapRestaurant(doc)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.ID != "42" || r.Specialty != "Italiana" {
		t.Fatalf("fields: %+v", r)
	}
	if r.PriceRange == nil || r.PriceRange.Min != 3000 || r.PriceRange.Max != 8000 {
		t.Fatalf("price range: %+v", r.PriceRange)
	}
	if !r.Services.TakeOut || !r.Services.Parking {
		t.Fatalf("services: %+v", r.Services)
	}
	if r.Dishes != nil {
		t.Fatal("flat document must not invent dishes")
	}
}

func TestMapRestaurant_BadPriceRangeIsDropped(t *testing.T) {
	r, err := mapRestaurant(decodeDoc(t, `{"id":"r1","name":"X","priceRange":"consultar"}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.PriceRange != nil {
		t.Fatalf("want nil, got %+v", r.PriceRange)
	}
}

func TestMapRestaurant_RequiredFields(t *testing.T) {
	for _, s := range []string{`{"name":"X"}`, `{"id":"r1","data":{"name":"  "}}`} {
		if _, err := mapRestaurant(decodeDoc(t, s)); !errors.Is(err, errMissingField) {
			t.Fatalf("%s: want errMissingField, got %v", s, err)
		}
	}
}

func TestMapDish_FlatExport(t *testing.T) {
	d, err := mapDish(decodeDoc(t, `{
		"id": "d9",
		"name": "Lasagna",
		"price": "$7.500",
		"category": "Pastas",
		"restaurant": {"id": "r2", "name": "La Nonna", "specialty": "Italiana"}
	}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Price != 7500 || d.RestaurantID != "r2" || d.Restaurant.Name != "La Nonna" {
		t.Fatalf("dish: %+v", d)
	}

	if _, err := mapDish(decodeDoc(t, `{"id":"d1","name":"x","price":-1}`)); err == nil {
		t.Fatal("negative price accepted")
	}
}

func TestMapPriceRange_Rejects(t *testing.T) {
	for _, v := range []any{
		map[string]any{"min": 9000.0, "max": 1000.0},
		map[string]any{"min": 1000.0},
		true,
	} {
		if _, err := mapPriceRange(v); !errors.Is(err, domain.ErrInvalidPriceRange) {
			t.Fatalf("%v: want ErrInvalidPriceRange, got %v", v, err)
		}
	}
	if pr, err := mapPriceRange(nil); pr != nil || err != nil {
		t.Fatalf("absent: %v %v", pr, err)
	}
}
