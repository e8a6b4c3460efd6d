package app_test

import (
	"testing"

	"puntosabor/internal/app"
	"puntosabor/internal/domain"
)

func dish(id, rest, name, cat string, price int64) domain.Dish {
	return domain.Dish{
		ID: id, RestaurantID: rest, Name: name, Category: cat, Price: price,
		Restaurant: domain.DishRestaurant{ID: rest, Name: rest},
	}
}

func names(cats []domain.Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAggregateCategories(t *testing.T) {
	dishes := []domain.Dish{
		dish("d1", "A", "Papas Fritas", "Acompañamientos", 2000),
		dish("d2", "B", "Papas Fritas", "Acompañamientos", 3000),
		dish("d3", "A", "Cazuela", "Platos de Fondo", 5000),
	}

	cats := app.AggregateCategories(dishes)
	if !equal(names(cats), []string{"Acompañamientos", "Platos de Fondo"}) {
		t.Fatalf("order: %v", names(cats))
	}

	side := cats[0]
	if side.DishCount != 2 || side.RestaurantCount != 2 {
		t.Fatalf("counts: %+v", side)
	}
	if side.MinPrice != 2000 || side.MaxPrice != 3000 || side.AvgPrice != 2500 {
		t.Fatalf("prices: %+v", side)
	}

	fondo := cats[1]
	if fondo.DishCount != 1 || fondo.RestaurantCount != 1 || fondo.MinPrice != 5000 || fondo.MaxPrice != 5000 || fondo.AvgPrice != 5000 {
		t.Fatalf("fondo: %+v", fondo)
	}

	total := 0
	for _, c := range cats {
		total += c.DishCount
		if c.DishCount != len(c.Dishes) {
			t.Fatalf("%s: DishCount %d != %d dishes", c.Name, c.DishCount, len(c.Dishes))
		}
	}
	if total != len(dishes) {
		t.Fatalf("every dish belongs to exactly one category: %d != %d", total, len(dishes))
	}
}

func TestAggregateCategories_Empty(t *testing.T) {
	if cats := app.AggregateCategories(nil); len(cats) != 0 {
		t.Fatalf("want none, got %v", cats)
	}
}

func TestAggregateCategories_RoundsAverage(t *testing.T) {
	cats := app.AggregateCategories([]domain.Dish{
		dish("d1", "A", "x", "Postres", 1000),
		dish("d2", "A", "y", "Postres", 1001),
	})
	// 1000.5 rounds half away from zero
	if cats[0].AvgPrice != 1001 {
		t.Fatalf("avg = %d", cats[0].AvgPrice)
	}
	if cats[0].RestaurantCount != 1 {
		t.Fatalf("same restaurant counted twice: %d", cats[0].RestaurantCount)
	}
}

func TestFilterCategories(t *testing.T) {
	cats := app.AggregateCategories([]domain.Dish{
		dish("d1", "A", "Papas Fritas", "Acompañamientos", 2000),
		{ID: "d2", Name: "Cazuela", Description: "con zapallo", Category: "Platos de Fondo", Price: 5000},
	})

	if got := app.FilterCategories(cats, "   "); len(got) != 2 {
		t.Fatalf("blank term should keep all, got %v", names(got))
	}
	if got := app.FilterCategories(cats, "PAPAS"); !equal(names(got), []string{"Acompañamientos"}) {
		t.Fatalf("dish name match: %v", names(got))
	}
	if got := app.FilterCategories(cats, "zapallo"); !equal(names(got), []string{"Platos de Fondo"}) {
		t.Fatalf("description match: %v", names(got))
	}
	if got := app.FilterCategories(cats, "fondo"); !equal(names(got), []string{"Platos de Fondo"}) {
		t.Fatalf("category name match: %v", names(got))
	}
	if got := app.FilterCategories(cats, "sushi"); len(got) != 0 {
		t.Fatalf("want none, got %v", names(got))
	}
}

func TestSortCategories(t *testing.T) {
	cats := app.AggregateCategories([]domain.Dish{
		dish("d1", "A", "x", "Postres", 4000),
		dish("d2", "A", "x", "Entradas", 1000),
		dish("d3", "B", "x", "Entradas", 3000),
		dish("d4", "A", "x", "Ñoquis", 6000),
		dish("d5", "A", "x", "Bebidas", 1500),
	})

	if got := names(app.SortCategories(cats, domain.CategorySortName)); !equal(got, []string{"Bebidas", "Entradas", "Ñoquis", "Postres"}) {
		t.Fatalf("by name: %v", got)
	}
	if got := names(app.SortCategories(cats, domain.CategorySortDishCount)); got[0] != "Entradas" {
		t.Fatalf("by dish count: %v", got)
	}
	// stable: ties keep first-seen order
	if got := names(app.SortCategories(cats, domain.CategorySortDishCount)); !equal(got[1:], []string{"Postres", "Ñoquis", "Bebidas"}) {
		t.Fatalf("ties not stable: %v", got)
	}
	if got := names(app.SortCategories(cats, domain.CategorySortAvgPrice)); !equal(got, []string{"Bebidas", "Entradas", "Postres", "Ñoquis"}) {
		t.Fatalf("by avg price: %v", got)
	}
	if cats[0].Name != "Postres" {
		t.Fatal("input was reordered")
	}
}

func TestCategories_Composes(t *testing.T) {
	got := app.Categories([]domain.Dish{
		dish("d1", "A", "Pie de limón", "Postres", 3000),
		dish("d2", "A", "Limonada", "Bebidas", 2000),
		dish("d3", "A", "Cazuela", "Platos de Fondo", 5000),
	}, "lim", domain.CategorySortAvgPrice)
	if !equal(names(got), []string{"Bebidas", "Postres"}) {
		t.Fatalf("got %v", names(got))
	}
}
