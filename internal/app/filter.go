package app

import (
	"cmp"
	"slices"
	"strings"

	"puntosabor/internal/domain"
)

// FilterRestaurants ANDs the specialty, name and website predicates,
// preserving input order.
func FilterRestaurants(rs []domain.Restaurant, f domain.RestaurantFilter) []domain.Restaurant {
	anySpecialty := isAllSpecialties(f.Specialty)
	name := strings.ToLower(f.Name)

	out := make([]domain.Restaurant, 0, len(rs))
	for _, r := range rs {
		if !anySpecialty && r.Specialty != f.Specialty {
			continue
		}
		if !containsFold(r.Name, name) {
			continue
		}
		if f.WebsiteRequired && !r.HasWebsite() {
			continue
		}
		out = append(out, r)
	}
	return out
}

func isAllSpecialties(s string) bool {
	return s == "" || s == domain.AllSpecialties || strings.EqualFold(s, "all")
}

// SortRestaurants returns a stably sorted copy. Restaurants without a price
// range sort after priced ones.
func SortRestaurants(rs []domain.Restaurant, by domain.RestaurantSort) []domain.Restaurant {
	out := slices.Clone(rs)
	switch by {
	case domain.RestaurantSortPrice:
		slices.SortStableFunc(out, func(a, b domain.Restaurant) int {
			switch {
			case a.PriceRange == nil && b.PriceRange == nil:
				return 0
			case a.PriceRange == nil:
				return 1
			case b.PriceRange == nil:
				return -1
			}
			return cmp.Compare(a.PriceRange.Min, b.PriceRange.Min)
		})
	case domain.RestaurantSortSpecialty:
		col := newCollator()
		slices.SortStableFunc(out, func(a, b domain.Restaurant) int { return col.CompareString(a.Specialty, b.Specialty) })
	default:
		col := newCollator()
		slices.SortStableFunc(out, func(a, b domain.Restaurant) int { return col.CompareString(a.Name, b.Name) })
	}
	return out
}

// SpecialtyOptions lists distinct specialties in first-seen order behind the
// "Todos" sentinel.
func SpecialtyOptions(rs []domain.Restaurant) []string {
	out := []string{domain.AllSpecialties}
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if _, ok := seen[r.Specialty]; ok {
			continue
		}
		seen[r.Specialty] = struct{}{}
		out = append(out, r.Specialty)
	}
	return out
}
