package app

import (
	"strings"

	"puntosabor/internal/domain"
)

const defaultPreviewSize = 3

// Search matches term against restaurant name/specialty and dish
// name/description/category. A blank term yields an empty, non-nil result:
// "no search" is distinct from "no matches".
//
// When the restaurant itself matched, the first PreviewSize dishes are shown
// even if some dishes matched too, unless opts.PreferDishMatches is set.
func Search(restaurants []domain.Restaurant, term string, opts domain.SearchOptions) []domain.SearchResult {
	results := []domain.SearchResult{}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return results
	}
	preview := opts.PreviewSize
	if preview <= 0 {
		preview = defaultPreviewSize
	}

	for _, r := range restaurants {
		restaurantMatches := containsFold(r.Specialty, needle) || containsFold(r.Name, needle)
		matching := matchingDishes(r.Dishes, needle)
		if !restaurantMatches && len(matching) == 0 {
			continue
		}

		res := domain.SearchResult{Restaurant: r, Dishes: matching, MatchType: domain.MatchDish}
		if restaurantMatches {
			res.MatchType = domain.MatchRestaurant
			if !opts.PreferDishMatches || len(matching) == 0 {
				res.Dishes = r.Dishes[:min(preview, len(r.Dishes))]
			}
		}
		results = append(results, res)
	}
	return results
}

func matchingDishes(dishes []domain.Dish, needle string) []domain.Dish {
	var out []domain.Dish
	for _, d := range dishes {
		if containsFold(d.Name, needle) || containsFold(d.Description, needle) || containsFold(d.Category, needle) {
			out = append(out, d)
		}
	}
	return out
}

// SearchDishes returns dishes whose name contains term.
func SearchDishes(dishes []domain.Dish, term string) []domain.Dish {
	out := []domain.Dish{}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return out
	}
	for _, d := range dishes {
		if containsFold(d.Name, needle) {
			out = append(out, d)
		}
	}
	return out
}

// RestaurantsByDish returns restaurants serving a dish whose name contains
// term, each trimmed down to the matching dishes.
func RestaurantsByDish(restaurants []domain.Restaurant, term string) []domain.Restaurant {
	out := []domain.Restaurant{}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return out
	}
	for _, r := range restaurants {
		var hits []domain.Dish
		for _, d := range r.Dishes {
			if containsFold(d.Name, needle) {
				hits = append(hits, d)
			}
		}
		if len(hits) > 0 {
			r.Dishes = hits
			out = append(out, r)
		}
	}
	return out
}
