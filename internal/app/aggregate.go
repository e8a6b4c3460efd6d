package app

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"puntosabor/internal/domain"
)

type categoryAcc struct {
	name        string
	dishes      []domain.Dish
	restaurants map[string]struct{}
	min, max    int64
	sum         int64
}

// AggregateCategories rolls dishes up by category label in a single pass.
// Categories come out in first-seen order; zero-dish categories cannot occur.
func AggregateCategories(dishes []domain.Dish) []domain.Category {
	index := make(map[string]*categoryAcc)
	var order []*categoryAcc

	for _, d := range dishes {
		acc, ok := index[d.Category]
		if !ok {
			acc = &categoryAcc{
				name:        d.Category,
				restaurants: make(map[string]struct{}),
				min:         math.MaxInt64,
			}
			index[d.Category] = acc
			order = append(order, acc)
		}
		acc.dishes = append(acc.dishes, d)
		acc.restaurants[d.Restaurant.Name] = struct{}{}
		acc.min = min(acc.min, d.Price)
		acc.max = max(acc.max, d.Price)
		acc.sum += d.Price
	}

	out := make([]domain.Category, 0, len(order))
	for _, acc := range order {
		out = append(out, acc.finalize())
	}
	return out
}

func (a *categoryAcc) finalize() domain.Category {
	c := domain.Category{
		Name:            a.name,
		Dishes:          a.dishes,
		RestaurantCount: len(a.restaurants),
		DishCount:       len(a.dishes),
		MaxPrice:        a.max,
	}
	if c.DishCount == 0 {
		return c
	}
	c.MinPrice = a.min
	c.AvgPrice = int64(math.Round(float64(a.sum) / float64(c.DishCount)))
	return c
}

// FilterCategories keeps categories whose name, or any dish name or
// description, contains term. A blank term keeps everything.
func FilterCategories(cats []domain.Category, term string) []domain.Category {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return cats
	}
	out := make([]domain.Category, 0, len(cats))
	for _, c := range cats {
		if containsFold(c.Name, needle) || slices.ContainsFunc(c.Dishes, func(d domain.Dish) bool {
			return containsFold(d.Name, needle) || containsFold(d.Description, needle)
		}) {
			out = append(out, c)
		}
	}
	return out
}

// SortCategories returns a sorted copy; the input is left untouched.
func SortCategories(cats []domain.Category, by domain.CategorySort) []domain.Category {
	out := slices.Clone(cats)
	switch by {
	case domain.CategorySortDishCount:
		slices.SortStableFunc(out, func(a, b domain.Category) int { return b.DishCount - a.DishCount })
	case domain.CategorySortAvgPrice:
		slices.SortStableFunc(out, func(a, b domain.Category) int { return cmp.Compare(a.AvgPrice, b.AvgPrice) })
	default:
		col := newCollator()
		slices.SortStableFunc(out, func(a, b domain.Category) int { return col.CompareString(a.Name, b.Name) })
	}
	return out
}

// Categories composes aggregation, filtering and sorting.
func Categories(dishes []domain.Dish, term string, by domain.CategorySort) []domain.Category {
	return SortCategories(FilterCategories(AggregateCategories(dishes), term), by)
}
