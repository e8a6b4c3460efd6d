package domain

// Category is derived from dishes on every query and never persisted.
type Category struct {
	Name            string
	Dishes          []Dish
	RestaurantCount int
	DishCount       int
	MinPrice        int64
	MaxPrice        int64
	AvgPrice        int64
}

type CategorySort string

const (
	CategorySortName      CategorySort = "name"
	CategorySortDishCount CategorySort = "dishCount"
	CategorySortAvgPrice  CategorySort = "avgPrice"
)

// ParseCategorySort maps a query value to a sort key; "" means name and
// "price" is accepted as an alias of avgPrice.
func ParseCategorySort(s string) (CategorySort, error) {
	switch s {
	case "", string(CategorySortName):
		return CategorySortName, nil
	case string(CategorySortDishCount):
		return CategorySortDishCount, nil
	case "price", string(CategorySortAvgPrice):
		return CategorySortAvgPrice, nil
	}
	return "", ErrInvalidSort
}
