package domain

type MatchType string

const (
	MatchRestaurant MatchType = "restaurant"
	MatchDish       MatchType = "dish"
)

type SearchResult struct {
	Restaurant Restaurant
	Dishes     []Dish // dishes selected for display
	MatchType  MatchType
}

type SearchOptions struct {
	PreviewSize int // dishes shown for restaurant-level matches
	// PreferDishMatches shows the matching dishes even when the restaurant
	// itself matched, falling back to the preview only when none matched.
	PreferDishMatches bool
}

// AllSpecialties is the sentinel that disables the specialty predicate.
const AllSpecialties = "Todos"

type RestaurantFilter struct {
	Specialty       string
	Name            string
	WebsiteRequired bool
}

type RestaurantSort string

const (
	RestaurantSortName      RestaurantSort = "name"
	RestaurantSortSpecialty RestaurantSort = "specialty"
	RestaurantSortPrice     RestaurantSort = "price"
)

func ParseRestaurantSort(s string) (RestaurantSort, error) {
	switch s {
	case "", string(RestaurantSortName):
		return RestaurantSortName, nil
	case string(RestaurantSortSpecialty):
		return RestaurantSortSpecialty, nil
	case string(RestaurantSortPrice):
		return RestaurantSortPrice, nil
	}
	return "", ErrInvalidSort
}

// Snapshot is the immutable catalog view a query works on.
type Snapshot struct {
	Restaurants []Restaurant
	Dishes      []Dish
}
