package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Restaurant struct {
	ID         string
	Name       string
	Specialty  string
	Address    string
	Phone      string
	UpTime     string      // free-form operating hours
	PriceRange *PriceRange // nil when absent or malformed upstream
	Website    *string
	Services   Services
	Dishes     []Dish
}

// HasWebsite reports whether the restaurant carries a non-blank website.
func (r Restaurant) HasWebsite() bool {
	return r.Website != nil && strings.TrimSpace(*r.Website) != ""
}

type Services struct {
	Delivery bool
	TakeOut  bool
	Booking  bool
	Parking  bool
}

type Dish struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Price        int64 // whole currency units
	Category     string
	Restaurant   DishRestaurant // denormalized for display
}

type DishRestaurant struct {
	ID        string
	Name      string
	Specialty string
}

// PriceRange is the structured form of the "min - max" display string.
type PriceRange struct {
	Min int64
	Max int64
}

func (p PriceRange) String() string {
	return fmt.Sprintf("%d - %d", p.Min, p.Max)
}

// ParsePriceRange accepts "5000 - 10000" and tolerant variants such as
// "$5.000-$10.000". A single number yields Min == Max.
func ParsePriceRange(s string) (PriceRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceRange{}, fmt.Errorf("%w: empty", ErrInvalidPriceRange)
	}
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	from, err := parseAmount(lo)
	if err != nil {
		return PriceRange{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}
	to, err := parseAmount(hi)
	if err != nil {
		return PriceRange{}, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}
	if to < from {
		return PriceRange{}, fmt.Errorf("%w: max below min in %q", ErrInvalidPriceRange, s)
	}
	return PriceRange{Min: from, Max: to}, nil
}

func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	// CLP uses "." for thousands and has no decimals
	s = strings.NewReplacer(".", "", ",", "", " ", "").Replace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative amount %d", n)
	}
	return n, nil
}
