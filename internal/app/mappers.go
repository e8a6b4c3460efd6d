package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"puntosabor/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Upstream documents nest fields under "data" (document store export) but
// flat variants show up too.
var restaurantAliases = map[string][]string{
	"id":        {"id", "data.id", "_id"},
	"name":      {"data.name", "name"},
	"specialty": {"data.specialty", "specialty", "data.cuisine", "cuisine"},
	"address":   {"data.address", "address"},
	"phone":     {"data.phone", "phone"},
	"upTime":    {"data.upTime", "upTime", "data.hours", "hours"},
	"website":   {"data.website", "website", "data.url"},
	"price":     {"data.priceRange", "priceRange", "data.price_range"},
	"services":  {"data.services", "services"},
}

var dishAliases = map[string][]string{
	"id":          {"id", "data.id", "_id"},
	"name":        {"data.name", "name"},
	"description": {"data.description", "description"},
	"category":    {"data.category", "category"},
	"price":       {"data.price", "price"},
	"restaurant":  {"restaurant.id", "restaurantId", "data.restaurantId"},
}

var errMissingField = errors.New("missing required field")

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "". Numeric ids are stringified.
func lookupStr(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return &s
		}
	}
	return nil
}

func aliasStr(m map[string]any, aliases map[string][]string, key string) string {
	if p := firstNonEmptyAlias(m, aliases, key); p != nil {
		return *p
	}
	return ""
}

// firstInt64Flexible: int64 from several paths (float64/int/string like "5.000").
func firstInt64Flexible(m map[string]any, paths ...string) (int64, bool) {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return int64(v), true
		case int:
			return int64(v), true
		case int64:
			return v, true
		case string:
			s := strings.NewReplacer("$", "", ".", "", ",", "", " ", "").Replace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

/********** restaurant mapper **********/

func mapRestaurant(doc map[string]any) (domain.Restaurant, error) {
	r := domain.Restaurant{
		ID:        aliasStr(doc, restaurantAliases, "id"),
		Name:      aliasStr(doc, restaurantAliases, "name"),
		Specialty: aliasStr(doc, restaurantAliases, "specialty"),
		Address:   aliasStr(doc, restaurantAliases, "address"),
		Phone:     aliasStr(doc, restaurantAliases, "phone"),
		UpTime:    aliasStr(doc, restaurantAliases, "upTime"),
		Website:   firstNonEmptyAlias(doc, restaurantAliases, "website"),
		Services:  mapServices(firstAny(doc, restaurantAliases["services"]...)),
	}
	if r.ID == "" {
		return domain.Restaurant{}, fmt.Errorf("restaurant: %w: id", errMissingField)
	}
	if r.Name == "" {
		return domain.Restaurant{}, fmt.Errorf("restaurant %s: %w: name", r.ID, errMissingField)
	}

	if pr, err := mapPriceRange(firstAny(doc, restaurantAliases["price"]...)); err != nil {
		log.Warn().Str("restaurant", r.ID).Err(err).Msg("price range ignored")
	} else {
		r.PriceRange = pr
	}

	if raw, ok := lookupAny(doc, "dishes").([]any); ok {
		r.Dishes = make([]domain.Dish, 0, len(raw))
		for _, it := range raw {
			dm, ok := it.(map[string]any)
			if !ok {
				continue
			}
			d, err := mapDish(dm)
			if err != nil {
				log.Warn().Str("restaurant", r.ID).Err(err).Msg("dish skipped")
				continue
			}
			r.Dishes = append(r.Dishes, attachRestaurant(d, r))
		}
	}
	return r, nil
}

func firstAny(m map[string]any, paths ...string) any {
	for _, p := range paths {
		if v := lookupAny(m, p); v != nil {
			return v
		}
	}
	return nil
}

// mapPriceRange accepts the "min - max" string or a {min,max} object.
// A missing value is not an error.
func mapPriceRange(v any) (*domain.PriceRange, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, nil
		}
		pr, err := domain.ParsePriceRange(t)
		if err != nil {
			return nil, err
		}
		return &pr, nil
	case map[string]any:
		lo, okLo := firstInt64Flexible(t, "min", "from")
		hi, okHi := firstInt64Flexible(t, "max", "to")
		if !okLo || !okHi || lo < 0 || hi < lo {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPriceRange, t)
		}
		return &domain.PriceRange{Min: lo, Max: hi}, nil
	}
	return nil, fmt.Errorf("%w: unexpected %T", domain.ErrInvalidPriceRange, v)
}

// mapServices ORs every flag across the list of service objects; a single
// object is accepted too.
func mapServices(v any) domain.Services {
	var s domain.Services
	apply := func(m map[string]any) {
		flag := func(k string) bool { b, _ := m[k].(bool); return b }
		s.Delivery = s.Delivery || flag("delivery")
		s.TakeOut = s.TakeOut || flag("takeOut") || flag("take_out")
		s.Booking = s.Booking || flag("booking")
		s.Parking = s.Parking || flag("parking")
	}
	switch t := v.(type) {
	case []any:
		for _, it := range t {
			if m, ok := it.(map[string]any); ok {
				apply(m)
			}
		}
	case map[string]any:
		apply(t)
	}
	return s
}

/********** dish mapper **********/

func mapDish(doc map[string]any) (domain.Dish, error) {
	d := domain.Dish{
		ID:           aliasStr(doc, dishAliases, "id"),
		Name:         aliasStr(doc, dishAliases, "name"),
		Description:  aliasStr(doc, dishAliases, "description"),
		Category:     aliasStr(doc, dishAliases, "category"),
		RestaurantID: aliasStr(doc, dishAliases, "restaurant"),
	}
	if d.ID == "" {
		return domain.Dish{}, fmt.Errorf("dish: %w: id", errMissingField)
	}
	if d.Name == "" {
		return domain.Dish{}, fmt.Errorf("dish %s: %w: name", d.ID, errMissingField)
	}
	price, ok := firstInt64Flexible(doc, dishAliases["price"]...)
	if !ok || price < 0 {
		return domain.Dish{}, fmt.Errorf("dish %s: invalid price", d.ID)
	}
	d.Price = price

	// /dishes documents carry the owner's name and specialty
	d.Restaurant = domain.DishRestaurant{
		ID:        d.RestaurantID,
		Name:      lookupStr(doc, "restaurant.name"),
		Specialty: lookupStr(doc, "restaurant.specialty"),
	}
	return d, nil
}

func attachRestaurant(d domain.Dish, r domain.Restaurant) domain.Dish {
	d.RestaurantID = r.ID
	d.Restaurant = domain.DishRestaurant{ID: r.ID, Name: r.Name, Specialty: r.Specialty}
	return d
}
