package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"puntosabor/internal/app"
	"puntosabor/internal/domain"
)

// ---- envelopes ----

type envelope struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Success: false, Message: msg}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeData wraps data in the success envelope and honors If-None-Match.
// count is attached for list payloads.
func writeData(w http.ResponseWriter, r *http.Request, data any, count *int) {
	etag, body := calcETagAndBody(envelope{Success: true, Count: count, Data: data})
	if body == nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func writeList[T any](w http.ResponseWriter, r *http.Request, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	writeData(w, r, items, &n)
}

// ---- wire shapes (catalog contract) ----

type restaurantDTO struct {
	ID     string            `json:"id"`
	Data   restaurantDataDTO `json:"data"`
	Dishes []dishDocDTO      `json:"dishes"`
}

type restaurantDataDTO struct {
	Name       string        `json:"name"`
	Specialty  string        `json:"specialty"`
	Address    string        `json:"address"`
	Phone      string        `json:"phone"`
	UpTime     string        `json:"upTime"`
	PriceRange string        `json:"priceRange,omitempty"`
	PriceMin   *int64        `json:"priceMin,omitempty"`
	PriceMax   *int64        `json:"priceMax,omitempty"`
	Website    *string       `json:"website,omitempty"`
	Services   []servicesDTO `json:"services"`
}

type servicesDTO struct {
	Delivery bool `json:"delivery"`
	TakeOut  bool `json:"takeOut"`
	Booking  bool `json:"booking"`
	Parking  bool `json:"parking"`
}

type dishDocDTO struct {
	ID   string      `json:"id"`
	Data dishDataDTO `json:"data"`
}

type dishDataDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	PriceLabel  string `json:"priceLabel"`
	Category    string `json:"category"`
}

type dishDTO struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       int64             `json:"price"`
	PriceLabel  string            `json:"priceLabel"`
	Category    string            `json:"category"`
	Restaurant  dishRestaurantDTO `json:"restaurant"`
}

type dishRestaurantDTO struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type categoryDTO struct {
	Name            string    `json:"name"`
	Dishes          []dishDTO `json:"dishes"`
	RestaurantCount int       `json:"restaurantCount"`
	DishCount       int       `json:"dishCount"`
	MinPrice        int64     `json:"minPrice"`
	MaxPrice        int64     `json:"maxPrice"`
	AvgPrice        int64     `json:"avgPrice"`
	AvgPriceLabel   string    `json:"avgPriceLabel"`
}

type searchResultDTO struct {
	RestaurantID string            `json:"restaurantId"`
	Restaurant   restaurantDataDTO `json:"restaurant"`
	Dishes       []dishDocDTO      `json:"dishes"`
	MatchType    domain.MatchType  `json:"matchType"`
}

func toRestaurantData(r domain.Restaurant) restaurantDataDTO {
	out := restaurantDataDTO{
		Name:      r.Name,
		Specialty: r.Specialty,
		Address:   r.Address,
		Phone:     r.Phone,
		UpTime:    r.UpTime,
		Website:   r.Website,
		Services: []servicesDTO{{
			Delivery: r.Services.Delivery,
			TakeOut:  r.Services.TakeOut,
			Booking:  r.Services.Booking,
			Parking:  r.Services.Parking,
		}},
	}
	if r.PriceRange != nil {
		lo, hi := r.PriceRange.Min, r.PriceRange.Max
		out.PriceRange = r.PriceRange.String()
		out.PriceMin, out.PriceMax = &lo, &hi
	}
	return out
}

func toDishDocs(ds []domain.Dish) []dishDocDTO {
	out := make([]dishDocDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, dishDocDTO{ID: d.ID, Data: dishDataDTO{
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			PriceLabel:  app.FormatCLP(d.Price),
			Category:    d.Category,
		}})
	}
	return out
}

func toRestaurant(r domain.Restaurant) restaurantDTO {
	return restaurantDTO{ID: r.ID, Data: toRestaurantData(r), Dishes: toDishDocs(r.Dishes)}
}

func toRestaurants(rs []domain.Restaurant) []restaurantDTO {
	out := make([]restaurantDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRestaurant(r))
	}
	return out
}

func toDish(d domain.Dish) dishDTO {
	return dishDTO{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		PriceLabel:  app.FormatCLP(d.Price),
		Category:    d.Category,
		Restaurant: dishRestaurantDTO{
			ID:        d.Restaurant.ID,
			Name:      d.Restaurant.Name,
			Specialty: d.Restaurant.Specialty,
		},
	}
}

func toDishes(ds []domain.Dish) []dishDTO {
	out := make([]dishDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDish(d))
	}
	return out
}

func toCategories(cs []domain.Category) []categoryDTO {
	out := make([]categoryDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryDTO{
			Name:            c.Name,
			Dishes:          toDishes(c.Dishes),
			RestaurantCount: c.RestaurantCount,
			DishCount:       c.DishCount,
			MinPrice:        c.MinPrice,
			MaxPrice:        c.MaxPrice,
			AvgPrice:        c.AvgPrice,
			AvgPriceLabel:   app.FormatCLP(c.AvgPrice),
		})
	}
	return out
}

func toSearchResults(rs []domain.SearchResult) []searchResultDTO {
	out := make([]searchResultDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, searchResultDTO{
			RestaurantID: r.Restaurant.ID,
			Restaurant:   toRestaurantData(r.Restaurant),
			Dishes:       toDishDocs(r.Dishes),
			MatchType:    r.MatchType,
		})
	}
	return out
}
