// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"puntosabor/internal/app"
	"puntosabor/internal/domain"
)

type Handlers struct {
	Q       *app.QueryService
	Version string // API version segment, e.g. "v1"
	Env     string
	// Checks are run by the health endpoint, keyed by dependency name.
	Checks map[string]func(context.Context) error
}

func (s *Server) MountHandlers(h *Handlers) {
	if h.Version == "" {
		h.Version = "v1"
	}
	s.mux.Get("/", h.root)
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Route("/api/"+h.Version, func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/restaurants", h.listRestaurants)
		r.Get("/restaurants/specialties", h.specialties)
		r.Get("/restaurants/search/dish", h.restaurantsByDish)
		r.Get("/restaurants/{id}", h.getRestaurant)
		r.Get("/dishes", h.listDishes)
		r.Get("/dishes/search", h.searchDishes)
		r.Get("/categories", h.categories)
		r.Get("/search", h.search)
	})

	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found - "+r.URL.Path)
	})
	s.mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

func (h *Handlers) root(w http.ResponseWriter, r *http.Request) {
	base := "/api/" + h.Version
	writeData(w, r, map[string]any{
		"message":     "Welcome to Punto Sabor API",
		"version":     h.Version,
		"environment": h.Env,
		"endpoints": map[string]string{
			"health":           base + "/health",
			"restaurants":      base + "/restaurants",
			"specialties":      base + "/restaurants/specialties",
			"searchByDish":     base + "/restaurants/search/dish?dish=DISH_NAME",
			"dishes":           base + "/dishes",
			"globalDishSearch": base + "/dishes/search?dish=DISH_NAME",
			"categories":       base + "/categories?q=TERM&sort=name|dishCount|price",
			"search":           base + "/search?q=TERM",
		},
	}, nil)
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.Checks))
	for name, check := range h.Checks {
		if err := check(ctx); err != nil {
			log.Warn().Err(err).Str("dependency", name).Msg("health check failed")
			deps[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "up"
	}
	if status != http.StatusOK {
		writeError(w, status, "service degraded")
		return
	}
	writeData(w, r, map[string]any{"status": "ok", "dependencies": deps}, nil)
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	by, err := domain.ParseRestaurantSort(q.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "sort must be one of name, specialty, price")
		return
	}
	websiteRequired := false
	if v := q.Get("website"); v != "" {
		websiteRequired, err = strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "website must be a boolean")
			return
		}
	}
	name := q.Get("q")
	if name == "" {
		name = q.Get("name")
	}

	f := domain.RestaurantFilter{Specialty: q.Get("specialty"), Name: name, WebsiteRequired: websiteRequired}
	writeList(w, r, toRestaurants(h.Q.Restaurants(r.Context(), f, by)))
}

func (h *Handlers) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := h.Q.Restaurant(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "restaurant not found")
			return
		}
		log.Error().Err(err).Str("id", id).Msg("get restaurant failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, r, toRestaurant(res), nil)
}

func (h *Handlers) specialties(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.Q.Specialties(r.Context()))
}

func (h *Handlers) restaurantsByDish(w http.ResponseWriter, r *http.Request) {
	dish, ok := requiredParam(w, r, "dish")
	if !ok {
		return
	}
	writeList(w, r, toRestaurants(h.Q.RestaurantsByDish(r.Context(), dish)))
}

func (h *Handlers) listDishes(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, toDishes(h.Q.Dishes(r.Context())))
}

func (h *Handlers) searchDishes(w http.ResponseWriter, r *http.Request) {
	dish, ok := requiredParam(w, r, "dish")
	if !ok {
		return
	}
	writeList(w, r, toDishes(h.Q.SearchDishes(r.Context(), dish)))
}

func (h *Handlers) categories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	by, err := domain.ParseCategorySort(q.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "sort must be one of name, dishCount, price")
		return
	}
	writeList(w, r, toCategories(h.Q.Categories(r.Context(), q.Get("q"), by)))
}

// search returns an empty list for a blank term; that is "no search", not
// "no matches".
func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, toSearchResults(h.Q.Search(r.Context(), r.URL.Query().Get("q"))))
}

func requiredParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusBadRequest, "query parameter '"+name+"' is required")
		return "", false
	}
	return v, true
}
