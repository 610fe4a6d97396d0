package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(s *Service) http.Handler {
	r := chi.NewRouter()

	// Dataset reads, cacheable until the dataset changes
	r.Group(func(r chi.Router) {
		r.Use(s.catalogETag)

		r.Get("/stats", s.GetStats)
		r.Get("/provinces", s.ListProvinces)
		r.Get("/provinces/{id}", s.GetProvince)
		r.Get("/provinces/{id}/restaurants", s.ListProvinceRestaurants)
		r.Get("/restaurants/{id}", s.GetRestaurant)
		r.Get("/popular", s.ListPopular)
		r.Get("/search", s.Search)
	})

	// Navigation
	r.Post("/search/go", s.QuickSearch)
	r.Post("/navigate", s.Navigate)
	r.Post("/view", s.View)

	return r
}
