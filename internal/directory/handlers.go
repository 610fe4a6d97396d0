package directory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/metrics"
	"github.com/korninw/thai-food-finder/internal/navigation"
	"github.com/korninw/thai-food-finder/internal/query"
)

// GetStats returns the dataset totals shown on the home page.
func (s *Service) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.cat.Stats())
}

// ListProvinces returns the province grid for ?region= (default all).
// ?scope=featured (default) lists provinces with data, ?scope=all lists every
// province.
func (s *Service) ListProvinces(w http.ResponseWriter, r *http.Request) {
	region, err := catalog.ParseRegion(r.URL.Query().Get("region"))
	if err != nil {
		http.Error(w, "Invalid region parameter", http.StatusBadRequest)
		return
	}

	scope := r.URL.Query().Get("scope")
	var source []catalog.Province
	switch scope {
	case "", ScopeFeatured:
		scope = ScopeFeatured
		source = s.cat.Featured()
	case ScopeAll:
		source = s.cat.Provinces()
	default:
		http.Error(w, "Invalid scope parameter", http.StatusBadRequest)
		return
	}

	resp := ProvinceListResponse{Region: region, Scope: scope}
	filtered, err := query.FilterByRegion(source, region)
	if errors.Is(err, query.ErrEmptyResult) {
		metrics.EmptyResultsTotal.WithLabelValues("region").Inc()
		resp.Empty = true
	} else if err != nil {
		http.Error(w, "Invalid region parameter", http.StatusBadRequest)
		return
	}
	resp.Provinces = toProvinceCards(filtered)
	writeJSON(w, resp)
}

// GetProvince returns a province header and its district tabs. A province
// without data answers 409 with the notice to show.
func (s *Service) GetProvince(w http.ResponseWriter, r *http.Request) {
	p, ok := s.provinceParam(w, r)
	if !ok {
		return
	}
	if !p.HasData() {
		metrics.UnavailableTotal.Inc()
		notice := (&navigation.UnavailableError{Province: p.Name}).Error()
		writeJSONStatus(w, http.StatusConflict, UnavailableResponse{
			Error:  navigation.ErrUnavailableData.Error(),
			Notice: notice,
		})
		return
	}
	writeJSON(w, toProvincePage(p))
}

// ListProvinceRestaurants filters a province's restaurants by ?district= and
// ?q=.
func (s *Service) ListProvinceRestaurants(w http.ResponseWriter, r *http.Request) {
	p, ok := s.provinceParam(w, r)
	if !ok {
		return
	}

	districtID := r.URL.Query().Get("district")
	text := r.URL.Query().Get("q")
	resp := RestaurantListResponse{ProvinceID: p.ID, DistrictID: districtID, Query: text}

	list, err := query.FilterRestaurants(p, districtID, text)
	if errors.Is(err, query.ErrEmptyResult) {
		metrics.EmptyResultsTotal.WithLabelValues("restaurants").Inc()
		resp.Empty = true
		list = []catalog.Restaurant{}
	} else if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	resp.Restaurants = list
	writeJSON(w, resp)
}

// GetRestaurant returns one restaurant and its location in the directory.
func (s *Service) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id format", http.StatusBadRequest)
		return
	}
	ref, err := s.cat.FindRestaurant(id)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, toRestaurantDetail(ref))
}

// ListPopular returns the top recommended restaurants, ?limit= defaulting to
// the configured count.
func (s *Service) ListPopular(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, s.cfg.PopularLimit)
	if err != nil {
		http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
		return
	}
	entries := query.Popular(s.cat.Provinces())
	if entries == nil {
		entries = []query.PopularEntry{}
	}
	writeJSON(w, PopularResponse{Restaurants: truncate(entries, limit)})
}

// Search backs the search dropdown. A blank ?q= is a cleared box, not an
// empty result.
func (s *Service) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, s.cfg.SearchLimit)
	if err != nil {
		http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
		return
	}

	text := r.URL.Query().Get("q")
	resp := SearchResponse{Query: text, Hits: []query.Hit{}}

	hits, err := query.SearchAll(s.cat.Provinces(), text)
	switch {
	case errors.Is(err, query.ErrBlankQuery):
		resp.Cleared = true
	case errors.Is(err, query.ErrEmptyResult):
		metrics.SearchesTotal.WithLabelValues("dropdown").Inc()
		metrics.EmptyResultsTotal.WithLabelValues("search").Inc()
		resp.Empty = true
	case err != nil:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	default:
		metrics.SearchesTotal.WithLabelValues("dropdown").Inc()
		resp.Total = len(hits)
		resp.Hits = truncate(hits, limit)
	}
	writeJSON(w, resp)
}

func (s *Service) provinceParam(w http.ResponseWriter, r *http.Request) (*catalog.Province, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return nil, false
	}
	p, err := s.cat.FindProvince(id)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return p, true
}
