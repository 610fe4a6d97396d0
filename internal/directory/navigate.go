package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/metrics"
	"github.com/korninw/thai-food-finder/internal/navigation"
	"github.com/korninw/thai-food-finder/internal/query"
)

var errInvalidCommand = errors.New("invalid command")

// apply runs one command against st. Search action kinds go through
// navigation.Dispatch so dropdown clicks and page links behave the same.
func (s *Service) apply(st navigation.State, c Command) (navigation.Outcome, error) {
	switch c.Kind {
	case string(query.ActionOpenProvince), string(query.ActionOpenRestaurant):
		a := query.Action{
			Kind:         query.ActionKind(c.Kind),
			ProvinceID:   c.ProvinceID,
			RestaurantID: c.RestaurantID,
		}
		return navigation.Dispatch(s.cat, st, a)
	case CommandSelectDistrict:
		next, err := st.SelectDistrict(s.cat, c.DistrictID)
		return navigation.Outcome{State: next}, err
	case CommandSetRegion:
		region, err := catalog.ParseRegion(c.Region)
		if err != nil {
			return navigation.Outcome{State: st}, err
		}
		next, err := st.SetRegion(region)
		return navigation.Outcome{State: next}, err
	case CommandSetQuery:
		next, err := st.SetQuery(c.Query)
		return navigation.Outcome{State: next}, err
	case CommandGoHome:
		return navigation.Outcome{State: st.GoHome()}, nil
	case CommandGoAllProvinces:
		return navigation.Outcome{State: st.GoAllProvinces()}, nil
	case CommandGoAbout:
		return navigation.Outcome{State: st.GoAbout()}, nil
	}
	return navigation.Outcome{State: st}, fmt.Errorf("%w: %q", errInvalidCommand, c.Kind)
}

// decodeState falls back to the initial state when the client sends none.
func (s *Service) decodeState(st *navigation.State) (navigation.State, error) {
	if st == nil {
		return navigation.Initial(), nil
	}
	if st.Region == "" {
		st.Region = catalog.RegionAll
	}
	if err := st.Validate(s.cat); err != nil {
		return navigation.State{}, err
	}
	return *st, nil
}

// Navigate applies one command to the posted state. Unknown ids are dropped
// and the state comes back unchanged; a province without data comes back
// with a notice.
func (s *Service) Navigate(w http.ResponseWriter, r *http.Request) {
	var body NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	st, err := s.decodeState(body.State)
	if err != nil {
		http.Error(w, "Invalid state: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := s.apply(st, body.Action)
	resp := NavigateResponse{State: out.State}
	switch {
	case err == nil:
		if out.Restaurant != nil {
			resp.Restaurant = toRestaurantDetail(*out.Restaurant)
		}
	case errors.Is(err, catalog.ErrNotFound):
		resp.State = st
		resp.Ignored = true
	case errors.Is(err, navigation.ErrUnavailableData):
		metrics.UnavailableTotal.Inc()
		resp.State = st
		resp.Notice = err.Error()
	case errors.Is(err, navigation.ErrNoProvince):
		http.Error(w, "No province open", http.StatusConflict)
		return
	case errors.Is(err, errInvalidCommand),
		errors.Is(err, query.ErrInvalidAction),
		errors.Is(err, catalog.ErrUnknownRegion):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, resp)
}

// QuickSearch handles the search box's submit: it dispatches the first hit
// of a global search.
func (s *Service) QuickSearch(w http.ResponseWriter, r *http.Request) {
	var body QuickSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	st, err := s.decodeState(body.State)
	if err != nil {
		http.Error(w, "Invalid state: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, hit, err := navigation.QuickSearch(s.cat, st, body.Query)
	resp := QuickSearchResponse{State: out.State}
	switch {
	case errors.Is(err, query.ErrBlankQuery):
		resp.Cleared = true
		writeJSON(w, resp)
		return
	case errors.Is(err, query.ErrEmptyResult):
		metrics.SearchesTotal.WithLabelValues("quick").Inc()
		metrics.EmptyResultsTotal.WithLabelValues("search").Inc()
		resp.Empty = true
		writeJSON(w, resp)
		return
	}

	metrics.SearchesTotal.WithLabelValues("quick").Inc()
	resp.Hit = &hit
	switch {
	case err == nil:
		if out.Restaurant != nil {
			resp.Restaurant = toRestaurantDetail(*out.Restaurant)
		}
	case errors.Is(err, navigation.ErrUnavailableData):
		metrics.UnavailableTotal.Inc()
		resp.State = st
		resp.Notice = err.Error()
	case errors.Is(err, catalog.ErrNotFound):
		resp.State = st
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, resp)
}

// View returns the data of the page the posted state names.
func (s *Service) View(w http.ResponseWriter, r *http.Request) {
	var body ViewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	st, err := s.decodeState(&body.State)
	if err != nil {
		http.Error(w, "Invalid state: "+err.Error(), http.StatusBadRequest)
		return
	}

	view, err := s.buildView(st)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, view)
}

func (s *Service) buildView(st navigation.State) (ViewResponse, error) {
	v := ViewResponse{State: st}
	switch st.Page {
	case navigation.PageHome:
		stats := s.cat.Stats()
		v.Stats = &stats
		v.Popular = truncate(query.Popular(s.cat.Provinces()), s.cfg.PopularLimit)
		v.Regions = regionOptions(st.Region)
		v.Provinces, v.ProvincesEmpty = s.grid(s.cat.Featured(), st.Region)
	case navigation.PageAllProvinces:
		v.Regions = regionOptions(st.Region)
		v.Provinces, v.ProvincesEmpty = s.grid(s.cat.Provinces(), st.Region)
	case navigation.PageProvince:
		p, err := s.cat.FindProvince(st.ProvinceID)
		if err != nil {
			return v, err
		}
		page := toProvincePage(p)
		v.Province = &page
		list, err := query.FilterRestaurants(p, st.DistrictID, st.Query)
		if errors.Is(err, query.ErrEmptyResult) {
			metrics.EmptyResultsTotal.WithLabelValues("restaurants").Inc()
			v.RestaurantsEmpty = true
		} else if err != nil {
			return v, err
		}
		v.Restaurants = list
	case navigation.PageAbout:
		stats := s.cat.Stats()
		v.Stats = &stats
	}
	return v, nil
}

func (s *Service) grid(source []catalog.Province, region catalog.Region) ([]ProvinceCard, bool) {
	filtered, err := query.FilterByRegion(source, region)
	if err != nil {
		metrics.EmptyResultsTotal.WithLabelValues("region").Inc()
		return nil, true
	}
	return toProvinceCards(filtered), false
}
