package navigation

import (
	"fmt"
	"strings"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/query"
)

// Outcome is the result of dispatching a search action. Restaurant is set
// when the action opened a restaurant's detail view.
type Outcome struct {
	State      State
	Restaurant *catalog.RestaurantRef
}

// Dispatch carries out a search hit's action. Opening a province goes through
// OpenProvince; opening a restaurant resolves it for the detail view and keeps
// the page state. Errors leave the state as it was.
func Dispatch(cat *catalog.Catalog, s State, a query.Action) (Outcome, error) {
	if err := a.Validate(); err != nil {
		return Outcome{State: s}, err
	}

	switch a.Kind {
	case query.ActionOpenProvince:
		next, err := s.OpenProvince(cat, a.ProvinceID)
		return Outcome{State: next}, err
	case query.ActionOpenRestaurant:
		ref, err := cat.FindRestaurant(a.RestaurantID)
		if err != nil {
			return Outcome{State: s}, err
		}
		return Outcome{State: s, Restaurant: &ref}, nil
	}
	return Outcome{State: s}, fmt.Errorf("%w: %q", query.ErrInvalidAction, a.Kind)
}

// QuickSearch runs a global search on the trimmed text and dispatches the
// first hit, as the search box's submit does. A blank query is ErrBlankQuery and a search with
// no hits is ErrEmptyResult; both leave the state unchanged.
func QuickSearch(cat *catalog.Catalog, s State, text string) (Outcome, query.Hit, error) {
	hits, err := query.SearchAll(cat.Provinces(), strings.TrimSpace(text))
	if err != nil {
		return Outcome{State: s}, query.Hit{}, err
	}
	first, _ := query.First(hits)
	out, err := Dispatch(cat, s, first.Action)
	return out, first, err
}
