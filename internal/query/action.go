package query

import (
	"errors"
	"fmt"
)

// ActionKind names what a navigation action opens.
type ActionKind string

const (
	ActionOpenProvince   ActionKind = "open_province"
	ActionOpenRestaurant ActionKind = "open_restaurant"
)

var ErrInvalidAction = errors.New("invalid action")

// Action is a navigation instruction attached to a search hit. It is plain data;
// the caller decides how to carry it out.
type Action struct {
	Kind         ActionKind `json:"kind"`
	ProvinceID   string     `json:"province_id,omitempty"`
	RestaurantID int        `json:"restaurant_id,omitempty"`
}

func OpenProvince(id string) Action {
	return Action{Kind: ActionOpenProvince, ProvinceID: id}
}

func OpenRestaurant(id int) Action {
	return Action{Kind: ActionOpenRestaurant, RestaurantID: id}
}

// Validate checks that the fields required by Kind are present.
func (a Action) Validate() error {
	switch a.Kind {
	case ActionOpenProvince:
		if a.ProvinceID == "" {
			return fmt.Errorf("%w: open_province needs province_id", ErrInvalidAction)
		}
	case ActionOpenRestaurant:
		if a.RestaurantID == 0 {
			return fmt.Errorf("%w: open_restaurant needs restaurant_id", ErrInvalidAction)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, a.Kind)
	}
	return nil
}

func (a Action) String() string {
	if a.Kind == ActionOpenRestaurant {
		return fmt.Sprintf("%s(%d)", a.Kind, a.RestaurantID)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.ProvinceID)
}
