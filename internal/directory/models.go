package directory

import (
	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/navigation"
	"github.com/korninw/thai-food-finder/internal/query"
)

// Scope values for GET /provinces.
const (
	ScopeFeatured = "featured"
	ScopeAll      = "all"
)

type ProvinceCard struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	NameEn          string         `json:"name_en"`
	Region          catalog.Region `json:"region"`
	RegionName      string         `json:"region_name"`
	Emoji           string         `json:"emoji"`
	RestaurantCount int            `json:"restaurant_count"`
	HasData         bool           `json:"has_data"`
}

type DistrictTab struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RestaurantCount int    `json:"restaurant_count"`
}

// ProvincePage is the header and district tabs of an opened province.
type ProvincePage struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	NameEn          string         `json:"name_en"`
	Desc            string         `json:"desc"`
	Emoji           string         `json:"emoji"`
	Region          catalog.Region `json:"region"`
	RegionName      string         `json:"region_name"`
	DistrictCount   int            `json:"district_count"`
	RestaurantCount int            `json:"restaurant_count"`
	Districts       []DistrictTab  `json:"districts"`
}

// RestaurantDetail is what the detail view shows, including where the
// restaurant is.
type RestaurantDetail struct {
	Restaurant   catalog.Restaurant `json:"restaurant"`
	DistrictID   string             `json:"district_id"`
	DistrictName string             `json:"district_name"`
	ProvinceID   string             `json:"province_id"`
	ProvinceName string             `json:"province_name"`
}

type ProvinceListResponse struct {
	Region    catalog.Region `json:"region"`
	Scope     string         `json:"scope"`
	Empty     bool           `json:"empty"`
	Provinces []ProvinceCard `json:"provinces"`
}

type RestaurantListResponse struct {
	ProvinceID  string               `json:"province_id"`
	DistrictID  string               `json:"district_id,omitempty"`
	Query       string               `json:"query,omitempty"`
	Empty       bool                 `json:"empty"`
	Restaurants []catalog.Restaurant `json:"restaurants"`
}

type PopularResponse struct {
	Restaurants []query.PopularEntry `json:"restaurants"`
}

// SearchResponse distinguishes a cleared query (nothing searched) from a
// search with no hits. Total counts every hit before truncation.
type SearchResponse struct {
	Query   string      `json:"query"`
	Cleared bool        `json:"cleared"`
	Empty   bool        `json:"empty"`
	Total   int         `json:"total"`
	Hits    []query.Hit `json:"hits"`
}

type UnavailableResponse struct {
	Error  string `json:"error"`
	Notice string `json:"notice"`
}

// Command kinds accepted by POST /navigate, besides the search action kinds.
const (
	CommandSelectDistrict = "select_district"
	CommandSetRegion      = "set_region"
	CommandSetQuery       = "set_query"
	CommandGoHome         = "go_home"
	CommandGoAllProvinces = "go_all_provinces"
	CommandGoAbout        = "go_about"
)

// Command is one user navigation input. open_province and open_restaurant
// carry the same fields as a search hit's action.
type Command struct {
	Kind         string `json:"kind"`
	ProvinceID   string `json:"province_id,omitempty"`
	DistrictID   string `json:"district_id,omitempty"`
	RestaurantID int    `json:"restaurant_id,omitempty"`
	Region       string `json:"region,omitempty"`
	Query        string `json:"query,omitempty"`
}

type NavigateRequest struct {
	State  *navigation.State `json:"state"`
	Action Command           `json:"action"`
}

// NavigateResponse carries the next state. Ignored is set when the command
// named an unknown entity and was dropped.
type NavigateResponse struct {
	State      navigation.State  `json:"state"`
	Notice     string            `json:"notice,omitempty"`
	Ignored    bool              `json:"ignored,omitempty"`
	Restaurant *RestaurantDetail `json:"restaurant,omitempty"`
}

type QuickSearchRequest struct {
	Query string            `json:"query"`
	State *navigation.State `json:"state"`
}

type QuickSearchResponse struct {
	State      navigation.State  `json:"state"`
	Cleared    bool              `json:"cleared"`
	Empty      bool              `json:"empty"`
	Hit        *query.Hit        `json:"hit,omitempty"`
	Notice     string            `json:"notice,omitempty"`
	Restaurant *RestaurantDetail `json:"restaurant,omitempty"`
}

type ViewRequest struct {
	State navigation.State `json:"state"`
}

// ViewResponse holds the data of the page named by State. Only the fields
// of that page are set.
type ViewResponse struct {
	State            navigation.State     `json:"state"`
	Stats            *catalog.Stats       `json:"stats,omitempty"`
	Popular          []query.PopularEntry `json:"popular,omitempty"`
	Regions          []RegionOption       `json:"regions,omitempty"`
	Provinces        []ProvinceCard       `json:"provinces,omitempty"`
	ProvincesEmpty   bool                 `json:"provinces_empty,omitempty"`
	Province         *ProvincePage        `json:"province,omitempty"`
	Restaurants      []catalog.Restaurant `json:"restaurants,omitempty"`
	RestaurantsEmpty bool                 `json:"restaurants_empty,omitempty"`
}

type RegionOption struct {
	Region catalog.Region `json:"region"`
	Name   string         `json:"name"`
	Active bool           `json:"active"`
}

func toProvinceCards(ps []catalog.Province) []ProvinceCard {
	out := make([]ProvinceCard, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProvinceCard{
			ID:              p.ID,
			Name:            p.Name,
			NameEn:          p.NameEn,
			Region:          p.Region,
			RegionName:      p.Region.DisplayName(),
			Emoji:           p.Emoji,
			RestaurantCount: p.RestaurantCount(),
			HasData:         p.HasData(),
		})
	}
	return out
}

func toProvincePage(p *catalog.Province) ProvincePage {
	tabs := make([]DistrictTab, 0, len(p.Districts))
	for _, d := range p.Districts {
		tabs = append(tabs, DistrictTab{ID: d.ID, Name: d.Name, RestaurantCount: len(d.Restaurants)})
	}
	return ProvincePage{
		ID:              p.ID,
		Name:            p.Name,
		NameEn:          p.NameEn,
		Desc:            p.Desc,
		Emoji:           p.Emoji,
		Region:          p.Region,
		RegionName:      p.Region.DisplayName(),
		DistrictCount:   len(p.Districts),
		RestaurantCount: p.RestaurantCount(),
		Districts:       tabs,
	}
}

func toRestaurantDetail(ref catalog.RestaurantRef) *RestaurantDetail {
	return &RestaurantDetail{
		Restaurant:   *ref.Restaurant,
		DistrictID:   ref.District.ID,
		DistrictName: ref.District.Name,
		ProvinceID:   ref.Province.ID,
		ProvinceName: ref.Province.Name,
	}
}

func regionOptions(active catalog.Region) []RegionOption {
	out := make([]RegionOption, 0, len(catalog.Regions))
	for _, r := range catalog.Regions {
		out = append(out, RegionOption{Region: r, Name: r.DisplayName(), Active: r == active})
	}
	return out
}
