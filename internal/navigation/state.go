// Package navigation models which page is open and what is selected on it.
// State is an immutable value: every transition returns a new State and leaves
// the receiver untouched, so callers can keep or discard either.
package navigation

import (
	"errors"
	"fmt"

	"github.com/korninw/thai-food-finder/internal/catalog"
)

// Page is one of the top-level views.
type Page string

const (
	PageHome         Page = "home"
	PageAllProvinces Page = "all_provinces"
	PageProvince     Page = "province"
	PageAbout        Page = "about"
)

var (
	// ErrUnavailableData is returned when opening a province that has no
	// districts yet. The state does not change; callers show a notice.
	ErrUnavailableData = errors.New("province data not yet available")

	// ErrNoProvince is returned by province-page operations on other pages.
	ErrNoProvince = errors.New("no province open")

	ErrUnknownPage = errors.New("unknown page")
)

// State is the current selection. ProvinceID is set only on PageProvince.
// An empty DistrictID means all districts of the open province.
type State struct {
	Page       Page           `json:"page"`
	ProvinceID string         `json:"province_id,omitempty"`
	DistrictID string         `json:"district_id,omitempty"`
	Region     catalog.Region `json:"region"`
	Query      string         `json:"query,omitempty"`
}

// Initial is the state of a new session: home page, every region.
func Initial() State {
	return State{Page: PageHome, Region: catalog.RegionAll}
}

// Validate checks that a state received from a client is coherent with cat.
func (s State) Validate(cat *catalog.Catalog) error {
	if !s.Region.Valid() {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownRegion, s.Region)
	}
	switch s.Page {
	case PageHome, PageAllProvinces, PageAbout:
		if s.ProvinceID != "" || s.DistrictID != "" {
			return fmt.Errorf("page %s cannot carry a province selection", s.Page)
		}
	case PageProvince:
		p, err := cat.FindProvince(s.ProvinceID)
		if err != nil {
			return fmt.Errorf("province %q: %w", s.ProvinceID, err)
		}
		if s.DistrictID != "" {
			if _, err := p.FindDistrict(s.DistrictID); err != nil {
				return fmt.Errorf("district %q: %w", s.DistrictID, err)
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPage, s.Page)
	}
	return nil
}

// OpenProvince moves to the province page with every district selected and
// the search text cleared. Unknown ids and provinces without districts leave
// the state unchanged.
func (s State) OpenProvince(cat *catalog.Catalog, id string) (State, error) {
	p, err := cat.FindProvince(id)
	if err != nil {
		return s, err
	}
	if !p.HasData() {
		return s, &UnavailableError{Province: p.Name}
	}
	s.Page = PageProvince
	s.ProvinceID = p.ID
	s.DistrictID = ""
	s.Query = ""
	return s, nil
}

// SelectDistrict picks a district tab of the open province. An empty id
// selects all districts. The search text is cleared.
func (s State) SelectDistrict(cat *catalog.Catalog, id string) (State, error) {
	if s.Page != PageProvince {
		return s, ErrNoProvince
	}
	if id != "" {
		p, err := cat.FindProvince(s.ProvinceID)
		if err != nil {
			return s, err
		}
		if _, err := p.FindDistrict(id); err != nil {
			return s, err
		}
	}
	s.DistrictID = id
	s.Query = ""
	return s, nil
}

// SetQuery sets the search text used within the open province.
func (s State) SetQuery(text string) (State, error) {
	if s.Page != PageProvince {
		return s, ErrNoProvince
	}
	s.Query = text
	return s, nil
}

// SetRegion changes only the region selector used by the province grids.
func (s State) SetRegion(r catalog.Region) (State, error) {
	if !r.Valid() {
		return s, fmt.Errorf("%w: %q", catalog.ErrUnknownRegion, r)
	}
	s.Region = r
	return s, nil
}

func (s State) GoHome() State         { return s.goTo(PageHome) }
func (s State) GoAllProvinces() State { return s.goTo(PageAllProvinces) }
func (s State) GoAbout() State        { return s.goTo(PageAbout) }

func (s State) goTo(p Page) State {
	return State{Page: p, Region: s.Region}
}

// UnavailableError carries the notice for a province without data. It
// matches ErrUnavailableData under errors.Is.
type UnavailableError struct {
	Province string
}

func (e *UnavailableError) Error() string {
	return "ยังไม่มีข้อมูลร้านอาหารใน" + e.Province + " กำลังรวบรวมข้อมูล..."
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailableData
}
