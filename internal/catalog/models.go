package catalog

// Province is a top-level region of the directory. Districts keep dataset order.
type Province struct {
	ID        string     `yaml:"id" json:"id"`
	Name      string     `yaml:"name" json:"name"`
	NameEn    string     `yaml:"name_en" json:"name_en"`
	Region    Region     `yaml:"region" json:"region"`
	Desc      string     `yaml:"desc" json:"desc"`
	Emoji     string     `yaml:"emoji" json:"emoji"`
	Districts []District `yaml:"districts" json:"districts"`
}

// District groups restaurants inside one province. IDs are unique only within
// the owning province.
type District struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Restaurants []Restaurant `yaml:"restaurants" json:"restaurants"`
}

// Restaurant is a single listing. IDs are unique across the whole dataset.
type Restaurant struct {
	ID          int      `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Type        string   `yaml:"type" json:"type"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Reviews     int      `yaml:"reviews" json:"reviews"`
	Price       float64  `yaml:"price" json:"price"`
	Address     string   `yaml:"address" json:"address"`
	Hours       string   `yaml:"hours" json:"hours"`
	Tags        []string `yaml:"tags" json:"tags"`
	Recommended bool     `yaml:"recommended" json:"recommended"`
	Emoji       string   `yaml:"emoji" json:"emoji"`
}

// RestaurantCount sums restaurants across all districts of p.
func (p Province) RestaurantCount() int {
	n := 0
	for _, d := range p.Districts {
		n += len(d.Restaurants)
	}
	return n
}

// HasData reports whether the province has any district collected yet.
func (p Province) HasData() bool {
	return len(p.Districts) > 0
}

// FindDistrict returns the district with the given id inside p.
func (p *Province) FindDistrict(id string) (*District, error) {
	for i := range p.Districts {
		if p.Districts[i].ID == id {
			return &p.Districts[i], nil
		}
	}
	return nil, ErrNotFound
}

// RestaurantRef is a restaurant together with the district and province that own it.
type RestaurantRef struct {
	Restaurant *Restaurant
	District   *District
	Province   *Province
}

// Stats holds the directory-wide totals shown on the home page.
type Stats struct {
	Provinces   int `json:"provinces"`
	Districts   int `json:"districts"`
	Restaurants int `json:"restaurants"`
}
