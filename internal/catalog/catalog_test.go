package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testDataset = `
provinces:
  - id: bangkok
    name: กรุงเทพมหานคร
    name_en: Bangkok
    region: central
    emoji: "🏙️"
    districts:
      - id: bangrak
        name: บางรัก
        restaurants:
          - id: 1
            name: Thai Delight
            type: อาหารไทย
            rating: 4.5
            reviews: 100
            tags: [ต้มยำ, seafood]
            recommended: true
          - id: 2
            name: Noodle Hut
            type: ก๋วยเตี๋ยว
            rating: 4.5
            reviews: 250
            recommended: true
      - id: pathumwan
        name: ปทุมวัน
        restaurants:
          - id: 3
            name: Somtam House
            type: อาหารอีสาน
            rating: 4.1
            reviews: 80
  - id: nan
    name: น่าน
    name_en: Nan
    region: north
    districts: []
`

func mustParse(t *testing.T, src string) *Catalog {
	t.Helper()
	c, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func TestFindProvince(t *testing.T) {
	c := mustParse(t, testDataset)

	p, err := c.FindProvince("bangkok")
	if err != nil {
		t.Fatalf("FindProvince(bangkok): %v", err)
	}
	if p.NameEn != "Bangkok" || len(p.Districts) != 2 {
		t.Errorf("unexpected province: %+v", p)
	}

	if _, err := c.FindProvince("atlantis"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindProvince(atlantis) err = %v, want ErrNotFound", err)
	}
}

func TestFindRestaurant(t *testing.T) {
	c := mustParse(t, testDataset)

	ref, err := c.FindRestaurant(3)
	if err != nil {
		t.Fatalf("FindRestaurant(3): %v", err)
	}
	if ref.Restaurant.Name != "Somtam House" {
		t.Errorf("restaurant = %q, want Somtam House", ref.Restaurant.Name)
	}
	if ref.District.ID != "pathumwan" || ref.Province.ID != "bangkok" {
		t.Errorf("owners = %s/%s, want bangkok/pathumwan", ref.Province.ID, ref.District.ID)
	}

	if _, err := c.FindRestaurant(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindRestaurant(99) err = %v, want ErrNotFound", err)
	}
}

func TestFindDistrict(t *testing.T) {
	c := mustParse(t, testDataset)
	p, _ := c.FindProvince("bangkok")

	d, err := p.FindDistrict("bangrak")
	if err != nil || d.Name != "บางรัก" {
		t.Fatalf("FindDistrict(bangrak) = %v, %v", d, err)
	}
	if _, err := p.FindDistrict("nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindDistrict(nowhere) err = %v, want ErrNotFound", err)
	}
}

func TestStatsAndFeatured(t *testing.T) {
	c := mustParse(t, testDataset)

	got := c.Stats()
	want := Stats{Provinces: 1, Districts: 2, Restaurants: 3}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	featured := c.Featured()
	if len(featured) != 1 || featured[0].ID != "bangkok" {
		t.Errorf("Featured() = %v, want only bangkok", featured)
	}
	if len(c.Provinces()) != 2 {
		t.Errorf("Provinces() len = %d, want 2", len(c.Provinces()))
	}
}

func TestNewRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name      string
		provinces []Province
		want      error
	}{
		{
			name: "duplicate restaurant across provinces",
			provinces: []Province{
				{ID: "a", Region: RegionNorth, Districts: []District{{ID: "d", Restaurants: []Restaurant{{ID: 7}}}}},
				{ID: "b", Region: RegionSouth, Districts: []District{{ID: "d", Restaurants: []Restaurant{{ID: 7}}}}},
			},
			want: ErrDuplicateRestaurant,
		},
		{
			name:      "duplicate province",
			provinces: []Province{{ID: "a", Region: RegionNorth}, {ID: "a", Region: RegionNorth}},
			want:      ErrDuplicateProvince,
		},
		{
			name: "duplicate district in one province",
			provinces: []Province{
				{ID: "a", Region: RegionNorth, Districts: []District{{ID: "d"}, {ID: "d"}}},
			},
			want: ErrDuplicateDistrict,
		},
		{
			name:      "unknown region",
			provinces: []Province{{ID: "a", Region: "space"}},
			want:      ErrUnknownRegion,
		},
		{
			name:      "all is not a province region",
			provinces: []Province{{ID: "a", Region: RegionAll}},
			want:      ErrUnknownRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.provinces); !errors.Is(err, tt.want) {
				t.Errorf("New() err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := mustParse(t, testDataset)
	b := mustParse(t, testDataset)
	if a.Fingerprint() == "" || a.Fingerprint() != b.Fingerprint() {
		t.Errorf("fingerprints differ for equal data: %q vs %q", a.Fingerprint(), b.Fingerprint())
	}

	c, err := New([]Province{{ID: "x", Region: RegionEast}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Fingerprint() == a.Fingerprint() {
		t.Error("different datasets share a fingerprint")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provinces.yaml")
	if err := os.WriteFile(path, []byte(testDataset), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(c.Provinces()) != 2 {
		t.Errorf("loaded %d provinces, want 2", len(c.Provinces()))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) returned nil error")
	}
}

func TestLoadJSON(t *testing.T) {
	src := `{"provinces":[{"id":"phuket","name":"ภูเก็ต","name_en":"Phuket","region":"south","districts":[{"id":"mueang","name":"เมือง","restaurants":[{"id":10,"name":"Raya","type":"อาหารใต้","rating":4.4,"reviews":900,"tags":["แกงปู"]}]}]}]}`
	c := mustParse(t, src)

	ref, err := c.FindRestaurant(10)
	if err != nil {
		t.Fatalf("FindRestaurant(10): %v", err)
	}
	if ref.Restaurant.Tags[0] != "แกงปู" || ref.Province.Region != RegionSouth {
		t.Errorf("unexpected restaurant: %+v in %+v", ref.Restaurant, ref.Province)
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in      string
		want    Region
		wantErr bool
	}{
		{"", RegionAll, false},
		{"all", RegionAll, false},
		{" North ", RegionNorth, false},
		{"northeast", RegionNortheast, false},
		{"mars", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseRegion(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if RegionNorth.DisplayName() != "ภาคเหนือ" {
		t.Errorf("DisplayName(north) = %q", RegionNorth.DisplayName())
	}
}

func TestShippedDataset(t *testing.T) {
	c, err := LoadFile(filepath.Join("..", "..", "data", "provinces.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if n := len(c.Provinces()); n != 8 {
		t.Errorf("Provinces() has %d entries, want 8", n)
	}
	want := Stats{Provinces: 6, Districts: 10, Restaurants: 15}
	if got := c.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if n := len(c.Featured()); n != 6 {
		t.Errorf("Featured() has %d provinces, want 6", n)
	}
}
