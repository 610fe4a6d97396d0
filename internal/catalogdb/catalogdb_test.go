package catalogdb

import (
	"os"
	"reflect"
	"testing"

	"github.com/joho/godotenv"
	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/db"
)

func sampleProvinces() []catalog.Province {
	return []catalog.Province{
		{
			ID: "chiangmai", Name: "เชียงใหม่", NameEn: "Chiang Mai", Region: catalog.RegionNorth, Desc: "เมืองเหนือ", Emoji: "🏔️",
			Districts: []catalog.District{
				{ID: "mueang", Name: "เมือง", Restaurants: []catalog.Restaurant{
					{ID: 1, Name: "Khao Soi Mae Sai", Type: "อาหารเหนือ", Rating: 4.7, Reviews: 1200, Price: 60, Tags: []string{"ข้าวซอย"}, Recommended: true, Emoji: "🍜"},
					{ID: 2, Name: "Huen Phen", Type: "อาหารเหนือ", Rating: 4.5, Reviews: 900, Price: 120, Tags: []string{"แกงฮังเล", "ไส้อั่ว"}, Emoji: "🍛"},
				}},
				{ID: "hangdong", Name: "หางดง", Restaurants: []catalog.Restaurant{
					{ID: 3, Name: "Somtam Hangdong", Type: "อาหารอีสาน", Rating: 4.2, Reviews: 300, Price: 80, Tags: []string{"ส้มตำ"}, Emoji: "🥗"},
				}},
			},
		},
		{ID: "nan", Name: "น่าน", NameEn: "Nan", Region: catalog.RegionNorth, Emoji: "🌾"},
	}
}

func TestRowsKeepOrderAndIDs(t *testing.T) {
	ps, ds, rs := Rows(sampleProvinces())

	if len(ps) != 2 || len(ds) != 2 || len(rs) != 3 {
		t.Fatalf("got %d/%d/%d rows, want 2/2/3", len(ps), len(ds), len(rs))
	}
	if ps[1].SortOrder != 1 || ds[1].SortOrder != 1 || rs[1].SortOrder != 1 || rs[2].SortOrder != 0 {
		t.Errorf("sort orders not preserved: %+v %+v %+v", ps, ds, rs)
	}
	if ds[0].ProvinceID != ps[0].ID || rs[2].DistrictID != ds[1].ID {
		t.Error("foreign keys do not point at owners")
	}
	if rs[0].ID != RestaurantID(1) || ps[0].ID != ProvinceID("chiangmai") {
		t.Error("ids are not derived deterministically")
	}
}

func TestDerivedIDsAreScoped(t *testing.T) {
	a, b := ProvinceID("a"), ProvinceID("b")
	if DistrictID(a, "mueang") == DistrictID(b, "mueang") {
		t.Error("same district id in two provinces collides")
	}
	if ProvinceID("a") != a {
		t.Error("ProvinceID is not stable")
	}
}

// TestTreeRoundTrip rebuilds the dataset from rows the way Load does after
// preloading.
func TestTreeRoundTrip(t *testing.T) {
	want := sampleProvinces()
	ps, ds, rs := Rows(want)

	for i := range ds {
		for _, r := range rs {
			if r.DistrictID == ds[i].ID {
				ds[i].Restaurants = append(ds[i].Restaurants, r)
			}
		}
	}
	for i := range ps {
		for _, d := range ds {
			if d.ProvinceID == ps[i].ID {
				ps[i].Districts = append(ps[i].Districts, d)
			}
		}
	}

	got := Tree(ps)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tree(Rows(x)) != x\n got: %+v\nwant: %+v", got, want)
	}
}

// TestSeedAndLoad needs a database; it skips without DATABASE_URL.
func TestSeedAndLoad(t *testing.T) {
	_ = godotenv.Load("../../.env.local")
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	d, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	if err := Init(d); err != nil {
		t.Fatalf("Init: %v", err)
	}

	cat, err := catalog.New(sampleProvinces())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	if err := Seed(d, cat, true); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	// Seeding twice must update in place.
	if err := Seed(d, cat, false); err != nil {
		t.Fatalf("Seed again: %v", err)
	}

	loaded, err := Load(d)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Stats() != cat.Stats() {
		t.Errorf("Stats = %+v, want %+v", loaded.Stats(), cat.Stats())
	}
	ref, err := loaded.FindRestaurant(3)
	if err != nil || ref.District.ID != "hangdong" {
		t.Errorf("FindRestaurant(3) = %+v, %v", ref, err)
	}
}
