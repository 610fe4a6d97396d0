package query_test

import "github.com/korninw/thai-food-finder/internal/catalog"

// fixture returns a small dataset: three northern provinces and two central
// ones, one of which has no districts.
func fixture() []catalog.Province {
	return []catalog.Province{
		{
			ID: "chiangmai", Name: "เชียงใหม่", NameEn: "Chiang Mai", Region: catalog.RegionNorth, Emoji: "🏔️",
			Districts: []catalog.District{
				{ID: "mueang", Name: "เมืองเชียงใหม่", Restaurants: []catalog.Restaurant{
					{ID: 1, Name: "Khao Soi Mae Sai", Type: "อาหารเหนือ", Rating: 4.7, Reviews: 1200, Tags: []string{"ข้าวซอย", "Local"}, Recommended: true, Emoji: "🍜"},
					{ID: 2, Name: "Huen Phen", Type: "อาหารเหนือ", Rating: 4.5, Reviews: 900, Tags: []string{"แกงฮังเล"}, Recommended: false, Emoji: "🍛"},
				}},
				{ID: "hangdong", Name: "หางดง", Restaurants: []catalog.Restaurant{
					{ID: 3, Name: "Somtam Hangdong", Type: "อาหารอีสาน", Rating: 4.2, Reviews: 300, Tags: []string{"ส้มตำ"}, Recommended: true, Emoji: "🥗"},
				}},
			},
		},
		{
			ID: "bangkok", Name: "กรุงเทพมหานคร", NameEn: "Bangkok", Region: catalog.RegionCentral, Emoji: "🏙️",
			Districts: []catalog.District{
				{ID: "x", Name: "บางรัก", Restaurants: []catalog.Restaurant{
					{ID: 10, Name: "Thai Delight", Type: "อาหารไทย", Rating: 4.5, Reviews: 100, Tags: []string{"Tom Yum"}, Recommended: true, Emoji: "🍲"},
					{ID: 11, Name: "Noodle Hut", Type: "ก๋วยเตี๋ยว", Rating: 4.5, Reviews: 250, Recommended: true, Emoji: "🍜"},
				}},
			},
		},
		{ID: "chiangrai", Name: "เชียงราย", NameEn: "Chiang Rai", Region: catalog.RegionNorth, Emoji: "⛰️"},
		{ID: "ayutthaya", Name: "พระนครศรีอยุธยา", NameEn: "Ayutthaya", Region: catalog.RegionCentral, Emoji: "🛕"},
		{
			ID: "nan", Name: "น่าน", NameEn: "Nan", Region: catalog.RegionNorth, Emoji: "🌾",
			Districts: []catalog.District{
				{ID: "pua", Name: "ปัว", Restaurants: []catalog.Restaurant{
					{ID: 20, Name: "Pua Noodle", Type: "ก๋วยเตี๋ยว", Rating: 4.5, Reviews: 250, Recommended: true, Emoji: "🍜"},
				}},
			},
		},
	}
}

func ids(ps []catalog.Province) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func restaurantIDs(rs []catalog.Restaurant) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}
