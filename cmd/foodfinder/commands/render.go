package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/query"
)

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func printProvinces(out io.Writer, ps []catalog.Province) {
	tw := table(out)
	fmt.Fprintln(tw, "ID\tจังหวัด\tภาค\tร้าน")
	for _, p := range ps {
		fmt.Fprintf(tw, "%s\t%s %s (%s)\t%s\t%d\n", p.ID, p.Emoji, p.Name, p.NameEn, p.Region.DisplayName(), p.RestaurantCount())
	}
	_ = tw.Flush()
}

func printProvinceHeader(out io.Writer, p *catalog.Province, districtID string) {
	fmt.Fprintf(out, "%s %s (%s) · %s\n", p.Emoji, p.Name, p.NameEn, p.Region.DisplayName())
	if p.Desc != "" {
		fmt.Fprintln(out, p.Desc)
	}
	fmt.Fprintf(out, "%d เขต/อำเภอ · %d ร้าน\n", len(p.Districts), p.RestaurantCount())

	tabs := make([]string, 0, len(p.Districts)+1)
	tabs = append(tabs, mark("ทั้งหมด", districtID == ""))
	for _, d := range p.Districts {
		tabs = append(tabs, mark(d.Name+" ("+d.ID+")", d.ID == districtID))
	}
	fmt.Fprintln(out, strings.Join(tabs, " | "))
}

func mark(label string, active bool) string {
	if active {
		return "[" + label + "]"
	}
	return label
}

func printRestaurants(out io.Writer, rs []catalog.Restaurant) {
	tw := table(out)
	fmt.Fprintln(tw, "ID\tร้าน\tประเภท\tคะแนน\tราคา")
	for _, r := range rs {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%.1f (%d)\t%.0f\n", r.ID, r.Emoji, r.Name, r.Type, r.Rating, r.Reviews, r.Price)
	}
	_ = tw.Flush()
}

func printRestaurantDetail(out io.Writer, ref catalog.RestaurantRef) {
	r := ref.Restaurant
	fmt.Fprintf(out, "%s %s\n", r.Emoji, r.Name)
	fmt.Fprintf(out, "%s · ⭐ %.1f (%d รีวิว) · ฿%.0f\n", r.Type, r.Rating, r.Reviews, r.Price)
	fmt.Fprintf(out, "📍 %s, %s, %s\n", r.Address, ref.District.Name, ref.Province.Name)
	if r.Hours != "" {
		fmt.Fprintf(out, "🕐 %s\n", r.Hours)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(out, "# %s\n", strings.Join(r.Tags, ", "))
	}
}

func printPopular(out io.Writer, entries []query.PopularEntry) {
	tw := table(out)
	fmt.Fprintln(tw, "#\tร้าน\tจังหวัด\tคะแนน")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%.1f (%d)\n", i+1, e.Restaurant.Emoji, e.Restaurant.Name, e.ProvinceName, e.Restaurant.Rating, e.Restaurant.Reviews)
	}
	_ = tw.Flush()
}

func printHits(out io.Writer, hits []query.Hit) {
	tw := table(out)
	for i, h := range hits {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\n", i+1, h.Emoji, h.Label, h.Category)
	}
	_ = tw.Flush()
}
