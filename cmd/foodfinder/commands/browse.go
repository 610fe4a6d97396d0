package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/navigation"
	"github.com/korninw/thai-food-finder/internal/query"
)

func provincesCmd() *cobra.Command {
	var (
		region string
		all    bool
	)
	cmd := &cobra.Command{
		Use:   "provinces",
		Short: "List provinces with data, or every province with --all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := catalog.ParseRegion(region)
			if err != nil {
				return err
			}
			source := cat.Featured()
			if all {
				source = cat.Provinces()
			}

			out := cmd.OutOrStdout()
			list, err := query.FilterByRegion(source, r)
			if errors.Is(err, query.ErrEmptyResult) {
				fmt.Fprintf(out, "ไม่พบจังหวัดใน%s\n", r.DisplayName())
				return nil
			}
			if err != nil {
				return err
			}
			printProvinces(out, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region: north, northeast, central, east, west, south")
	cmd.Flags().BoolVar(&all, "all", false, "include provinces without data")
	return cmd
}

func provinceCmd() *cobra.Command {
	var district, text string
	cmd := &cobra.Command{
		Use:   "province <id>",
		Short: "Show a province and its restaurants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			st, err := navigation.Initial().OpenProvince(cat, args[0])
			if errors.Is(err, navigation.ErrUnavailableData) {
				fmt.Fprintln(out, err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("province %q: %w", args[0], err)
			}
			if district != "" {
				if st, err = st.SelectDistrict(cat, district); err != nil {
					return fmt.Errorf("district %q: %w", district, err)
				}
			}
			if st, err = st.SetQuery(text); err != nil {
				return err
			}

			p, _ := cat.FindProvince(st.ProvinceID)
			printProvinceHeader(out, p, st.DistrictID)
			list, err := query.FilterRestaurants(p, st.DistrictID, st.Query)
			if errors.Is(err, query.ErrEmptyResult) {
				fmt.Fprintln(out, "ไม่พบร้านอาหารที่ค้นหา")
				return nil
			}
			if err != nil {
				return err
			}
			printRestaurants(out, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&district, "district", "", "district id (default all districts)")
	cmd.Flags().StringVarP(&text, "query", "q", "", "filter by name, type or tag")
	return cmd
}

func restaurantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restaurant <id>",
		Short: "Show one restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid restaurant id %q", args[0])
			}
			ref, err := cat.FindRestaurant(id)
			if err != nil {
				return fmt.Errorf("restaurant %d: %w", id, err)
			}
			printRestaurantDetail(cmd.OutOrStdout(), ref)
			return nil
		},
	}
}

func popularCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List the top recommended restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = cfg.PopularLimit
			}
			entries := query.Popular(cat.Provinces())
			if len(entries) > limit {
				entries = entries[:limit]
			}
			printPopular(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of entries (default $POPULAR_LIMIT or 6)")
	return cmd
}
