package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/korninw/thai-food-finder/internal/navigation"
	"github.com/korninw/thai-food-finder/internal/query"
)

func searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search provinces, districts and restaurants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = cfg.SearchLimit
			}
			_, err := searchHits(cmd.OutOrStdout(), args[0], limit)
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of hits shown (default $SEARCH_LIMIT or 8)")
	return cmd
}

func goCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "go <text>",
		Short: "Search and open the first hit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := quickSearch(cmd.OutOrStdout(), navigation.Initial(), args[0])
			return err
		},
	}
}

// searchHits renders the dropdown for text and returns the hits shown. Blank
// text shows nothing.
func searchHits(out io.Writer, text string, limit int) ([]query.Hit, error) {
	hits, err := query.SearchAll(cat.Provinces(), text)
	switch {
	case errors.Is(err, query.ErrBlankQuery):
		return nil, nil
	case errors.Is(err, query.ErrEmptyResult):
		fmt.Fprintf(out, "ไม่พบผลการค้นหาสำหรับ %q\n", text)
		return nil, nil
	case err != nil:
		return nil, err
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	printHits(out, hits)
	return hits, nil
}

// quickSearch dispatches the first hit for text and renders where it led.
func quickSearch(out io.Writer, st navigation.State, text string) (navigation.State, error) {
	res, hit, err := navigation.QuickSearch(cat, st, text)
	switch {
	case errors.Is(err, query.ErrBlankQuery):
		return st, nil
	case errors.Is(err, query.ErrEmptyResult):
		fmt.Fprintf(out, "ไม่พบผลการค้นหาสำหรับ %q\n", text)
		return st, nil
	}
	return show(out, res, hit, err)
}

// open dispatches a dropdown hit the same way quick search does.
func open(out io.Writer, st navigation.State, hit query.Hit) (navigation.State, error) {
	res, err := navigation.Dispatch(cat, st, hit.Action)
	return show(out, res, hit, err)
}

func show(out io.Writer, res navigation.Outcome, hit query.Hit, err error) (navigation.State, error) {
	if errors.Is(err, navigation.ErrUnavailableData) {
		fmt.Fprintln(out, err)
		return res.State, nil
	}
	if err != nil {
		return res.State, fmt.Errorf("%s: %w", hit.Action, err)
	}

	if res.Restaurant != nil {
		printRestaurantDetail(out, *res.Restaurant)
		return res.State, nil
	}
	p, err := cat.FindProvince(res.State.ProvinceID)
	if err != nil {
		return res.State, err
	}
	printProvinceHeader(out, p, res.State.DistrictID)
	if list, err := query.FilterRestaurants(p, "", ""); err == nil {
		printRestaurants(out, list)
	}
	return res.State, nil
}
