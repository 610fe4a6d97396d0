package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/directory"
)

var (
	dataPath string
	cfg      directory.Config
	cat      *catalog.Catalog
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "foodfinder",
		Short:        "Browse Thai restaurants by province and district",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load(".env.local")
			cfg = directory.LoadFromEnv()
			if dataPath != "" {
				cfg.Source = directory.SourceFile
				cfg.DatasetPath = dataPath
			}

			c, err := directory.LoadCatalog(cfg)
			if err != nil {
				return err
			}
			cat = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dataPath, "data", "", "dataset file (default $DATASET_PATH or data/provinces.yaml)")

	root.AddCommand(
		provincesCmd(),
		provinceCmd(),
		restaurantCmd(),
		popularCmd(),
		searchCmd(),
		goCmd(),
		interactiveCmd(),
	)
	return root
}
