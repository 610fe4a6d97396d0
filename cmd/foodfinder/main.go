package main

import (
	"os"

	"github.com/korninw/thai-food-finder/cmd/foodfinder/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
