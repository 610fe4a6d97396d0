package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/catalogdb"
	"github.com/korninw/thai-food-finder/internal/db"
)

func main() {
	_ = godotenv.Load(".env.local")

	var (
		dataPath = flag.String("data", "data/provinces.yaml", "path to YAML or JSON dataset")
		dbURL    = flag.String("db", os.Getenv("DATABASE_URL"), "DATABASE_URL")
		wipe     = flag.Bool("wipe", false, "DANGER: truncates directory tables before seeding")
		verbose  = flag.Bool("verbose", false, "log every SQL statement")
	)
	flag.Parse()

	if *dataPath == "" || *dbURL == "" {
		flag.Usage()
		os.Exit(2)
	}

	cat, err := catalog.LoadFile(*dataPath)
	if err != nil {
		log.Fatalf("❌ Loading dataset failed: %v", err)
	}

	opts := db.DefaultOptions()
	if *verbose {
		opts.LogLevel = logger.Info
	}
	gdb, err := db.OpenWith(*dbURL, opts)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := catalogdb.Init(gdb); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	if err := catalogdb.Seed(gdb, cat, *wipe); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
