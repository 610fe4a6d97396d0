package directory

import (
	"fmt"
	"log"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/korninw/thai-food-finder/internal/catalogdb"
	"github.com/korninw/thai-food-finder/internal/db"
)

// Service serves the directory API over one immutable catalog.
type Service struct {
	cat *catalog.Catalog
	cfg Config
}

func NewService(cat *catalog.Catalog, cfg Config) *Service {
	if cfg.PopularLimit <= 0 {
		cfg.PopularLimit = DefaultPopularLimit
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = DefaultSearchLimit
	}
	return &Service{cat: cat, cfg: cfg}
}

// Catalog returns the dataset the service was built with.
func (s *Service) Catalog() *catalog.Catalog { return s.cat }

// LoadCatalog reads the dataset from the configured source.
func LoadCatalog(cfg Config) (*catalog.Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.Source {
	case SourcePostgres:
		gdb, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := gdb.DB(); err == nil {
			defer sqlDB.Close()
		}
		return catalogdb.Load(gdb)
	default:
		return catalog.LoadFile(cfg.DatasetPath)
	}
}

// Init loads the dataset or exits.
func Init(cfg Config) *Service {
	cat, err := LoadCatalog(cfg)
	if err != nil {
		log.Fatal("Failed to load directory dataset: ", err)
	}

	st := cat.Stats()
	log.Printf("[directory] loaded %d provinces (%d with data), %d districts, %d restaurants from %s (fingerprint %s)",
		len(cat.Provinces()), st.Provinces, st.Districts, st.Restaurants, cfg.Source, cat.Fingerprint())
	return NewService(cat, cfg)
}
