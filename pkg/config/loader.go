package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct using `env`
// tags. Service configs layer their own validation on top.
//
// Example:
//
//	type Config struct {
//	    HTTPPort       int    `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`
//	    CatalogBaseURL string `env:"CATALOG_BASE_URL" envDefault:"https://dummyjson.com"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
