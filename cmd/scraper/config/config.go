package config

import "time"

// Config holds scraper API configuration.
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL"`
	ListenAddr    string        `env:"LISTEN_ADDR" envDefault:":8080"`
	ScrapeSecret  string        `env:"SCRAPE_SECRET"`
	BatchDelay    time.Duration `env:"BATCH_DELAY" envDefault:"1s"`
	BatchDeadline time.Duration `env:"BATCH_DEADLINE" envDefault:"5m"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
}
