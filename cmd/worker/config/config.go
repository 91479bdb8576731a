package config

import "time"

// Config holds sweep worker configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	BatchDelay  time.Duration `env:"BATCH_DELAY" envDefault:"1s"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"catalog-sync-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"catalog-sync.sweeps"`
}
