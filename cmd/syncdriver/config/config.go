package config

import "time"

// Config holds sync driver configuration.
type Config struct {
	APIURL   string `env:"API_URL" envDefault:"http://localhost:8080"`
	APIToken string `env:"API_TOKEN"`

	PollInterval      time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	StallThreshold    int           `env:"STALL_THRESHOLD" envDefault:"3"`
	SettleDelay       time.Duration `env:"SETTLE_DELAY" envDefault:"10s"`
	SweepPause        time.Duration `env:"SWEEP_PAUSE" envDefault:"1s"`
	RecoveryBatchSize int64         `env:"RECOVERY_BATCH_SIZE" envDefault:"100"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"10m"`
}
