package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from the environment; every field has a development
// default so the server starts with no setup.
type Config struct {
	Port                   string        `env:"PORT" envDefault:"8080"`
	JWTSecret              string        `env:"JWT_SECRET" envDefault:"flightcool-dev-secret"`
	TokenTTL               time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	SubmitSettleDelay      time.Duration `env:"SUBMIT_SETTLE_DELAY" envDefault:"1s"`
	SubmitResetDelay       time.Duration `env:"SUBMIT_RESET_DELAY" envDefault:"3s"`
	DestinationRegistryURL string        `env:"DESTINATION_REGISTRY_URL"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
