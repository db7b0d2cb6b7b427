package database

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Driver selects the gorm dialector. "postgres" for the bot's live
	// store, "sqlite" for local snapshot copies of it.
	Driver       string `envconfig:"DB_DRIVER" default:"postgres"`
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	GormLogLevel int    `envconfig:"GORM_LOG_LEVEL" default:"2"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
