package dashboard

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL    string        `envconfig:"DASHBOARD_BASE_URL" default:"http://localhost:8080"`
	PollPeriod time.Duration `envconfig:"POLL_PERIOD" default:"5s"`
	TradeLimit int           `envconfig:"TRADE_LIMIT" default:"50"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
