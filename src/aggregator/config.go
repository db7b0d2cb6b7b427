package aggregator

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// TraderAddresses is the comma-separated list of tracked addresses.
	TraderAddresses string `envconfig:"TRADER_ADDRESSES" required:"true"`
	ProxyWallet     string `envconfig:"PROXY_WALLET" required:"true"`

	// Chain parameters consumed by the on-chain tooling around the bot,
	// required here so a misconfigured deploy fails at startup.
	RPCURL       string `envconfig:"RPC_URL" required:"true"`
	USDCContract string `envconfig:"USDC_CONTRACT_ADDRESS" required:"true"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}

// Traders parses the configured address list: split on comma, trim
// whitespace, drop empty entries, lowercase.
func (c Config) Traders() []string {
	parts := strings.Split(c.TraderAddresses, ",")
	traders := make([]string, 0, len(parts))
	for _, part := range parts {
		address := strings.TrimSpace(part)
		if address == "" {
			continue
		}
		traders = append(traders, strings.ToLower(address))
	}
	return traders
}
