package ioc

import (
	"os"

	"github.com/spf13/viper"

	"github.com/quantor-labs/coinbasex/coinbase"
)

func InitCoinbaseCli() *coinbase.Client {
	type Config struct {
		Key        string `mapstructure:"key"`
		Secret     string `mapstructure:"secret"`
		Passphrase string `mapstructure:"passphrase"`
		Endpoint   string `mapstructure:"endpoint"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("cex.coinbase", &cfg); err != nil {
		panic(err)
	}

	// sandbox env vars win over the config file
	if v := os.Getenv("COINBASE_SANDBOX_KEY"); v != "" {
		cfg.Key = v
	}
	if v := os.Getenv("COINBASE_SANDBOX_SECRET"); v != "" {
		cfg.Secret = v
	}
	if v := os.Getenv("COINBASE_SANDBOX_PASSPHRASE"); v != "" {
		cfg.Passphrase = v
	}
	if v := os.Getenv("COINBASE_SANDBOX_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}

	opts := make([]coinbase.Option, 0, 1)
	if cfg.Endpoint != "" {
		opts = append(opts, coinbase.WithBaseURL(cfg.Endpoint))
	}
	return coinbase.New(cfg.Key, cfg.Secret, cfg.Passphrase, opts...)
}
