package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/quantor-labs/coinbasex/coinbase"
	"github.com/quantor-labs/coinbasex/internal/repo"
	"github.com/quantor-labs/coinbasex/internal/schedule"
	"github.com/quantor-labs/coinbasex/internal/service/monitor"
	"github.com/quantor-labs/coinbasex/ioc"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()

	db := ioc.InitDB()
	cb := ioc.InitCoinbaseCli()

	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	candleRepo := repo.NewCandleRepo(db)
	tickerRepo := repo.NewTickerRepo(db)

	products := viper.GetStringSlice("monitor.products")
	if len(products) == 0 {
		products = []string{"BTC-USD"}
	}
	interval := viper.GetDuration("monitor.interval")
	if interval == 0 {
		interval = 5 * time.Minute
	}

	marketMonitor := monitor.NewMarketMonitor(cb.Products(), candleRepo, tickerRepo,
		products, coinbase.Granularity5m)
	task := monitor.NewMarketMonitorTask(marketMonitor)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := schedule.RunEvery(ctx, task, interval); err != nil && ctx.Err() == nil {
		panic(err)
	}
}
