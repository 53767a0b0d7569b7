package monitor

import (
	"context"

	"github.com/quantor-labs/coinbasex/internal/schedule"
)

type MarketMonitorTask struct {
	monitor *MarketMonitor
}

func NewMarketMonitorTask(monitor *MarketMonitor) schedule.Task {
	return &MarketMonitorTask{
		monitor: monitor,
	}
}

func (t *MarketMonitorTask) Run(ctx context.Context) error {
	return t.monitor.Scan(ctx)
}

func (t *MarketMonitorTask) Name() string {
	return "market recorder task"
}
