package schedule

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"forecast-api/internal/application/cli"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
)

type ForecastScheduler struct {
	cron   *cron.Cron
	runner *cli.Runner
	days   int
}

func NewForecastScheduler(runner *cli.Runner, days int) *ForecastScheduler {
	return &ForecastScheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		runner: runner,
		days:   days,
	}
}

// Run fetches a forecast on every tick of cronExpression until ctx is cancelled.
// An in-flight fetch is cancelled with ctx and overlapping ticks are skipped.
func (scheduler *ForecastScheduler) Run(ctx context.Context, cronExpression string) error {
	_, err := scheduler.cron.AddFunc(cronExpression, func() {
		_, _ = scheduler.runner.RunOnce(ctx, scheduler.days)
	})
	if err != nil {
		log.Error(msg.GetMessage("client.schedule.invalid", cronExpression))
		return fmt.Errorf("invalid cron expression %q: %w", cronExpression, err)
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("client.schedule.start", cronExpression))

	<-ctx.Done()
	<-scheduler.cron.Stop().Done()

	log.Info(msg.GetMessage("client.schedule.stop"))
	return nil
}
