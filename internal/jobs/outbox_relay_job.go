package jobs

import (
	"context"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending outbox messages on a cron schedule.
// A tick is skipped while the previous one is still running.
type OutboxRelayJob struct {
	handler   outboxRelayer
	schedule  string
	batchSize int
	timeout   time.Duration
	cron      *cron.Cron
	logger    zerolog.Logger
}

// NewOutboxRelayJob creates the relay job. An empty schedule selects
// DefaultOutboxRelaySchedule and a non-positive batch size selects
// commands.DefaultOutboxBatchSize.
func NewOutboxRelayJob(handler outboxRelayer, schedule string, batchSize int, logger zerolog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	if batchSize <= 0 {
		batchSize = commands.DefaultOutboxBatchSize
	}
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		timeout:   30 * time.Second,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With().Str("component", "outbox_relay_job").Logger(),
	}
}

// Start schedules the job. It fails on a malformed schedule.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("Outbox relay job started")
	return nil
}

// RunOnce relays one batch and reports how many messages were published.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	timer := prometheus.NewTimer(metrics.OutboxRelayDuration)
	defer timer.ObserveDuration()

	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.Error().Err(err).Msg("Outbox relay job misconfigured")
		return 0
	}

	relayed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		metrics.OutboxRelayErrorsTotal.Inc()
		j.logger.Error().Err(err).Msg("Outbox relay failed")
		return 0
	}

	if relayed > 0 {
		metrics.OutboxRelayedTotal.Add(float64(relayed))
		j.logger.Debug().Int("relayed", relayed).Msg("Outbox messages published")
	}
	return relayed
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("Outbox relay job stopped")
}
