package jobs

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

var backendUp = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "driver_assist",
	Subsystem: "gateway",
	Name:      "backend_up",
	Help:      "Whether the backend order service answered the last health probe.",
})

type HealthChecker interface {
	Health(ctx context.Context) bool
}

// HealthProbeJob periodically probes the backend order service and keeps
// the backend_up gauge current.
type HealthProbeJob struct {
	checker  HealthChecker
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

func NewHealthProbeJob(checker HealthChecker, schedule string, logger *slog.Logger) *HealthProbeJob {
	return &HealthProbeJob{
		checker:  checker,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With(slog.String("component", "health_probe_job")),
	}
}

func (j *HealthProbeJob) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.probe(ctx)
	})
	if err != nil {
		return err
	}

	j.probe(ctx)
	j.cron.Start()
	j.logger.InfoContext(ctx, "health probe started", slog.String("schedule", j.schedule))
	return nil
}

func (j *HealthProbeJob) probe(ctx context.Context) {
	if j.checker.Health(ctx) {
		backendUp.Set(1)
		return
	}
	backendUp.Set(0)
	j.logger.WarnContext(ctx, "backend order service is down")
}

func (j *HealthProbeJob) Stop() {
	j.cron.Stop()
	j.logger.Info("health probe stopped")
}
