// Package scheduler runs the recurring background jobs of the API, currently
// only the inventory alert sweep. Jobs are standard 5-field cron expressions.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/jefftricks/shamba-api/internal/application/inventory"
	"github.com/jefftricks/shamba-api/pkg/config"
)

// Scheduler owns the cron runner and its registered jobs.
type Scheduler struct {
	cron *cron.Cron
}

// New registers the enabled jobs. When alerts are disabled the scheduler is
// still returned so Start/Stop stay safe to call unconditionally from main.
func New(cfg config.AlertsConfig, alerts *inventory.AlertsUseCase) (*Scheduler, error) {
	c := cron.New()

	if cfg.Enabled {
		_, err := c.AddFunc(cfg.Schedule, func() {
			if _, err := alerts.Run(context.Background()); err != nil {
				log.Error().Err(err).Msg("scheduled inventory alert sweep failed")
			}
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("schedule", cfg.Schedule).Msg("inventory alert sweep scheduled")
	}

	return &Scheduler{cron: c}, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
