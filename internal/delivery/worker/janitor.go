// Package worker hosts the background deliveries of the gateway.
package worker

import (
	"context"
	"log/slog"
	"time"

	"roost/config"
	"roost/internal/delivery"
	"roost/internal/domain/lifecycle"
	"roost/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSweepInterval = 5 * time.Minute

// JanitorParams holds dependencies for the hand-off janitor, injected
// by Fx.
type JanitorParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ConnectionUC usecase.ConnectionUsecase
}

// janitor periodically removes hand-off envelopes whose link attempt
// was abandoned. Without it, stale envelopes only disappear when a
// callback happens to read them.
type janitor struct {
	interval     time.Duration
	logger       *slog.Logger
	connectionUC usecase.ConnectionUsecase
	stop         chan struct{}
	done         chan struct{}
}

// NewJanitor creates the hand-off janitor delivery.
func NewJanitor(params JanitorParams) (delivery.Delivery, error) {
	interval := defaultSweepInterval
	if params.Cfg.Worker != nil {
		interval = params.Cfg.Worker.HandoffSweepInterval
	}

	j := &janitor{
		interval:     interval,
		logger:       params.Logger,
		connectionUC: params.ConnectionUC,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: j.shutdown,
	})

	return j, nil
}

// Serve runs the sweep loop until shutdown. A zero or negative
// interval disables the sweep.
func (j *janitor) Serve(ctx context.Context) error {
	defer close(j.done)

	if j.interval <= 0 {
		j.logger.Info("Hand-off sweep disabled")

		return nil
	}

	j.logger.Info("Hand-off janitor started", slog.Duration("interval", j.interval))

	// One sweep right away, then on every tick.
	j.sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep(ctx)
		case <-j.stop:
			return nil
		}
	}
}

func (j *janitor) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := j.connectionUC.SweepExpiredHandoffs(sweepCtx)
	if err != nil {
		j.logger.Error("Hand-off sweep failed", slog.Any("error", err))

		return
	}

	if removed > 0 {
		j.logger.Info("Swept expired hand-offs", slog.Int64("removed", removed))
	}
}

func (j *janitor) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	j.logger.Info("Shutting down hand-off janitor")

	close(j.stop)

	select {
	case <-j.done:
		return nil
	case <-shutdownCtx.Done():
		return errors.WithStack(shutdownCtx.Err())
	}
}
