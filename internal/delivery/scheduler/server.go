// Package scheduler runs the daily goal evaluator on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"wayfarer/config"
	"wayfarer/internal/delivery"
	"wayfarer/internal/usecase"

	"go.uber.org/fx"
)

const defaultEvaluateInterval = 30 * time.Minute

// ServerParams holds dependencies for the scheduler, injected by Fx
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	DailyGoalUC usecase.DailyGoalUsecase
}

type schedulerServer struct {
	logger      *slog.Logger
	dailyGoalUC usecase.DailyGoalUsecase
	interval    time.Duration
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewServer creates the daily goal scheduler delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	interval := defaultEvaluateInterval
	if params.Cfg.DailyGoal != nil && params.Cfg.DailyGoal.Interval > 0 {
		interval = params.Cfg.DailyGoal.Interval
	}

	srv := &schedulerServer{
		logger:      params.Logger,
		dailyGoalUC: params.DailyGoalUC,
		interval:    interval,
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs evaluation cycles until the context is cancelled. A failing
// cycle is logged and the loop keeps going.
func (s *schedulerServer) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	defer close(s.done)

	s.logger.Info("Starting daily goal scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run one cycle immediately so a restart does not delay awards.
	s.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Daily goal scheduler stopped")

			return nil
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *schedulerServer) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	if err := s.dailyGoalUC.EvaluateToday(ctx); err != nil {
		s.logger.Error("Daily goal evaluation cycle failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)),
		)

		return
	}

	s.logger.Debug("Daily goal evaluation cycle finished",
		slog.Duration("elapsed", time.Since(start)),
	)
}

func (s *schedulerServer) stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
