package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEvaluator struct {
	calls atomic.Int64
	err   error
}

func (e *countingEvaluator) EvaluateToday(_ context.Context) error {
	e.calls.Add(1)

	return e.err
}

func newTestScheduler(evaluator *countingEvaluator, interval time.Duration) *schedulerServer {
	return &schedulerServer{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		dailyGoalUC: evaluator,
		interval:    interval,
		done:        make(chan struct{}),
	}
}

func TestSchedulerServer_RunsFirstCycleImmediately(t *testing.T) {
	evaluator := &countingEvaluator{}
	srv := newTestScheduler(evaluator, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		return evaluator.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-serveErr)
}

func TestSchedulerServer_KeepsTickingAfterFailedCycle(t *testing.T) {
	evaluator := &countingEvaluator{err: errors.New("flaky backend")}
	srv := newTestScheduler(evaluator, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		return evaluator.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-serveErr)
}

func TestSchedulerServer_StopBeforeServeIsANoop(t *testing.T) {
	srv := newTestScheduler(&countingEvaluator{}, time.Hour)

	require.NoError(t, srv.stop(context.Background()))
}

func TestSchedulerServer_StopWaitsForServeToFinish(t *testing.T) {
	evaluator := &countingEvaluator{}
	srv := newTestScheduler(evaluator, time.Hour)

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(context.Background()) }()

	assert.Eventually(t, func() bool {
		return evaluator.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	require.NoError(t, srv.stop(stopCtx))
	require.NoError(t, <-serveErr)
}
