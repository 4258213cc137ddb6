package main

import (
	"context"
	"log/slog"
	"os"

	"wayfarer/config"
	"wayfarer/internal/delivery"
	"wayfarer/internal/delivery/scheduler"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/domain/service"
	logs "wayfarer/internal/infra/log"
	"wayfarer/internal/infra/persistence/postgres"
	"wayfarer/internal/infra/pubsub"
	"wayfarer/internal/usecase"
	"wayfarer/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewJourneyRepository,
			postgres.NewBadgeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
		),
	)
}

// newDailyGoalService wires the evaluator with the configured threshold
func newDailyGoalService(
	journeyRepo repository.JourneyRepository,
	badgeRepo repository.BadgeRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DailyGoalUsecase {
	thresholdKm := 0.0
	if cfg.DailyGoal != nil {
		thresholdKm = cfg.DailyGoal.ThresholdKm
	}

	return impl.NewDailyGoalService(journeyRepo, badgeRepo, publisher, thresholdKm, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDailyGoalService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
