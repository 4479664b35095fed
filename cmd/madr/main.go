package main

import (
	"context"
	"log/slog"
	"os"

	"madr/config"
	"madr/internal/delivery"
	"madr/internal/delivery/api"
	apimiddleware "madr/internal/delivery/api/middleware"
	"madr/internal/delivery/api/router/handler"
	"madr/internal/domain/repository"
	"madr/internal/domain/service"
	"madr/internal/infra/auth"
	"madr/internal/infra/events"
	logs "madr/internal/infra/log"
	"madr/internal/infra/persistence/postgres"
	"madr/internal/infra/search"
	"madr/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewAccountRepository,
			postgres.NewNovelistRepository,
			postgres.NewBookRepository,
			postgres.NewTransactionManager,
			newAccountFinder,
		),
	)
}

// newAccountFinder exposes the account store to the token service as a read-only lookup.
func newAccountFinder(accounts repository.AccountRepository) service.AccountFinder {
	return accounts
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewTokenConfig,
			auth.NewJWTService,
		),
		events.Module,
		search.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewNovelistService,
			impl.NewBookService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewServiceHandler,
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewNovelistHandler,
			handler.NewBookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
