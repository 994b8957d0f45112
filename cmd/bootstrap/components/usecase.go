package components

import (
	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/usecase"
	"quoteflow/internal/usecase/commands"
	"quoteflow/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuoteUseCase,
		commands.NewRequestUseCase,
		commands.NewConversionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewRequestQueries,
		queries.NewBookingQueries,
	),
)
