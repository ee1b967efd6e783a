package di

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/hotel/service"

	"github.com/rs/zerolog/log"
)

// App holds the wired manager and the resources it owns.
type App struct {
	Manager service.Manager
	DB      *postgres.Connection
	Otel    otel.Otel
}

// Close flushes pending spans and closes the database pools.
func (a *App) Close(ctx context.Context) {
	otel.Shutdown(ctx, a.Otel)

	if err := a.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connection")
	}
}
