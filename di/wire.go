//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"

	bookingRepository "hotel/internal/domains/booking/repository"
	customerRepository "hotel/internal/domains/customer/repository"
	hotelService "hotel/internal/domains/hotel/service"
	roomRepository "hotel/internal/domains/room/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
)

var repositories = wire.NewSet(
	roomRepository.New,
	customerRepository.New,
	bookingRepository.New,
)

var domains = wire.NewSet(
	repositories,
	hotelService.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
