package bootstrap

import (
	"log/slog"

	"hotel-booking-client/internal/infra/api"
	"hotel-booking-client/internal/pkg/clock"
	"hotel-booking-client/internal/pkg/config"
	"hotel-booking-client/internal/usecase"

	"go.uber.org/fx"
)

// ClientModule provides the backend REST client and binds it to the
// repository ports the use cases consume.
var ClientModule = fx.Module("client",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) *api.Client {
			return api.NewClient(cfg.API, logger)
		},
		clock.NewRealClock,
		func(c *api.Client) usecase.RoomRepository { return c },
		func(c *api.Client) usecase.RoomAdminRepository { return c },
		func(c *api.Client) usecase.ReservationRepository { return api.NewReservationRepo(c) },
		func(c *api.Client) usecase.UserRepository { return api.NewUserRepo(c) },
		func(c *api.Client) usecase.AuthRepository { return c },
	),
)
