package bootstrap

import (
	"hotel-booking-client/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClientModule,
	components.UseCaseModule,
)
