package components

import (
	"hotel-booking-client/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewInventoryUseCase,
		usecase.NewReservationUseCase,
		usecase.NewAuthUseCase,
		usecase.NewUserUseCase,
		usecase.NewRoomAdminUseCase,
		usecase.NewBookingFlow,
		usecase.NewEditFlow,
	),
)
