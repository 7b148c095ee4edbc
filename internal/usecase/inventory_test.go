//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"hotel-booking-client/internal/domain/room"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase"
	"hotel-booking-client/tests/common/builder"
	usecasemock "hotel-booking-client/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func inventoryRoom(id, roomType string, available bool) room.Room {
	return builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.ID = id
		b.Type = roomType
		if available {
			b.Availability = "true"
		} else {
			b.Availability = "false"
		}
	}).BuildDomain()
}

func TestInventoryRefresh(t *testing.T) {
	t.Run("snapshot is empty before any fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := usecasemock.NewMockRoomRepository(ctrl)
		uc := usecase.NewInventoryUseCase(rooms)

		snap := uc.Snapshot()
		assert.False(t, snap.Fetched)
		assert.NoError(t, snap.Err)
		assert.Equal(t, 0, snap.Inventory.TypeCount())
	})

	t.Run("refresh builds the aggregation wholesale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := usecasemock.NewMockRoomRepository(ctrl)
		uc := usecase.NewInventoryUseCase(rooms)

		rooms.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return([]room.Room{
			inventoryRoom("d1", "Deluxe", true),
			inventoryRoom("s1", "Suite", false),
			inventoryRoom("d2", "Deluxe", false),
		}, nil)

		snap, err := uc.Refresh(context.Background(), session.Anonymous())
		require.NoError(t, err)

		assert.True(t, snap.Fetched)
		assert.Equal(t, 2, snap.Inventory.TypeCount())
		assert.Equal(t, 3, snap.Inventory.TotalRooms())
	})

	t.Run("fetch failure keeps the previous aggregation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := usecasemock.NewMockRoomRepository(ctrl)
		uc := usecase.NewInventoryUseCase(rooms)

		rooms.EXPECT().ListRooms(gomock.Any(), gomock.Any()).
			Return([]room.Room{inventoryRoom("d1", "Deluxe", true)}, nil)
		_, err := uc.Refresh(context.Background(), session.Anonymous())
		require.NoError(t, err)

		rooms.EXPECT().ListRooms(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)
		_, err = uc.Refresh(context.Background(), session.Anonymous())
		require.ErrorIs(t, err, usecase.ErrInventoryUnavailable)

		snap := uc.Snapshot()
		assert.True(t, snap.Fetched)
		assert.Error(t, snap.Err)
		assert.Equal(t, 1, snap.Inventory.TypeCount())
	})

	t.Run("stale completion does not overwrite newer data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := usecasemock.NewMockRoomRepository(ctrl)
		uc := usecase.NewInventoryUseCase(rooms)

		first := true
		rooms.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(ctx context.Context, sess session.Session) ([]room.Room, error) {
				if first {
					first = false
					// A second fetch starts and resolves while this one
					// is still in flight.
					_, err := uc.Refresh(ctx, sess)
					require.NoError(t, err)
					return []room.Room{inventoryRoom("d1", "Deluxe", true)}, nil
				}
				return []room.Room{inventoryRoom("s1", "Suite", true)}, nil
			})

		snap, err := uc.Refresh(context.Background(), session.Anonymous())
		require.NoError(t, err)

		_, hasSuite := snap.Inventory.Summary("Suite")
		_, hasDeluxe := snap.Inventory.Summary("Deluxe")
		assert.True(t, hasSuite)
		assert.False(t, hasDeluxe)
	})
}

func TestInventoryProjections(t *testing.T) {
	t.Run("room types carry the representative price and description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := usecasemock.NewMockRoomRepository(ctrl)
		uc := usecase.NewInventoryUseCase(rooms)

		cheap := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.ID = "d1"
			b.Price = "15000"
			b.Description = "Sea view double"
		}).BuildDomain()
		dear := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.ID = "d2"
			b.Price = "18000"
			b.Description = "Garden view double"
		}).BuildDomain()

		rooms.EXPECT().ListRooms(gomock.Any(), gomock.Any()).
			Return([]room.Room{cheap, dear}, nil)

		types, err := uc.RoomTypes(context.Background(), session.Anonymous())
		require.NoError(t, err)

		require.Len(t, types, 1)
		assert.Equal(t, "15000", types[0].Price)
		assert.Equal(t, "Sea view double", types[0].Description)
		assert.Len(t, types[0].Rooms, 2)
	})

	t.Run("type options exclude fully booked types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := usecasemock.NewMockRoomRepository(ctrl)
		uc := usecase.NewInventoryUseCase(rooms)

		rooms.EXPECT().ListRooms(gomock.Any(), gomock.Any()).Return([]room.Room{
			inventoryRoom("d1", "Deluxe", true),
			inventoryRoom("s1", "Suite", false),
		}, nil)

		options, err := uc.TypeOptions(context.Background(), session.Anonymous())
		require.NoError(t, err)

		require.Len(t, options, 1)
		assert.Equal(t, "Deluxe", options[0].Type)
		assert.Equal(t, "d1", options[0].RoomID)
	})
}
