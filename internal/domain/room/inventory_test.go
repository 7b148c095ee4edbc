//go:build unit

package room_test

import (
	"testing"

	"hotel-booking-client/internal/domain/room"
	"hotel-booking-client/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRoom(mutate func(*builder.RoomBuilder)) room.Room {
	return builder.NewRoomBuilder().With(mutate).BuildDomain()
}

func TestBuildInventory(t *testing.T) {
	t.Run("partitions rooms by type preserving discovery order", func(t *testing.T) {
		rooms := []room.Room{
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r1"; b.Type = "Deluxe"; b.Number = "101" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r2"; b.Type = "Suite"; b.Number = "201" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r3"; b.Type = "Deluxe"; b.Number = "102" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r4"; b.Type = "Standard"; b.Number = "301" }),
		}

		inv := room.BuildInventory(rooms)

		require.Equal(t, 3, inv.TypeCount())
		require.Equal(t, len(rooms), inv.TotalRooms())

		summaries := inv.Summaries()
		types := make([]string, 0, len(summaries))
		for _, s := range summaries {
			types = append(types, s.Type)
		}
		assert.Empty(t, cmp.Diff([]string{"Deluxe", "Suite", "Standard"}, types))
	})

	t.Run("every room lands in exactly one bucket", func(t *testing.T) {
		rooms := []room.Room{
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r1"; b.Type = "Deluxe" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r2"; b.Type = "Suite" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r3"; b.Type = "Suite" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r4"; b.Type = "Suite" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r5"; b.Type = "Deluxe" }),
		}

		inv := room.BuildInventory(rooms)

		sum := 0
		for _, s := range inv.Summaries() {
			sum += s.Total
			assert.Len(t, s.Rooms, s.Total)
		}
		assert.Equal(t, len(rooms), sum)
	})

	t.Run("counts available and total per type", func(t *testing.T) {
		rooms := []room.Room{
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r1"; b.Type = "Deluxe"; b.Availability = "true" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r2"; b.Type = "Deluxe"; b.Availability = "false" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r3"; b.Type = "Deluxe"; b.Availability = "true" }),
		}

		inv := room.BuildInventory(rooms)

		s, ok := inv.Summary("Deluxe")
		require.True(t, ok)
		assert.Equal(t, 3, s.Total)
		assert.Equal(t, 2, s.AvailableCount)
	})

	t.Run("representative is the first-seen room of the type", func(t *testing.T) {
		rooms := []room.Room{
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "first"; b.Type = "Suite"; b.Price = "20000" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "second"; b.Type = "Suite"; b.Price = "25000" }),
		}

		inv := room.BuildInventory(rooms)

		s, ok := inv.Summary("Suite")
		require.True(t, ok)
		assert.Equal(t, "first", s.Representative().ID)
		assert.Equal(t, "20000", s.Representative().Price)
	})

	t.Run("rooms with empty type fall into the unspecified bucket", func(t *testing.T) {
		rooms := []room.Room{
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r1"; b.Type = "" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r2"; b.Type = "Deluxe" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "r3"; b.Type = "" }),
		}

		inv := room.BuildInventory(rooms)

		s, ok := inv.Summary(room.TypeUnspecified)
		require.True(t, ok)
		assert.Equal(t, 2, s.Total)
	})

	t.Run("empty listing builds an empty inventory", func(t *testing.T) {
		inv := room.BuildInventory(nil)

		assert.Equal(t, 0, inv.TypeCount())
		assert.Equal(t, 0, inv.TotalRooms())
		assert.Empty(t, inv.AvailableTypeOptions())
	})
}

func TestAvailableTypeOptions(t *testing.T) {
	t.Run("types with zero free rooms are not offered", func(t *testing.T) {
		rooms := []room.Room{
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "d1"; b.Type = "Deluxe"; b.Availability = "true" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "s1"; b.Type = "Suite"; b.Availability = "false" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "s2"; b.Type = "Suite"; b.Availability = "false" }),
		}

		inv := room.BuildInventory(rooms)

		options := inv.AvailableTypeOptions()
		require.Len(t, options, 1)
		assert.Equal(t, "Deluxe", options[0].Type)
		assert.Equal(t, "d1", options[0].RoomID)
	})

	t.Run("option resolves to the representative unit even when it is unavailable", func(t *testing.T) {
		rooms := []room.Room{
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "s1"; b.Type = "Suite"; b.Availability = "false" }),
			buildRoom(func(b *builder.RoomBuilder) { b.ID = "s2"; b.Type = "Suite"; b.Availability = "true" }),
		}

		inv := room.BuildInventory(rooms)

		options := inv.AvailableTypeOptions()
		require.Len(t, options, 1)
		assert.Equal(t, "s1", options[0].RoomID)
	})
}

func TestResolveType(t *testing.T) {
	rooms := []room.Room{
		buildRoom(func(b *builder.RoomBuilder) { b.ID = "d1"; b.Type = "Deluxe"; b.Availability = "true" }),
		buildRoom(func(b *builder.RoomBuilder) { b.ID = "s1"; b.Type = "Suite"; b.Availability = "false" }),
	}
	inv := room.BuildInventory(rooms)

	t.Run("resolves a type with availability", func(t *testing.T) {
		id, ok := inv.ResolveType("Deluxe")
		require.True(t, ok)
		assert.Equal(t, "d1", id)
	})

	t.Run("does not resolve a fully booked type", func(t *testing.T) {
		_, ok := inv.ResolveType("Suite")
		assert.False(t, ok)
	})

	t.Run("does not resolve an unknown type", func(t *testing.T) {
		_, ok := inv.ResolveType("Penthouse")
		assert.False(t, ok)
	})
}
