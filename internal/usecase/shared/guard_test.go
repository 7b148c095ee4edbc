//go:build unit

package shared_test

import (
	"testing"

	"hotel-booking-client/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestFetchGuard(t *testing.T) {
	t.Run("single fetch applies", func(t *testing.T) {
		var g shared.FetchGuard
		seq := g.Next()
		assert.True(t, g.Apply(seq))
	})

	t.Run("stale completion is discarded when a newer fetch was issued", func(t *testing.T) {
		var g shared.FetchGuard
		first := g.Next()
		second := g.Next()

		assert.False(t, g.Apply(first))
		assert.True(t, g.Apply(second))
	})

	t.Run("a sequence cannot be applied twice", func(t *testing.T) {
		var g shared.FetchGuard
		seq := g.Next()

		assert.True(t, g.Apply(seq))
		assert.False(t, g.Apply(seq))
	})

	t.Run("late stale completion after the latest applied is discarded", func(t *testing.T) {
		var g shared.FetchGuard
		first := g.Next()
		second := g.Next()

		assert.True(t, g.Apply(second))
		assert.False(t, g.Apply(first))
	})
}
