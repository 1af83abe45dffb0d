package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/railway-booking/internal/domain"
)

func TestAvailableSeats(t *testing.T) {
	carriage := &domain.Carriage{ID: 1, SeatAmount: 5}

	t.Run("empty carriage", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, carriage.AvailableSeats(nil))
	})

	t.Run("partially taken", func(t *testing.T) {
		assert.Equal(t, []int{1, 3, 5}, carriage.AvailableSeats([]int{2, 4}))
	})

	t.Run("fully booked", func(t *testing.T) {
		assert.Empty(t, carriage.AvailableSeats([]int{1, 2, 3, 4, 5}))
	})

	t.Run("duplicates in taken list", func(t *testing.T) {
		assert.Equal(t, []int{2, 3, 4, 5}, carriage.AvailableSeats([]int{1, 1, 1}))
	})
}

func TestHasSeat(t *testing.T) {
	carriage := &domain.Carriage{ID: 1, SeatAmount: 36}

	assert.True(t, carriage.HasSeat(1))
	assert.True(t, carriage.HasSeat(36))
	assert.False(t, carriage.HasSeat(0))
	assert.False(t, carriage.HasSeat(37))
	assert.False(t, carriage.HasSeat(-1))
}

func TestValidCarriageTypeName(t *testing.T) {
	assert.True(t, domain.ValidCarriageTypeName(domain.CarriageSeated))
	assert.True(t, domain.ValidCarriageTypeName(domain.CarriageCoupe))
	assert.True(t, domain.ValidCarriageTypeName(domain.CarriagePlatzkart))
	assert.False(t, domain.ValidCarriageTypeName("sleeper"))
	assert.False(t, domain.ValidCarriageTypeName(""))
}
