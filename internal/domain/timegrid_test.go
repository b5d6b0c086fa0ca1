package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

func TestTimeGrid(t *testing.T) {
	grid := TimeGrid()

	// 10:00..22:00 включительно с шагом 10 минут
	require.Len(t, grid, 73)
	assert.Equal(t, types.TimeString("10:00"), grid[0])
	assert.Equal(t, types.TimeString("10:10"), grid[1])
	assert.Equal(t, types.TimeString("22:00"), grid[len(grid)-1])
}

func TestOnGrid(t *testing.T) {
	assert.True(t, OnGrid("10:00"))
	assert.True(t, OnGrid("15:30"))
	assert.True(t, OnGrid("22:00"))

	assert.False(t, OnGrid("9:50"))  // до открытия
	assert.False(t, OnGrid("22:10")) // после закрытия
	assert.False(t, OnGrid("10:05")) // не кратно шагу
}

func TestFitsBusinessDay(t *testing.T) {
	assert.True(t, FitsBusinessDay("10:00", 60))
	assert.True(t, FitsBusinessDay("21:00", 60))  // заканчивается ровно в 22:00
	assert.False(t, FitsBusinessDay("21:30", 60)) // выходит за закрытие
	assert.False(t, FitsBusinessDay("10:05", 30)) // не на сетке
}

func TestIsBlockingStatus(t *testing.T) {
	assert.True(t, IsBlockingStatus(StatusPending))
	assert.True(t, IsBlockingStatus(StatusConfirmed))
	assert.True(t, IsBlockingStatus(StatusInProgress))

	assert.False(t, IsBlockingStatus(StatusCompleted))
	assert.False(t, IsBlockingStatus(StatusCancelled))
}
