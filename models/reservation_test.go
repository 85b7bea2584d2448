package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusValid(t *testing.T) {
	for _, status := range []ReservationStatus{
		StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, ReservationStatus("").Valid())
	assert.False(t, ReservationStatus("arrived").Valid())
}

func TestReservationStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusSeated.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestReservationStatusTransitions(t *testing.T) {
	allowed := map[ReservationStatus][]ReservationStatus{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusSeated, StatusCancelled},
		StatusSeated:    {StatusCompleted},
		StatusCompleted: {},
		StatusCancelled: {},
	}
	all := []ReservationStatus{
		StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled,
	}

	for from, nexts := range allowed {
		ok := map[ReservationStatus]bool{}
		for _, next := range nexts {
			ok[next] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()
	assert.Len(t, tables, 10)

	total := 0
	for i, table := range tables {
		assert.Equal(t, i+1, table.ID)
		total += table.Capacity
	}
	assert.Equal(t, 54, total)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleWaiter))
	assert.True(t, ValidRole(RoleCustomer))
	assert.False(t, ValidRole("manager"))
	assert.False(t, ValidRole(""))
}
