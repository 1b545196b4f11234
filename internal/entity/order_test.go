package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPendiente, StatusEntregado, true},
		{StatusPendiente, StatusCancelado, true},
		{StatusPendiente, StatusPendiente, false},
		{StatusEntregado, StatusCancelado, false},
		{StatusEntregado, StatusPendiente, false},
		{StatusCancelado, StatusEntregado, false},
		{StatusCancelado, StatusPendiente, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTargetStatuses(t *testing.T) {
	assert.ElementsMatch(t, []Status{StatusEntregado, StatusCancelado}, TargetStatuses(StatusPendiente))
	assert.Empty(t, TargetStatuses(StatusEntregado))
	assert.Empty(t, TargetStatuses(StatusCancelado))
}

func TestTotalItems(t *testing.T) {
	o := Order{Items: []OrderItem{
		{ProductHawa: "HW-1", Quantity: 2},
		{ProductHawa: "HW-2", Quantity: 1},
	}}
	assert.Equal(t, 2, o.TotalItems())
}
