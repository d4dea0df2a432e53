package order_test

import (
	"testing"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, order.Unknown, order.Status(0))
	assert.Equal(t, "Holding", order.Holding.String())
	assert.Equal(t, "Fulfilled", order.Fulfilled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Ready.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("processing")
	require.NoError(t, err)
	assert.Equal(t, order.Processing, s)

	_, err = order.ParseStatus("Shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsUserSettable(t *testing.T) {
	for _, s := range []order.Status{order.Holding, order.Processing} {
		assert.True(t, s.IsUserSettable(), s.String())
	}
	for _, s := range []order.Status{order.Unknown, order.Packing, order.Ready, order.Fulfilled, order.Backordered, order.Exception} {
		assert.False(t, s.IsUserSettable(), s.String())
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	testCases := []struct {
		current   order.Status
		requested order.Status
		next      order.Status
		frozen    bool
	}{
		{current: order.Unknown, requested: order.Unknown, next: order.Processing},
		{current: order.Unknown, requested: order.Holding, next: order.Holding},
		{current: order.Holding, requested: order.Processing, next: order.Processing},
		{current: order.Processing, requested: order.Unknown, next: order.Processing},
		{current: order.Ready, requested: order.Holding, next: order.Processing},
		{current: order.Ready, requested: order.Unknown, next: order.Processing},
		{current: order.Backordered, requested: order.Holding, next: order.Holding},
		{current: order.Packing, requested: order.Holding, frozen: true},
		{current: order.Fulfilled, requested: order.Processing, frozen: true},
	}

	for _, tc := range testCases {
		t.Run(tc.current.String()+"->"+tc.requested.String(), func(t *testing.T) {
			assert.Equal(t, tc.frozen, tc.current.IsFrozen())
			if !tc.frozen {
				assert.Equal(t, tc.next, tc.current.Next(tc.requested))
			}
		})
	}
}

func TestStatus_IsDeletable(t *testing.T) {
	for _, s := range []order.Status{order.Backordered, order.Exception, order.Holding, order.Processing, order.Ready} {
		assert.True(t, s.IsDeletable(), s.String())
	}
	for _, s := range []order.Status{order.Packing, order.Fulfilled, order.Unknown} {
		assert.False(t, s.IsDeletable(), s.String())
	}
}
