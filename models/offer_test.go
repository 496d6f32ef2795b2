package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestNewOfferTarget(t *testing.T) {
	target, err := NewOfferTarget(uintPtr(5), nil)
	require.NoError(t, err)
	assert.Equal(t, TargetProduct, target.Kind)
	assert.Equal(t, uint(5), target.ID)

	target, err = NewOfferTarget(nil, uintPtr(3))
	require.NoError(t, err)
	assert.Equal(t, TargetCategory, target.Kind)
	assert.Equal(t, uint(3), target.ID)

	_, err = NewOfferTarget(nil, nil)
	assert.ErrorIs(t, err, ErrOfferNoTarget)

	_, err = NewOfferTarget(uintPtr(5), uintPtr(3))
	assert.ErrorIs(t, err, ErrOfferTwoTargets)
}

func TestOfferActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	// both bounds unset: always active
	open := Offer{}
	assert.True(t, open.ActiveAt(now))

	windowed := Offer{StartAt: &before, EndAt: &after}
	assert.True(t, windowed.ActiveAt(now))
	assert.False(t, windowed.ActiveAt(before.Add(-time.Minute)))
	assert.False(t, windowed.ActiveAt(after.Add(time.Minute)))

	// bounds are inclusive
	assert.True(t, windowed.ActiveAt(before))
	assert.True(t, windowed.ActiveAt(after))

	startOnly := Offer{StartAt: &now}
	assert.True(t, startOnly.ActiveAt(after))
	assert.False(t, startOnly.ActiveAt(before))

	endOnly := Offer{EndAt: &now}
	assert.True(t, endOnly.ActiveAt(before))
	assert.False(t, endOnly.ActiveAt(after))
}
