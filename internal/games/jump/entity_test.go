package jump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollides(t *testing.T) {
	base := NewEntity(0, 0, 10, 10)

	tests := []struct {
		name     string
		other    Entity
		expected bool
	}{
		{"overlap", NewEntity(5, 5, 10, 10), true},
		{"contained", NewEntity(2, 2, 3, 3), true},
		{"touching right edge", NewEntity(10, 0, 10, 10), false},
		{"touching bottom edge", NewEntity(0, 10, 10, 10), false},
		{"apart", NewEntity(30, 30, 5, 5), false},
		{"offset hitbox misses", NewEntityWithHitbox(5, 5, 10, 10, Hitbox{Left: 6, Top: 6, Right: 10, Bottom: 10}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collides(&base, &tt.other)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			// Symmetric
			got, err = Collides(&tt.other, &base)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCollidesNil(t *testing.T) {
	e := NewEntity(0, 0, 10, 10)
	var p *Platform

	_, err := Collides(nil, &e)
	assert.ErrorIs(t, err, ErrNilEntity)

	_, err = Collides(&e, nil)
	assert.ErrorIs(t, err, ErrNilEntity)

	_, err = Collides(&e, p)
	assert.ErrorIs(t, err, ErrNilEntity)
}

func TestEntityHitbox(t *testing.T) {
	e := NewEntityWithHitbox(100, 50, 60, 60, Hitbox{Left: 12, Top: 6, Right: 48, Bottom: 60})
	box := e.Box()

	assert.Equal(t, 112.0, box.Left)
	assert.Equal(t, 56.0, box.Top)
	assert.Equal(t, 148.0, box.Right)
	assert.Equal(t, 110.0, box.Bottom)
	assert.Equal(t, 130.0, e.CenterX())

	assert.Panics(t, func() {
		NewEntityWithHitbox(0, 0, 10, 10, Hitbox{Left: 5, Right: 1, Bottom: 10})
	})
	assert.NotPanics(t, func() {
		NewEntityWithHitbox(0, 0, 0, 0, Hitbox{})
	})
}
