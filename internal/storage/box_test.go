package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/moving-manager/internal/packable"
	"github.com/eugenenazirov/moving-manager/internal/storage"
)

func TestBoxAcceptsAnything(t *testing.T) {
	t.Parallel()

	f := newFixtures(t)
	box := mustBox(t, 1000, 1000, 1000, "Mixed", storage.WithSize(packable.Large))

	bag := mustBag(t, 50, 50, 50)
	for _, p := range []packable.Packable{f.book, f.chair, bag, mustBox(t, 10, 10, 10, "")} {
		require.NoError(t, box.Pack(p))
	}
	assert.Equal(t, 4, box.OccupiedCapacity())
}

func TestBoxFragility(t *testing.T) {
	t.Parallel()

	f := newFixtures(t)

	tests := []struct {
		name    string
		items   []packable.Packable
		fragile bool
	}{
		{name: "empty", fragile: false},
		{name: "books_and_clothes", items: []packable.Packable{f.book, f.socks}, fragile: false},
		{name: "chair", items: []packable.Packable{f.chair}, fragile: false},
		{name: "laptop", items: []packable.Packable{f.book, f.laptop}, fragile: true},
		{name: "television", items: []packable.Packable{f.television}, fragile: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			box := mustBox(t, 1000, 1000, 1000, "")
			for _, p := range tc.items {
				require.NoError(t, box.Pack(p))
			}
			assert.Equal(t, tc.fragile, box.IsFragile())
		})
	}
}

func TestBoxFragilityIsPermanent(t *testing.T) {
	t.Parallel()

	f := newFixtures(t)
	box := mustBox(t, 1000, 1000, 1000, "Electronics")
	require.NoError(t, box.Pack(f.laptop))
	require.NoError(t, box.Pack(f.book))
	require.True(t, box.IsFragile())

	for {
		if _, ok := box.Unpack(); !ok {
			break
		}
	}
	assert.Equal(t, 0, box.OccupiedCapacity())
	assert.True(t, box.IsFragile())
	assert.Equal(t, "Box (1000.00, 1000.00, 1000.00) MEDIUM - Electronics FRAGILE", box.String())
}

func TestBoxFailedPackDoesNotMarkFragile(t *testing.T) {
	t.Parallel()

	f := newFixtures(t)
	box := mustBox(t, 1, 1, 1, "")

	require.ErrorIs(t, box.Pack(f.television), storage.ErrStorageFull)
	assert.False(t, box.IsFragile())
}

func TestBoxDescribe(t *testing.T) {
	t.Parallel()

	f := newFixtures(t)

	box := mustBox(t, 100, 100, 100, "Comment1")
	assert.Equal(t, "Box (100.00, 100.00, 100.00) MEDIUM - Comment1", box.String())
	assert.Equal(t, "Comment1", box.Comment())

	empty := mustBox(t, 300, 300, 300, "", storage.WithSize(packable.Large))
	assert.Equal(t, `Box (300.00, 300.00, 300.00) LARGE - '\0'`, empty.String())

	require.NoError(t, empty.Pack(f.television))
	assert.Equal(t, `Box (300.00, 300.00, 300.00) LARGE - '\0' FRAGILE`, empty.String())
}

func TestBoxConstructionErrorIsWrapped(t *testing.T) {
	t.Parallel()

	_, err := storage.NewBox(0, 10, 10, "x")
	require.ErrorIs(t, err, storage.ErrInvalidDimensions)
	assert.Contains(t, err.Error(), "new box")
}
