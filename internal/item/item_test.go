package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/moving-manager/internal/item"
	"github.com/eugenenazirov/moving-manager/internal/packable"
)

func TestNewBook(t *testing.T) {
	t.Run("non_fiction", func(t *testing.T) {
		book, err := item.NewBook("BookOwner", "BookTitle", false)
		require.NoError(t, err)

		assert.Equal(t, "Book (BookOwner) Title: BookTitle (Non-Fiction)", book.String())
		assert.Equal(t, "BookOwner", book.Owner())
		assert.InDelta(t, 20.0, book.Width(), 0.001)
		assert.InDelta(t, 20.0, book.Height(), 0.001)
		assert.InDelta(t, 5.0, book.Length(), 0.001)
		assert.InDelta(t, 2000.0, book.Volume(), 0.001)
	})

	t.Run("fiction", func(t *testing.T) {
		book, err := item.NewBook("Kim", "Horses in the Wild", true)
		require.NoError(t, err)
		assert.Equal(t, "Book (Kim) Title: Horses in the Wild (Fiction)", book.String())
	})

	t.Run("missing_owner_and_title", func(t *testing.T) {
		_, err := item.NewBook("", " ", true)
		require.ErrorIs(t, err, item.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "owner")
		assert.Contains(t, err.Error(), "title")
	})
}

func TestNewClothes(t *testing.T) {
	tests := []struct {
		size packable.Size
		want packable.Dimensions
	}{
		{size: packable.Small, want: packable.Dimensions{W: 40, H: 65, L: 10}},
		{size: packable.Medium, want: packable.Dimensions{W: 50, H: 70, L: 10}},
		{size: packable.Large, want: packable.Dimensions{W: 55, H: 75, L: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.size.String(), func(t *testing.T) {
			clothes, err := item.NewClothes("Owner", tc.size, item.Shirt)
			require.NoError(t, err)
			assert.Equal(t, tc.want.W, clothes.Width())
			assert.Equal(t, tc.want.H, clothes.Height())
			assert.Equal(t, tc.want.L, clothes.Length())
		})
	}

	t.Run("label", func(t *testing.T) {
		pants, err := item.NewClothes("PantsOwner", packable.Large, item.Pants)
		require.NoError(t, err)
		assert.Equal(t, "Clothes (PantsOwner) (LARGE, PANTS)", pants.String())
	})

	t.Run("invalid_size_and_type", func(t *testing.T) {
		_, err := item.NewClothes("Owner", packable.Size(9), item.ClothesType(9))
		require.ErrorIs(t, err, item.ErrValueIsInvalid)
		require.ErrorIs(t, err, packable.ErrUnknownSize)
	})
}

func TestNewLaptop(t *testing.T) {
	laptop, err := item.NewLaptop("LaptopOwner", 10)
	require.NoError(t, err)
	assert.Equal(t, "Laptop (LaptopOwner) - 10", laptop.String())
	assert.Equal(t, 10, laptop.Age())
	assert.InDelta(t, 1400.0, laptop.Volume(), 0.001)

	_, err = item.NewLaptop("LaptopOwner", -1)
	require.ErrorIs(t, err, item.ErrValueIsInvalid)

	var valueErr *item.ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "age", valueErr.Param)
}

func TestNewFurniture(t *testing.T) {
	tests := []struct {
		furnitureType item.FurnitureType
		width         float64
		height        float64
		length        float64
	}{
		{furnitureType: item.Bed, width: 150, height: 200, length: 50},
		{furnitureType: item.Chair, width: 50, height: 150, length: 50},
		{furnitureType: item.Desk, width: 120, height: 200, length: 100},
		{furnitureType: item.Table, width: 300, height: 500, length: 100},
		{furnitureType: item.Television, width: 130, height: 75, length: 10},
	}

	for _, tc := range tests {
		t.Run(tc.furnitureType.String(), func(t *testing.T) {
			furniture, err := item.NewFurniture(tc.furnitureType)
			require.NoError(t, err)
			assert.InDelta(t, tc.width, furniture.Width(), 0.001)
			assert.InDelta(t, tc.height, furniture.Height(), 0.001)
			assert.InDelta(t, tc.length, furniture.Length(), 0.001)
			assert.Equal(t, "Furniture ("+tc.furnitureType.String()+")", furniture.String())
		})
	}

	_, err := item.NewFurniture(item.FurnitureType(0))
	require.ErrorIs(t, err, item.ErrValueIsInvalid)
}

func TestParseTypes(t *testing.T) {
	furnitureType, err := item.ParseFurnitureType("television")
	require.NoError(t, err)
	assert.Equal(t, item.Television, furnitureType)

	_, err = item.ParseFurnitureType("sofa")
	require.ErrorIs(t, err, item.ErrValueIsInvalid)

	clothesType, err := item.ParseClothesType(" Socks ")
	require.NoError(t, err)
	assert.Equal(t, item.Socks, clothesType)

	_, err = item.ParseClothesType("hat")
	require.ErrorIs(t, err, item.ErrValueIsInvalid)
}

func TestPersonalFamily(t *testing.T) {
	book, err := item.NewBook("o", "t", false)
	require.NoError(t, err)
	laptop, err := item.NewLaptop("o", 1)
	require.NoError(t, err)
	socks, err := item.NewClothes("o", packable.Small, item.Socks)
	require.NoError(t, err)
	bed, err := item.NewFurniture(item.Bed)
	require.NoError(t, err)

	for _, p := range []packable.Packable{book, laptop, socks} {
		_, ok := p.(item.Personal)
		assert.True(t, ok, "%v should be personal", p)
	}

	var furniture packable.Packable = bed
	_, ok := furniture.(item.Personal)
	assert.False(t, ok)
}
