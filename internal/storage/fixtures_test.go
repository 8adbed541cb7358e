package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/moving-manager/internal/item"
	"github.com/eugenenazirov/moving-manager/internal/packable"
	"github.com/eugenenazirov/moving-manager/internal/storage"
)

type fixtures struct {
	book   *item.Book
	laptop *item.Laptop
	pants  *item.Clothes
	shirt  *item.Clothes
	shorts *item.Clothes
	socks  *item.Clothes

	bed        *item.Furniture
	chair      *item.Furniture
	desk       *item.Furniture
	table      *item.Furniture
	television *item.Furniture
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()

	var (
		f   fixtures
		err error
	)
	f.book, err = item.NewBook("BookOwner", "BookTitle", false)
	require.NoError(t, err)
	f.laptop, err = item.NewLaptop("LaptopOwner", 10)
	require.NoError(t, err)
	f.pants, err = item.NewClothes("PantsOwner", packable.Large, item.Pants)
	require.NoError(t, err)
	f.shirt, err = item.NewClothes("ShirtOwner", packable.Small, item.Shirt)
	require.NoError(t, err)
	f.shorts, err = item.NewClothes("ShortsOwner", packable.Medium, item.Shorts)
	require.NoError(t, err)
	f.socks, err = item.NewClothes("SocksOwner", packable.Small, item.Socks)
	require.NoError(t, err)

	f.bed = mustFurniture(t, item.Bed)
	f.chair = mustFurniture(t, item.Chair)
	f.desk = mustFurniture(t, item.Desk)
	f.table = mustFurniture(t, item.Table)
	f.television = mustFurniture(t, item.Television)
	return f
}

func mustFurniture(t *testing.T, furnitureType item.FurnitureType) *item.Furniture {
	t.Helper()

	furniture, err := item.NewFurniture(furnitureType)
	require.NoError(t, err)
	return furniture
}

func mustBag(t *testing.T, width, height, length float64, opts ...storage.Option) *storage.Bag {
	t.Helper()

	bag, err := storage.NewBag(width, height, length, opts...)
	require.NoError(t, err)
	return bag
}

func mustBox(t *testing.T, width, height, length float64, comment string, opts ...storage.Option) *storage.Box {
	t.Helper()

	box, err := storage.NewBox(width, height, length, comment, opts...)
	require.NoError(t, err)
	return box
}

func mustTruck(t *testing.T, width, height, length float64, opts ...storage.Option) *storage.MovingTruck {
	t.Helper()

	truck, err := storage.NewMovingTruck(width, height, length, opts...)
	require.NoError(t, err)
	return truck
}

func labels(items []packable.Packable) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.(interface{ String() string }).String())
	}
	return out
}
