package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Rect, 4)
	geom.TileRightThenDown(tiles, geom.Rt(0, 0, 100, 100))
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 50, 100),
		geom.Rt(50, 0, 100, 50),
		geom.Rt(50, 50, 75, 100),
		geom.Rt(75, 50, 100, 100),
	}, tiles)

	tiles = tiles[:1]
	geom.TileRightThenDown(tiles, geom.Rt(0, 0, 100, 100))
	require.Equal(t, geom.Rt(0, 0, 100, 100), tiles[0])
}

func TestTileEven(t *testing.T) {
	tiles := make([]geom.Rect, 3)
	geom.TileEvenVertically(tiles, geom.Rt(0, 0, 10, 30))
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 10, 10),
		geom.Rt(0, 10, 10, 20),
		geom.Rt(0, 20, 10, 30),
	}, tiles)

	geom.TileEvenHorizontally(tiles, geom.Rt(0, 0, 30, 10))
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 10, 10),
		geom.Rt(10, 0, 20, 10),
		geom.Rt(20, 0, 30, 10),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rect, 5)
	geom.TileRows(tiles, geom.Rt(0, 0, 90, 20), 3)
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 30, 10),
		geom.Rt(30, 0, 60, 10),
		geom.Rt(60, 0, 90, 10),
		geom.Rt(0, 10, 45, 20),
		geom.Rt(45, 10, 90, 20),
	}, tiles)
}

func TestTilesCoverWithoutCrossing(t *testing.T) {
	r := geom.Rt(0, 0, 60, 60)
	tiles := slices.Collect(geom.TiledRows(7, r, 3))
	require.Len(t, tiles, 7)

	u, err := geom.CombineAll(tiles)
	require.NoError(t, err)
	require.Equal(t, r, u)

	for i, a := range tiles {
		require.True(t, a.IsContainedIn(r))
		for _, b := range tiles[i+1:] {
			_, ok := a.Intersection(b, true)
			require.False(t, ok, "%v overlaps %v", a, b)
		}
	}
}

func TestVerticalStack(t *testing.T) {
	var got []geom.Rect
	for r := range geom.VerticalStack(geom.Rt(0, 10, 5, 0)) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []geom.Rect{
		geom.Rt(0, 0, 5, 10),
		geom.Rt(0, 10, 5, 20),
		geom.Rt(0, 20, 5, 30),
	}, got)
}

func TestAlign(t *testing.T) {
	outer := geom.Rt(0, 0, 100, 100)
	inner := geom.Rt(0, 0, 10, 20)

	require.Equal(t, geom.Rt(45, 40, 55, 60), geom.Align(outer, inner, geom.EdgeNone))
	require.Equal(t, geom.Rt(45, 0, 55, 20), geom.Align(outer, inner, geom.EdgeTop))
	require.Equal(t, geom.Rt(90, 80, 100, 100), geom.Align(outer, inner, geom.EdgeBottom|geom.EdgeRight))
	require.Equal(t, geom.Rt(0, 0, 10, 100), geom.Align(outer, inner, geom.EdgeTop|geom.EdgeBottom|geom.EdgeLeft))
	require.Equal(t, geom.Rt(0, 40, 100, 60), geom.Align(outer, inner, geom.EdgeLeft|geom.EdgeRight))
}
