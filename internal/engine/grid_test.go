package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridBounds(t *testing.T) {
	var g Grid
	g.Set(-1, 0, KindI)
	g.Set(0, Cols, KindI)
	g.Set(Rows, 0, KindI)

	assert.Equal(t, [Rows][Cols]Kind{}, g.Cells(), "out-of-bounds writes must be ignored")
	assert.False(t, g.Occupied(-1, 0))
	assert.False(t, g.Occupied(0, -1))
	assert.False(t, g.Occupied(Rows, 0))
	assert.Equal(t, Empty, g.At(0, Cols))
}

func TestGridRowFull(t *testing.T) {
	var g Grid
	fillRow(&g, 5, KindS)
	assert.True(t, g.RowFull(5))

	g.Set(5, 7, Empty)
	assert.False(t, g.RowFull(5))
	assert.False(t, g.RowFull(-1))
}

func TestGridShiftDown(t *testing.T) {
	var g Grid
	g.Set(0, 0, KindI)
	g.Set(1, 1, KindJ)
	g.Set(2, 2, KindL)
	fillRow(&g, 3, KindZ)

	g.ShiftDown(3)

	assert.Equal(t, Empty, g.At(0, 0), "row 0 is cleared")
	assert.Equal(t, KindI, g.At(1, 0))
	assert.Equal(t, KindJ, g.At(2, 1))
	assert.Equal(t, KindL, g.At(3, 2))
	assert.False(t, g.RowFull(3))
}

func TestGridReset(t *testing.T) {
	var g Grid
	fillRow(&g, 19, KindO)
	g.Reset()
	assert.Equal(t, [Rows][Cols]Kind{}, g.Cells())
}

func fillRow(g *Grid, row int, k Kind, skip ...int) {
	for c := range Cols {
		g.Set(row, c, k)
	}
	for _, c := range skip {
		g.Set(row, c, Empty)
	}
}
