// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plantmap

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atucha-viz/atucha/plant"
)

// cellAt returns the cell whose center is nearest the world point x, z.
func cellAt(g *Grid, x, z float32) *Cell {
	b := g.Bounds
	c := int((x - b.MinX) / (b.MaxX - b.MinX) * float32(g.Cols))
	r := int((z - b.MinZ) / (b.MaxZ - b.MinZ) * float32(g.Rows))
	return g.At(c, r)
}

func TestRasterize(t *testing.T) {
	recs := plant.Flatten(plant.Static())
	g := Rasterize(recs, 160, 120, SiteBounds)
	require.Len(t, g.Cells, 160*120)

	// the dome is the tallest solid at the center; only the base reaches
	// out past the containment.
	assert.Equal(t, "/atucha-ii-complex/reactor-building/dome", cellAt(g, 0, 0).Path)
	assert.Equal(t, "#C0C0C0", cellAt(g, 0, 33).Color)

	assert.Equal(t, "/atucha-ii-complex/turbine-hall/roof", cellAt(g, 60, 0).Path)
	assert.Equal(t, "/atucha-ii-complex/administration-building/offices", cellAt(g, -120, 80).Path)
	assert.Equal(t, "/atucha-ii-complex/terrain/ground", cellAt(g, -390, -290).Path)
	assert.Equal(t, "#8B7355", cellAt(g, -390, -290).Color)
}

func TestRasterizeTorus(t *testing.T) {
	gp := plant.NewGroup("ring")
	gp.NewSolid("road", plant.NewTorus(100, 10, 4, 16), plant.Matte("#404040"))
	g := Rasterize(plant.Flatten(gp), 100, 100, Bounds{-200, -200, 200, 200})
	assert.Equal(t, "#404040", cellAt(g, 100, 0).Color)
	assert.Equal(t, "#404040", cellAt(g, 0, -100).Color)
	assert.Empty(t, cellAt(g, 0, 0).Color)
	assert.Empty(t, cellAt(g, 150, 0).Color)
}

func TestRasterizeScaled(t *testing.T) {
	gp := plant.NewGroup("big").SetScale(2, 2, 2)
	gp.NewSolid("pad", plant.NewBox(10, 1, 10), plant.Matte("#FFFFFF"))
	g := Rasterize(plant.Flatten(gp), 40, 40, Bounds{-20, -20, 20, 20})
	assert.Equal(t, "#FFFFFF", cellAt(g, 9, 9).Color)
	assert.Empty(t, cellAt(g, 12, 0).Color)
}

func TestViewerDraw(t *testing.T) {
	sc := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sc.Init())
	defer sc.Fini()
	sc.SetSize(80, 31)

	vw := &Viewer{Screen: sc, Records: plant.Flatten(plant.Static()), Bounds: SiteBounds}
	vw.Draw()
	require.NotNil(t, vw.grid)
	assert.Equal(t, 80, vw.grid.Cols)
	assert.Equal(t, 30, vw.grid.Rows)

	cells, w, _ := sc.GetContents()
	_, bg, _ := cells[0].Style.Decompose()
	assert.Equal(t, tcell.GetColor("#8B7355"), bg)
	assert.Equal(t, []rune{'+'}, cells[0].Runes)
	assert.Equal(t, ' ', cells[30*w].Runes[0])

	assert.True(t, vw.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.True(t, vw.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.True(t, vw.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	vw.Draw()
	assert.Equal(t, 0, vw.cursorX)
	assert.False(t, vw.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, vw.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
