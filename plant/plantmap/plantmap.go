// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plantmap draws a top-down site plan of a plant scene, as a grid
// of colored cells that a terminal can show.
package plantmap

import (
	"cmp"
	"slices"

	"cogentcore.org/core/math32"

	"github.com/atucha-viz/atucha/plant"
)

// Bounds is a rectangle on the ground plane, in world X and Z.
type Bounds struct {
	MinX, MinZ, MaxX, MaxZ float32
}

// SiteBounds covers the terrain of the complex.
var SiteBounds = Bounds{MinX: -400, MinZ: -300, MaxX: 400, MaxZ: 300}

// Cell is one grid cell: the color and height of the tallest thing in it.
type Cell struct {

	// Color is the #rrggbb material color, or "" for an empty cell.
	Color string

	// Top is the height of the top of the solid that colored the cell.
	Top float32

	// Path is the record path of the solid that colored the cell.
	Path string
}

// Grid is a raster of the site, row 0 at MinZ (north).
type Grid struct {
	Cols, Rows int
	Bounds     Bounds
	Cells      []Cell
}

// At returns the cell at column c and row r.
func (g *Grid) At(c, r int) *Cell {
	return &g.Cells[r*g.Cols+c]
}

// center returns the world position of the center of a cell.
func (g *Grid) center(c, r int) (x, z float32) {
	b := g.Bounds
	x = b.MinX + (float32(c)+0.5)*(b.MaxX-b.MinX)/float32(g.Cols)
	z = b.MinZ + (float32(r)+0.5)*(b.MaxZ-b.MinZ)/float32(g.Rows)
	return
}

// Rasterize paints the footprints of the records onto a cols x rows grid
// covering bounds. Taller solids paint over lower ones; labels are skipped.
// Rotation is ignored, so tilted solids keep their axis-aligned footprint.
func Rasterize(recs []plant.Record, cols, rows int, bounds Bounds) *Grid {
	g := &Grid{Cols: cols, Rows: rows, Bounds: bounds, Cells: make([]Cell, cols*rows)}
	order := make([]*plant.Record, 0, len(recs))
	for i := range recs {
		if recs[i].Shape.Kind != plant.Label {
			order = append(order, &recs[i])
		}
	}
	slices.SortStableFunc(order, func(a, b *plant.Record) int {
		return cmp.Compare(a.Top(), b.Top())
	})
	for _, rc := range order {
		g.paint(rc)
	}
	return g
}

func (g *Grid) paint(rc *plant.Record) {
	top := rc.Top()
	for r := range g.Rows {
		for c := range g.Cols {
			x, z := g.center(c, r)
			if !covers(rc, x-rc.Pos.X, z-rc.Pos.Z) {
				continue
			}
			*g.At(c, r) = Cell{Color: rc.Material.Color, Top: top, Path: rc.Path}
		}
	}
}

// covers returns whether the footprint of rc contains the offset dx, dz
// from its center.
func covers(rc *plant.Record, dx, dz float32) bool {
	sh := &rc.Shape
	sx, sz := rc.Scale.X, rc.Scale.Z
	switch sh.Kind {
	case plant.Box, plant.Plane:
		ex, _, ez := sh.Extent()
		return math32.Abs(dx) <= ex*sx && math32.Abs(dz) <= ez*sz
	case plant.Cylinder, plant.Sphere:
		ex, _, _ := sh.Extent()
		return hypot(dx/sx, dz/sz) <= ex
	case plant.Torus:
		d := hypot(dx/sx, dz/sz)
		return math32.Abs(d-sh.Radius) <= sh.Tube
	}
	return false
}

func hypot(x, z float32) float32 {
	return math32.Sqrt(x*x + z*z)
}
