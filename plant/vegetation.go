// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"fmt"
	"math"
	"math/rand/v2"

	"cogentcore.org/core/math32"
)

const (
	// TreeIterations is the default number of scatter draws.
	TreeIterations = 150

	// TreeMinRadius and TreeMaxRadius bound, exclusively, the distance of
	// every tree from the reactor at the origin.
	TreeMinRadius = 80
	TreeMaxRadius = 280

	// scatter area around the origin, in X and Z.
	scatterWidth = 600
	scatterDepth = 400
)

// Rand is the random source of the tree scatter.
// A *rand.Rand from math/rand/v2 is one.
type Rand interface {
	Float64() float64
}

// NewRand returns a source seeded with seed. Equal seeds give equal
// scatters.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
}

// TreeSpot is where a tree stands and how large it is.
type TreeSpot struct {
	Pos   math32.Vector3
	Scale float32
}

// ScatterTrees draws iterations candidate points uniformly over the
// scatter area and keeps those strictly between [TreeMinRadius] and
// [TreeMaxRadius] from the origin. Each kept spot draws a scale in
// [0.5, 1.3). The result never has more than iterations spots.
func ScatterTrees(rnd Rand, iterations int) []TreeSpot {
	var spots []TreeSpot
	for range iterations {
		x := float32((rnd.Float64() - 0.5) * scatterWidth)
		z := float32((rnd.Float64() - 0.5) * scatterDepth)
		if !InTreeBand(x, z) {
			continue
		}
		scale := float32(0.5 + rnd.Float64()*0.8)
		spots = append(spots, TreeSpot{Pos: math32.Vec3(x, 0, z), Scale: scale})
	}
	return spots
}

// InTreeBand returns whether a point on the ground is far enough from the
// buildings and near enough to the site to hold a tree.
func InTreeBand(x, z float32) bool {
	d := math.Hypot(float64(x), float64(z))
	return d > TreeMinRadius && d < TreeMaxRadius
}

// Vegetation returns a group holding one [Tree] per spot.
func Vegetation(spots []TreeSpot) *Group {
	gp := NewGroup("vegetation")
	for i, sp := range spots {
		gp.Add(Tree(fmt.Sprintf("tree-%d", i), sp))
	}
	return gp
}

// Tree returns a tree at the given spot: a trunk and two foliage spheres.
func Tree(name string, sp TreeSpot) *Group {
	gp := NewGroup(name)
	gp.Pos = sp.Pos
	gp.Scale.SetScalar(sp.Scale)
	gp.NewSolid("trunk", NewCylinder(1, 1.5, 16, 6), Matte("#8B4513")).
		SetPos(0, 8, 0).SetShadows(true, false)
	gp.NewSolid("foliage-low", NewSphere(8, 8, 6), Matte("#228B22")).
		SetPos(0, 20, 0).SetShadows(true, false)
	gp.NewSolid("foliage-high", NewSphere(6, 8, 6), Matte("#32CD32")).
		SetPos(0, 25, 0).SetShadows(true, false)
	return gp
}
