// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plantxyz

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/atucha-viz/atucha/plant"
)

// Animator applies the per-frame mutators of a mounted tree.
// It must only be used from the render goroutine.
type Animator struct {
	items []animated
}

type animated struct {
	solid *xyz.Solid
	anim  plant.Anims

	// rot is the resting rotation of the solid, in radians.
	rot math32.Vector3
}

func (an *Animator) add(sld *xyz.Solid, sd *plant.Solid) {
	an.items = append(an.items, animated{solid: sld, anim: sd.Anim, rot: sd.Rot})
}

// Len returns the number of animated solids.
func (an *Animator) Len() int {
	return len(an.items)
}

// Step sets every animated solid to its state at the given elapsed time.
// Only material alpha and rotation about Y are written.
func (an *Animator) Step(elapsed time.Duration) {
	t := elapsed.Seconds()
	for _, it := range an.items {
		fr, ok := it.anim.Frame(t)
		if !ok {
			continue
		}
		it.solid.Material.Color.A = plant.Alpha(fr.Opacity)
		if fr.Rotates {
			it.solid.SetEulerRotation(math32.RadToDeg(it.rot.X), math32.RadToDeg(fr.RotY), math32.RadToDeg(it.rot.Z))
		}
	}
}

// Solids returns the animated solids, in mount order.
func (an *Animator) Solids() []*xyz.Solid {
	sl := make([]*xyz.Solid, len(an.items))
	for i, it := range an.items {
		sl[i] = it.solid
	}
	return sl
}
