// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

// TerrainBase returns the ground: the surrounding terrain, the raised
// plant platform, and the slope down to the river.
func TerrainBase() *Group {
	gp := NewGroup("terrain")
	gp.NewSolid("ground", NewBox(800, 4, 600), Matte("#8B7355")).
		SetPos(0, -2, 0).SetShadows(false, true)
	gp.NewSolid("plant-platform", NewBox(400, 2, 300), Matte("#A0926B")).
		SetShadows(false, true)
	gp.NewSolid("river-bank", NewBox(800, 20, 40), Matte("#7A6B47")).
		SetPos(0, -1, 280).SetRot(-0.2, 0, 0).SetShadows(false, true)
	return gp
}

// ParanaRiver returns the river along the southern edge of the site.
// The river body shimmers with [RiverShimmer].
func ParanaRiver() *Group {
	gp := NewGroup("parana-river")
	gp.NewSolid("river-body", NewBox(800, 1, 80), Glossy("#4A90E2", 0.7)).
		SetPos(0, -1.5, 320).SetShadows(false, true).SetAnim(RiverShimmer)
	gp.NewSolid("river-flow", NewPlane(800, 80), Unlit("#5BA3F5", 0.3)).
		SetPos(0, -1.4, 320)
	return gp
}

// WaterIntakeStructures returns the cooling water intake on the river bank:
// the intake building, three intake pipes and the discharge structure.
func WaterIntakeStructures() *Group {
	gp := NewGroup("water-intake")
	gp.NewSolid("intake-building", NewBox(30, 10, 20), Matte("#C0C0C0")).
		SetPos(0, 5, 250).SetShadows(true, true)
	pipe := NewCylinder(2, 2, 40, 8)
	gp.NewSolid("intake-pipe-center", pipe, Matte("#808080")).
		SetPos(0, 2, 270).SetShadows(true, true)
	gp.NewSolid("intake-pipe-west", pipe, Matte("#808080")).
		SetPos(-10, 2, 270).SetShadows(true, true)
	gp.NewSolid("intake-pipe-east", pipe, Matte("#808080")).
		SetPos(10, 2, 270).SetShadows(true, true)
	gp.NewSolid("discharge", NewBox(15, 6, 10), Matte("#B0B0B0")).
		SetPos(50, 3, 280).SetShadows(true, true)
	return gp
}
