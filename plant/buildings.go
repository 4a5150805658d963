// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import "cogentcore.org/core/math32"

// labelColor is the color of all building labels.
const labelColor = "#333333"

// ReactorBuilding returns the containment building at the center of the
// site: inner containment with its dome, secondary containment and base.
func ReactorBuilding() *Group {
	gp := NewGroup("reactor-building")
	gp.NewSolid("containment", NewCylinder(25, 25, 70, 16), Matte("#E8E8E8")).
		SetPos(0, 35, 0).SetShadows(true, true)
	gp.NewSolid("dome", NewSphere(25, 16, 8).WithSector(Hemisphere), Matte("#F0F0F0")).
		SetPos(0, 70, 0).SetShadows(true, false)
	gp.NewSolid("secondary-containment", NewCylinder(30, 30, 60, 16), Matte("#D0D0D0")).
		SetPos(0, 30, 0).SetShadows(true, true)
	gp.NewSolid("base", NewCylinder(35, 35, 10, 16), Matte("#C0C0C0")).
		SetPos(0, 5, 0).SetShadows(true, true)
	gp.NewSolid("label", NewLabel("Reactor Building", 8), Matte(labelColor)).
		SetPos(0, 85, 0)
	return gp
}

// CoolingTowers returns the two tapered cooling towers west of the reactor,
// each with a steam plume at its mouth.
func CoolingTowers() *Group {
	gp := NewGroup("cooling-towers")
	tower := NewCylinder(15, 25, 100, 12)
	gp.NewSolid("tower-north", tower, Matte("#F5F5F5")).
		SetPos(-80, 50, -40).SetShadows(true, true)
	gp.NewSolid("tower-south", tower, Matte("#F5F5F5")).
		SetPos(-80, 50, 40).SetShadows(true, true)
	SteamEffect(gp, "steam-north", math32.Vec3(-80, 100, -40))
	SteamEffect(gp, "steam-south", math32.Vec3(-80, 100, 40))
	return gp
}

// SteamEffect adds a steam plume solid at pos to the group.
// The plume is driven by [SteamPlume].
func SteamEffect(gp *Group, name string, pos math32.Vector3) *Solid {
	sd := gp.NewSolid(name, NewCylinder(8, 3, 20, 8), Unlit("#FFFFFF", 0.3)).
		SetAnim(SteamPlume)
	sd.Pos = pos
	return sd
}

// TurbineHall returns the turbine hall east of the reactor.
func TurbineHall() *Group {
	gp := NewGroup("turbine-hall").SetPos(60, 0, 0)
	gp.NewSolid("hall", NewBox(80, 30, 40), Matte("#B8B8B8")).
		SetPos(0, 15, 0).SetShadows(true, true)
	gp.NewSolid("roof", NewBox(82, 2, 42), Matte("#A0A0A0")).
		SetPos(0, 30, 0).SetShadows(true, false)
	gp.NewSolid("label", NewLabel("Turbine Hall", 6), Matte(labelColor)).
		SetPos(0, 35, 0)
	return gp
}

// AuxiliaryBuildings returns the auxiliary and control buildings and the
// emergency diesel generators.
func AuxiliaryBuildings() *Group {
	gp := NewGroup("auxiliary-buildings")
	gp.NewSolid("auxiliary-1", NewBox(30, 20, 25), Matte("#C8C8C8")).
		SetPos(-40, 10, -60).SetShadows(true, true)
	gp.NewSolid("auxiliary-2", NewBox(25, 16, 20), Matte("#C8C8C8")).
		SetPos(40, 8, -70).SetShadows(true, true)
	gp.NewSolid("control-building", NewBox(35, 24, 30), Matte("#D8D8D8")).
		SetPos(-20, 12, 60).SetShadows(true, true)
	diesel := NewBox(20, 12, 15)
	gp.NewSolid("diesel-generator-1", diesel, Matte("#B0B0B0")).
		SetPos(80, 6, -40).SetShadows(true, true)
	gp.NewSolid("diesel-generator-2", diesel, Matte("#B0B0B0")).
		SetPos(80, 6, -20).SetShadows(true, true)
	return gp
}

// AdministrationBuilding returns the office block near the main gate,
// with window strips on its east and west faces.
func AdministrationBuilding() *Group {
	gp := NewGroup("administration-building").SetPos(-120, 0, 80)
	gp.NewSolid("offices", NewBox(40, 30, 25), Matte("#E0E0E0")).
		SetPos(0, 15, 0).SetShadows(true, true)
	windows := NewBox(0.2, 25, 20)
	gp.NewSolid("windows-east", windows, Matte("#4A90E2")).
		SetPos(20.1, 15, 0).SetShadows(true, false)
	gp.NewSolid("windows-west", windows, Matte("#4A90E2")).
		SetPos(-20.1, 15, 0).SetShadows(true, false)
	return gp
}
