// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import "fmt"

// SecurityPerimeter returns the fence around the plant with a guard tower
// at each corner.
func SecurityPerimeter() *Group {
	gp := NewGroup("security-perimeter")
	along := NewBox(300, 6, 1)
	across := NewBox(1, 6, 240)
	gp.NewSolid("fence-north", along, Matte("#808080")).SetPos(0, 3, -120).SetShadows(true, false)
	gp.NewSolid("fence-south", along, Matte("#808080")).SetPos(0, 3, 120).SetShadows(true, false)
	gp.NewSolid("fence-west", across, Matte("#808080")).SetPos(-150, 3, 0).SetShadows(true, false)
	gp.NewSolid("fence-east", across, Matte("#808080")).SetPos(150, 3, 0).SetShadows(true, false)
	gp.Add(
		GuardTower("guard-tower-nw").SetPos(-140, 0, -110),
		GuardTower("guard-tower-ne").SetPos(140, 0, -110),
		GuardTower("guard-tower-sw").SetPos(-140, 0, 110),
		GuardTower("guard-tower-se").SetPos(140, 0, 110),
	)
	return gp
}

// GuardTower returns a guard tower: a shaft topped by a lookout cabin.
func GuardTower(name string) *Group {
	gp := NewGroup(name)
	gp.NewSolid("shaft", NewBox(4, 16, 4), Matte("#A0A0A0")).
		SetPos(0, 8, 0).SetShadows(true, true)
	gp.NewSolid("cabin", NewBox(6, 4, 6), Matte("#909090")).
		SetPos(0, 18, 0).SetShadows(true, true)
	return gp
}

// ElectricalInfrastructure returns the switchyard: the transformer yard
// pad, two rows of three transformers and the outgoing transmission line.
func ElectricalInfrastructure() *Group {
	gp := NewGroup("electrical-infrastructure")
	gp.NewSolid("transformer-yard", NewBox(60, 4, 40), Matte("#606060")).
		SetPos(120, 2, 60).SetShadows(true, true)
	for i, z := range []float32{50, 70} {
		for j, x := range []float32{100, 120, 140} {
			gp.Add(Transformer(fmt.Sprintf("transformer-%d", i*3+j+1)).SetPos(x, 4, z))
		}
	}
	for i, x := range []float32{180, 220, 260} {
		gp.Add(TransmissionTower(fmt.Sprintf("transmission-tower-%d", i+1)).SetPos(x, 0, 60))
	}
	return gp
}

// Transformer returns a single transformer unit.
func Transformer(name string) *Group {
	gp := NewGroup(name)
	gp.NewSolid("unit", NewBox(8, 6, 4), Matte("#404040")).SetShadows(true, true)
	return gp
}

// TransmissionTower returns a lattice tower reduced to its mast and three
// cross arms, widest at the top.
func TransmissionTower(name string) *Group {
	gp := NewGroup(name)
	gp.NewSolid("mast", NewBox(2, 50, 2), Matte("#707070")).SetPos(0, 25, 0).SetShadows(true, false)
	gp.NewSolid("arm-top", NewBox(20, 1, 1), Matte("#707070")).SetPos(0, 40, 0).SetShadows(true, false)
	gp.NewSolid("arm-middle", NewBox(16, 1, 1), Matte("#707070")).SetPos(0, 35, 0).SetShadows(true, false)
	gp.NewSolid("arm-bottom", NewBox(12, 1, 1), Matte("#707070")).SetPos(0, 30, 0).SetShadows(true, false)
	return gp
}

// RoadsAndPaths returns the access road, the two internal roads and the
// ring road around the reactor.
func RoadsAndPaths() *Group {
	gp := NewGroup("roads-and-paths")
	gp.NewSolid("access-road", NewBox(12, 0.2, 120), Matte("#404040")).
		SetPos(0, 0.1, -180).SetShadows(false, true)
	internal := NewBox(8, 0.2, 200)
	gp.NewSolid("internal-road-east", internal, Matte("#404040")).
		SetPos(60, 0.1, 0).SetShadows(false, true)
	gp.NewSolid("internal-road-west", internal, Matte("#404040")).
		SetPos(-60, 0.1, 0).SetShadows(false, true)
	gp.NewSolid("perimeter-road", NewTorus(130, 4, 4, 16), Matte("#404040")).
		SetPos(0, 0.1, 0).SetShadows(false, true)
	return gp
}

// ParkingAreas returns the staff and visitor parking lots.
func ParkingAreas() *Group {
	gp := NewGroup("parking-areas")
	gp.NewSolid("main-lot", NewBox(60, 0.2, 40), Matte("#505050")).
		SetPos(-100, 0.1, 120).SetShadows(false, true)
	gp.NewSolid("secondary-lot", NewBox(40, 0.2, 30), Matte("#505050")).
		SetPos(100, 0.1, 100).SetShadows(false, true)
	gp.NewSolid("parking-line", NewBox(58, 0.1, 1), Matte("#FFFFFF")).
		SetPos(-100, 0.2, 120).SetShadows(false, true)
	return gp
}
