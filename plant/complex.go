// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

// RootName is the name of the root group of the complex.
const RootName = "atucha-ii-complex"

// TopLevel lists the names of the top-level groups of [Complex], in order.
var TopLevel = []string{
	"terrain",
	"parana-river",
	"reactor-building",
	"cooling-towers",
	"auxiliary-buildings",
	"turbine-hall",
	"administration-building",
	"security-perimeter",
	"electrical-infrastructure",
	"vegetation",
	"roads-and-paths",
	"parking-areas",
	"water-intake",
}

// Complex returns the whole plant complex, with trees scattered by
// [ScatterTrees] using the given source and iteration count.
func Complex(rnd Rand, iterations int) *Group {
	return compose(Vegetation(ScatterTrees(rnd, iterations)))
}

// Static returns the complex without vegetation. Every call returns an
// identical tree.
func Static() *Group {
	return compose(nil)
}

func compose(veg *Group) *Group {
	gp := NewGroup(RootName)
	gp.Add(
		TerrainBase(),
		ParanaRiver(),
		ReactorBuilding(),
		CoolingTowers(),
		AuxiliaryBuildings(),
		TurbineHall(),
		AdministrationBuilding(),
		SecurityPerimeter(),
		ElectricalInfrastructure(),
	)
	if veg != nil {
		gp.Add(veg)
	}
	gp.Add(
		RoadsAndPaths(),
		ParkingAreas(),
		WaterIntakeStructures(),
	)
	return gp
}
