// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plantxyz

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/atucha-viz/atucha/plant"
)

// MeshFor returns the mesh for the given shape, making it on sc the first
// time it is needed. Shapes with the same [plant.Shape.Key] share a mesh.
func MeshFor(sc *xyz.Scene, sh plant.Shape) xyz.Mesh {
	key := sh.Key()
	if ms, err := sc.MeshByName(key); err == nil {
		return ms
	}
	switch sh.Kind {
	case plant.Box:
		return xyz.NewBox(sc, key, sh.Width, sh.Height, sh.Depth)
	case plant.Cylinder:
		return xyz.NewCylinderSector(sc, key, sh.Height, sh.TopRadius, sh.BottomRadius,
			sh.Segments, 1, 0, 360, true, true)
	case plant.Sphere:
		sp := xyz.NewSphere(sc, key, sh.Radius, sh.Segments)
		sp.HeightSegs = sh.SubSegments
		if !sh.Sector.IsZero() {
			sec := sh.Sector
			sp.AngStart = math32.RadToDeg(sec.PhiStart)
			sp.AngLen = math32.RadToDeg(sec.PhiLength)
			sp.ElevStart = math32.RadToDeg(sec.ThetaStart)
			sp.ElevLen = math32.RadToDeg(sec.ThetaLength)
		}
		sc.SetMesh(sp)
		return sp
	case plant.Plane:
		return xyz.NewPlane(sc, key, sh.Width, sh.Height)
	case plant.Torus:
		tr := xyz.NewTorus(sc, key, sh.Radius, sh.Tube, sh.SubSegments)
		// segments around the ring, then around the tube
		tr.RadialSegs = sh.SubSegments
		tr.TubeSegs = sh.Segments
		sc.SetMesh(tr)
		return tr
	}
	return nil
}
