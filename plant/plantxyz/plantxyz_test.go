// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plantxyz

import (
	"math"
	"testing"
	"time"

	"cogentcore.org/core/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atucha-viz/atucha/plant"
)

func TestMount(t *testing.T) {
	sc := xyz.NewScene()
	root := plant.Static()
	gp, an := Mount(sc, sc, root)
	require.NotNil(t, gp)
	assert.Equal(t, plant.RootName, gp.Name)
	assert.Equal(t, len(root.Groups), gp.NumChildren())
	assert.Equal(t, 3, an.Len())

	keys := make(map[string]bool)
	root.Walk(func(_ string, _ *plant.Group, sd *plant.Solid) bool {
		if sd != nil && sd.Shape.Kind != plant.Label {
			keys[sd.Shape.Key()] = true
		}
		return true
	})
	for k := range keys {
		_, err := sc.MeshByName(k)
		assert.NoError(t, err, k)
	}

	tur := gp.ChildByName("turbine-hall", 0).(*xyz.Group)
	assert.Equal(t, float32(60), tur.Pose.Pos.X)
	hall := tur.ChildByName("hall", 0).(*xyz.Solid)
	assert.Equal(t, float32(15), hall.Pose.Pos.Y)
	assert.Equal(t, uint8(255), hall.Material.Color.A)
}

func TestMountFlatShapes(t *testing.T) {
	sc := xyz.NewScene()
	gp, _ := Mount(sc, sc, plant.Static())
	solid := func(group, name string) *xyz.Solid {
		return gp.ChildByName(group, 0).(*xyz.Group).ChildByName(name, 0).(*xyz.Solid)
	}
	// planes and tori lie on the ground as mounted
	assert.True(t, solid("parana-river", "river-flow").Pose.Quat.IsIdentity())
	assert.True(t, solid("roads-and-paths", "perimeter-road").Pose.Quat.IsIdentity())
	assert.False(t, solid("terrain", "river-bank").Pose.Quat.IsIdentity())
}

func TestMeshForTorus(t *testing.T) {
	sc := xyz.NewScene()
	ms := MeshFor(sc, plant.NewTorus(130, 4, 4, 16))
	tr, ok := ms.(*xyz.Torus)
	require.True(t, ok)
	assert.Equal(t, 16, tr.RadialSegs)
	assert.Equal(t, 4, tr.TubeSegs)
	assert.Equal(t, float32(130), tr.Radius)
	assert.Equal(t, float32(4), tr.TubeRadius)
	assert.Same(t, tr, MeshFor(sc, plant.NewTorus(130, 4, 4, 16)))
}

func TestAnimatorStep(t *testing.T) {
	sc := xyz.NewScene()
	_, an := Mount(sc, sc, plant.Static())
	sls := an.Solids()
	require.Len(t, sls, 3)
	assert.Equal(t, "river-body", sls[0].Name)
	assert.Equal(t, "steam-north", sls[1].Name)

	an.Step(0)
	assert.Equal(t, plant.Alpha(0.7), sls[0].Material.Color.A)
	assert.Equal(t, plant.Alpha(0.3), sls[1].Material.Color.A)

	for i := range 600 {
		el := time.Duration(i) * 50 * time.Millisecond
		an.Step(el)
		assert.GreaterOrEqual(t, sls[0].Material.Color.A, plant.Alpha(0.6))
		assert.LessOrEqual(t, sls[0].Material.Color.A, plant.Alpha(0.8))
		for _, st := range sls[1:] {
			assert.GreaterOrEqual(t, st.Material.Color.A, plant.Alpha(0.2))
			assert.LessOrEqual(t, st.Material.Color.A, plant.Alpha(0.4))
		}
	}

	an.Step(time.Duration(math.Pi / 2 * float64(time.Second)))
	assert.Equal(t, plant.Alpha(plant.SteamOpacity(math.Pi/2)), sls[2].Material.Color.A)
}

func TestMountVegetation(t *testing.T) {
	sc := xyz.NewScene()
	root := plant.Complex(plant.NewRand(11), plant.TreeIterations)
	gp, an := Mount(sc, sc, root)
	veg := gp.ChildByName("vegetation", 0).(*xyz.Group)
	assert.Equal(t, len(root.GroupByName("vegetation").Groups), veg.NumChildren())
	assert.Equal(t, 3, an.Len())

	gp2, an2 := Remount(sc, sc, gp, plant.Static())
	assert.Nil(t, gp2.ChildByName("vegetation", 0))
	assert.Equal(t, 3, an2.Len())
	assert.Equal(t, 1, countNamed(sc, plant.RootName))
}

func TestConfigScene(t *testing.T) {
	sc := xyz.NewScene()
	assert.NoError(t, ConfigScene(sc, "aerial"))
	assert.Error(t, ConfigScene(xyz.NewScene(), "moon"))
	assert.Equal(t, []string{"aerial", "default", "gate", "river"}, CameraNames())
}

func countNamed(sc *xyz.Scene, name string) int {
	n := 0
	for _, k := range sc.Children {
		if k.AsTree().Name == name {
			n++
		}
	}
	return n
}
