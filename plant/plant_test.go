// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"bytes"
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiverOpacity(t *testing.T) {
	for i := range 20000 {
		tm := float64(i) * 0.01
		op := RiverOpacity(tm)
		assert.GreaterOrEqual(t, op, float32(0.6), "t=%g", tm)
		assert.LessOrEqual(t, op, float32(0.8), "t=%g", tm)
	}
	assert.InDelta(t, 0.7, RiverOpacity(0), 1e-6)
	assert.InDelta(t, 0.8, RiverOpacity(math.Pi), 1e-6)
}

func TestSteam(t *testing.T) {
	for i := range 20000 {
		tm := float64(i) * 0.01
		op := SteamOpacity(tm)
		assert.GreaterOrEqual(t, op, float32(0.2), "t=%g", tm)
		assert.LessOrEqual(t, op, float32(0.4), "t=%g", tm)
	}
	assert.InDelta(t, 0.4, SteamOpacity(math.Pi/2), 1e-6)
	assert.InDelta(t, 2, SteamRotation(10), 1e-6)
}

func TestAnimsFrame(t *testing.T) {
	_, ok := NoAnim.Frame(3)
	assert.False(t, ok)

	fr, ok := RiverShimmer.Frame(3)
	assert.True(t, ok)
	assert.False(t, fr.Rotates)
	assert.Equal(t, RiverOpacity(3), fr.Opacity)

	fr, ok = SteamPlume.Frame(3)
	assert.True(t, ok)
	assert.True(t, fr.Rotates)
	assert.Equal(t, SteamOpacity(3), fr.Opacity)
	assert.Equal(t, SteamRotation(3), fr.RotY)
}

func TestScatterTrees(t *testing.T) {
	for seed := range int64(50) {
		spots := ScatterTrees(NewRand(seed), TreeIterations)
		assert.LessOrEqual(t, len(spots), TreeIterations)
		for _, sp := range spots {
			d := math.Hypot(float64(sp.Pos.X), float64(sp.Pos.Z))
			assert.Greater(t, d, float64(TreeMinRadius))
			assert.Less(t, d, float64(TreeMaxRadius))
			assert.Zero(t, sp.Pos.Y)
			assert.GreaterOrEqual(t, sp.Scale, float32(0.5))
			assert.Less(t, sp.Scale, float32(1.3))
		}
	}
	assert.Empty(t, ScatterTrees(NewRand(1), 0))
}

func TestScatterTreesSeeded(t *testing.T) {
	a := ScatterTrees(NewRand(42), TreeIterations)
	b := ScatterTrees(NewRand(42), TreeIterations)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, ScatterTrees(NewRand(43), TreeIterations))
}

func TestInTreeBand(t *testing.T) {
	assert.False(t, InTreeBand(0, 0))
	assert.False(t, InTreeBand(80, 0))
	assert.True(t, InTreeBand(80, 1))
	assert.True(t, InTreeBand(0, -279))
	assert.False(t, InTreeBand(0, 280))
	assert.False(t, InTreeBand(300, 200))
}

func TestComplexTopLevel(t *testing.T) {
	root := Complex(NewRand(7), TreeIterations)
	require.Equal(t, RootName, root.Name)
	names := make([]string, len(root.Groups))
	counts := make(map[string]int)
	for i, gp := range root.Groups {
		names[i] = gp.Name
		counts[gp.Name]++
	}
	assert.Equal(t, TopLevel, names)
	for _, nm := range TopLevel {
		assert.Equal(t, 1, counts[nm], nm)
	}
	assert.NoError(t, Validate(root))

	st := Static()
	assert.Nil(t, st.GroupByName("vegetation"))
	assert.Len(t, st.Groups, len(TopLevel)-1)
}

func TestComplexVegetationBound(t *testing.T) {
	root := Complex(NewRand(3), 40)
	veg := root.GroupByName("vegetation")
	require.NotNil(t, veg)
	assert.LessOrEqual(t, len(veg.Groups), 40)
	for _, tr := range veg.Groups {
		assert.True(t, InTreeBand(tr.Pos.X, tr.Pos.Z), tr.Name)
		assert.Len(t, tr.Solids, 3)
	}
}

func TestStaticDeterministic(t *testing.T) {
	for f := range FormatsN {
		var a, b bytes.Buffer
		require.NoError(t, Encode(&a, Static(), f))
		require.NoError(t, Encode(&b, Static(), f))
		assert.NotZero(t, a.Len(), f.String())
		assert.Equal(t, a.Bytes(), b.Bytes(), f.String())
	}
}

func TestEncodeDecode(t *testing.T) {
	want := Flatten(Static())
	for f := range FormatsN {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, Static(), f))
		doc, err := Decode(&buf, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, RootName, doc.Name)
		require.Len(t, doc.Records, len(want), f.String())
		assert.Equal(t, want[0].Path, doc.Records[0].Path)
		assert.Equal(t, want[len(want)-1].Shape, doc.Records[len(want)-1].Shape)
	}
}

func TestFlattenTransforms(t *testing.T) {
	recs := Flatten(Static())
	byPath := make(map[string]Record)
	for _, rc := range recs {
		byPath[rc.Path] = rc
	}

	hall := byPath["/atucha-ii-complex/turbine-hall/hall"]
	assert.Equal(t, math32.Vec3(60, 15, 0), hall.Pos)
	assert.Equal(t, math32.Vec3(1, 1, 1), hall.Scale)

	win := byPath["/atucha-ii-complex/administration-building/windows-west"]
	assert.InDelta(t, -140.1, win.Pos.X, 1e-4)
	assert.Equal(t, float32(80), win.Pos.Z)

	cabin := byPath["/atucha-ii-complex/security-perimeter/guard-tower-se/cabin"]
	assert.Equal(t, math32.Vec3(140, 18, 110), cabin.Pos)

	bank := byPath["/atucha-ii-complex/terrain/river-bank"]
	assert.Equal(t, float32(-0.2), bank.Rot.X)

	river := byPath["/atucha-ii-complex/parana-river/river-body"]
	assert.Equal(t, RiverShimmer, river.Anim)
	assert.True(t, river.Material.Transparent)

	dome := byPath["/atucha-ii-complex/reactor-building/dome"]
	assert.Equal(t, Hemisphere, dome.Shape.Sector)
}

func TestFlattenScaledGroup(t *testing.T) {
	tr := Tree("t", TreeSpot{Pos: math32.Vec3(100, 0, 20), Scale: 0.5})
	recs := Flatten(tr)
	require.Len(t, recs, 3)
	assert.Equal(t, "/t/foliage-high", recs[2].Path)
	assert.Equal(t, math32.Vec3(100, 12.5, 20), recs[2].Pos)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), recs[2].Scale)
	assert.InDelta(t, 15.5, recs[2].Top(), 1e-5)
}

func TestValidate(t *testing.T) {
	root := Static()
	root.Add(ReactorBuilding())
	root.GroupByName("terrain").NewSolid("ground", NewBox(1, 1, 1), Matte("#000000"))
	root.GroupByName("parking-areas").NewSolid("bad", NewBox(1, 1, 1), Matte("not-a-color"))
	root.GroupByName("turbine-hall").Rot.Y = 1
	err := Validate(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate group "reactor-building"`)
	assert.Contains(t, err.Error(), `duplicate solid "ground"`)
	assert.Contains(t, err.Error(), "not-a-color")
	assert.Contains(t, err.Error(), "turbine-hall: groups cannot rotate")
}

func TestSummarize(t *testing.T) {
	sm := Summarize(Static())
	assert.Equal(t, len(Flatten(Static())), sm.Total)
	assert.Equal(t, 3, sm.Animated)
	assert.Equal(t, 2, sm.Kinds[Label])
	assert.Equal(t, 1, sm.Kinds[Torus])
	assert.Equal(t, 1, sm.Kinds[Plane])
	assert.Equal(t, 1, sm.Kinds[Sphere])
	require.Len(t, sm.Groups, len(TopLevel)-1)
	assert.Equal(t, "electrical-infrastructure", sm.Groups[0].Name)
	assert.Equal(t, 19, sm.Groups[0].Solids)
}

func TestMaterialRGBA(t *testing.T) {
	mt := Glossy("#4A90E2", 0.7)
	c, err := mt.RGBA()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x4A), c.R)
	assert.InDelta(t, 179, c.A, 1)

	mt = Matte("#8B7355")
	c, err = mt.RGBA()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.A)

	assert.Equal(t, uint8(0), Alpha(-1))
	assert.Equal(t, uint8(255), Alpha(2))
}

func TestShapeKey(t *testing.T) {
	assert.Equal(t, NewBox(8, 6, 4).Key(), NewBox(8, 6, 4).Key())
	assert.NotEqual(t, NewSphere(25, 16, 8).Key(), NewSphere(25, 16, 8).WithSector(Hemisphere).Key())
	assert.NotEqual(t, NewCylinder(15, 25, 100, 12).Key(), NewCylinder(25, 15, 100, 12).Key())
}

func TestEnumText(t *testing.T) {
	var k Kinds
	require.NoError(t, k.UnmarshalText([]byte("Torus")))
	assert.Equal(t, Torus, k)
	assert.Error(t, k.SetString("Cone"))
	// bad text is logged and leaves the value alone
	assert.NoError(t, k.UnmarshalText([]byte("Cone")))
	assert.Equal(t, Torus, k)
	assert.Equal(t, "SteamPlume", SteamPlume.String())
	assert.Len(t, AnimsValues(), int(AnimsN))
	assert.Equal(t, "Lambert is diffuse-only shading with no specular highlight.", Lambert.Desc())
	text, err := TOML.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "toml", string(text))

	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
