// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Placement positions a node relative to its parent group.
type Placement struct {

	// Pos is the position relative to the parent.
	Pos math32.Vector3

	// Rot is the Euler rotation in radians, applied X, then Y, then Z.
	// Only solids rotate; groups always leave this zero.
	Rot math32.Vector3

	// Scale is the per-axis scale. The zero value means unit scale.
	Scale math32.Vector3
}

// UnitScale returns the effective scale, mapping the zero value to 1, 1, 1.
func (pl *Placement) UnitScale() math32.Vector3 {
	if pl.Scale == (math32.Vector3{}) {
		return math32.Vec3(1, 1, 1)
	}
	return pl.Scale
}

// Material is the surface appearance of a [Solid].
type Material struct {

	// Color is the base color as a #rrggbb hex string.
	Color string

	// Shading is the lighting model.
	Shading Shadings

	// Transparent enables Opacity. Opaque materials ignore it.
	Transparent bool

	// Opacity is the resting opacity of a transparent material, in [0, 1].
	Opacity float32
}

// Matte returns an opaque [Lambert] material, the default for buildings.
func Matte(hex string) Material {
	return Material{Color: hex, Shading: Lambert, Opacity: 1}
}

// Glossy returns a transparent [Phong] material with the given opacity.
func Glossy(hex string, opacity float32) Material {
	return Material{Color: hex, Shading: Phong, Transparent: true, Opacity: opacity}
}

// Unlit returns a transparent [Basic] material with the given opacity.
func Unlit(hex string, opacity float32) Material {
	return Material{Color: hex, Shading: Basic, Transparent: true, Opacity: opacity}
}

// RGBA returns the material color with its resting opacity as alpha.
func (mt *Material) RGBA() (color.RGBA, error) {
	c, err := colors.FromHex(mt.Color)
	if err != nil {
		return c, fmt.Errorf("plant: material color %q: %w", mt.Color, err)
	}
	if mt.Transparent {
		c.A = Alpha(mt.Opacity)
	}
	return c, nil
}

// Alpha converts an opacity in [0, 1] to an 8-bit alpha, clamping out of
// range values.
func Alpha(opacity float32) uint8 {
	return uint8(math32.Round(math32.Clamp(opacity, 0, 1) * 255))
}

// Solid is a single shape with a material at a placement.
type Solid struct {
	Placement

	// Name is unique among the solids of its parent group.
	Name string

	Shape Shape

	Material Material

	CastShadow    bool
	ReceiveShadow bool

	// Anim is the per-frame mutator driving this solid.
	Anim Anims
}

// SetPos sets the [Placement.Pos] of the solid.
func (sd *Solid) SetPos(x, y, z float32) *Solid {
	sd.Pos.Set(x, y, z)
	return sd
}

// SetRot sets the [Placement.Rot] Euler angles of the solid, in radians.
func (sd *Solid) SetRot(x, y, z float32) *Solid {
	sd.Rot.Set(x, y, z)
	return sd
}

// SetShadows sets whether the solid casts and receives shadows.
func (sd *Solid) SetShadows(cast, receive bool) *Solid {
	sd.CastShadow = cast
	sd.ReceiveShadow = receive
	return sd
}

// SetAnim sets the per-frame mutator driving the solid.
func (sd *Solid) SetAnim(an Anims) *Solid {
	sd.Anim = an
	return sd
}

// Group collects solids and subgroups under a common placement.
// Groups translate and scale their children but never rotate them.
type Group struct {
	Placement

	// Name is unique among the subgroups of its parent group.
	Name string

	Solids []*Solid

	Groups []*Group
}

// NewGroup returns a new empty group with the given name.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// SetPos sets the [Placement.Pos] of the group.
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pos.Set(x, y, z)
	return gp
}

// SetScale sets the [Placement.Scale] of the group.
func (gp *Group) SetScale(x, y, z float32) *Group {
	gp.Scale.Set(x, y, z)
	return gp
}

// NewSolid adds a new solid to the group and returns it.
func (gp *Group) NewSolid(name string, sh Shape, mt Material) *Solid {
	sd := &Solid{Name: name, Shape: sh, Material: mt}
	gp.Solids = append(gp.Solids, sd)
	return sd
}

// Add adds the given subgroups to the group.
func (gp *Group) Add(kids ...*Group) *Group {
	gp.Groups = append(gp.Groups, kids...)
	return gp
}

// GroupByName returns the direct subgroup with the given name, or nil.
func (gp *Group) GroupByName(name string) *Group {
	for _, k := range gp.Groups {
		if k.Name == name {
			return k
		}
	}
	return nil
}

// SolidByName returns the direct child solid with the given name, or nil.
func (gp *Group) SolidByName(name string) *Solid {
	for _, sd := range gp.Solids {
		if sd.Name == name {
			return sd
		}
	}
	return nil
}

// Walk calls fun for every group and solid in depth-first order, solids of
// a group before its subgroups. The path of each node is the slash-separated
// list of names from the root. Walk stops descending into a group when fun
// returns false for it.
func (gp *Group) Walk(fun func(path string, gp *Group, sd *Solid) bool) {
	gp.walk("/"+gp.Name, fun)
}

func (gp *Group) walk(path string, fun func(path string, gp *Group, sd *Solid) bool) {
	if !fun(path, gp, nil) {
		return
	}
	for _, sd := range gp.Solids {
		fun(path+"/"+sd.Name, gp, sd)
	}
	for _, k := range gp.Groups {
		k.walk(path+"/"+k.Name, fun)
	}
}

// NumSolids returns the total number of solids under the group.
func (gp *Group) NumSolids() int {
	n := 0
	gp.Walk(func(_ string, _ *Group, sd *Solid) bool {
		if sd != nil {
			n++
		}
		return true
	})
	return n
}
