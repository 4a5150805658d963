// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plantxyz mounts a [plant.Group] descriptor tree on an [xyz.Scene]
// and drives its per-frame animations.
package plantxyz

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/text/text"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"

	"github.com/atucha-viz/atucha/plant"
)

// Mount builds xyz nodes for root and everything under it, as a new group
// under the given parent node of sc. It returns the new group and the
// [Animator] for the animated solids it created.
func Mount(sc *xyz.Scene, parent tree.Node, root *plant.Group) (*xyz.Group, *Animator) {
	an := &Animator{}
	gp := mountGroup(sc, parent, root, an)
	slog.Debug("plantxyz: mounted", "root", root.Name, "animated", an.Len(), "meshes", sc.Meshes.Len())
	return gp, an
}

// Remount deletes old, if non-nil, and mounts root in its place.
func Remount(sc *xyz.Scene, parent tree.Node, old *xyz.Group, root *plant.Group) (*xyz.Group, *Animator) {
	if old != nil {
		old.Delete()
	}
	gp, an := Mount(sc, parent, root)
	sc.SetNeedsUpdate()
	return gp, an
}

func mountGroup(sc *xyz.Scene, parent tree.Node, pg *plant.Group, an *Animator) *xyz.Group {
	gp := xyz.NewGroup(parent)
	gp.SetName(pg.Name)
	gp.Pose.Pos = pg.Pos
	gp.Pose.Scale = pg.UnitScale()
	for _, sd := range pg.Solids {
		sld := mountSolid(sc, gp, sd)
		if sd.Anim != plant.NoAnim {
			an.add(sld, sd)
		}
	}
	for _, k := range pg.Groups {
		mountGroup(sc, gp, k, an)
	}
	return gp
}

func mountSolid(sc *xyz.Scene, parent *xyz.Group, sd *plant.Solid) *xyz.Solid {
	clr := errors.Log1(sd.Material.RGBA())
	if sd.Shape.Kind == plant.Label {
		return mountLabel(parent, sd, clr)
	}
	sld := xyz.NewSolid(parent)
	sld.SetName(sd.Name)
	sld.SetMesh(MeshFor(sc, sd.Shape)).SetColor(clr)
	setPose(sld, &sd.Placement)
	switch sd.Material.Shading {
	case plant.Lambert:
		sld.SetReflective(0)
	case plant.Basic:
		sld.SetEmissive(clr).SetReflective(0)
	}
	return sld
}

func mountLabel(parent *xyz.Group, sd *plant.Solid, clr color.RGBA) *xyz.Solid {
	txt := xyz.NewText2D(parent)
	txt.SetName(sd.Name)
	txt.SetText(sd.Shape.Text)
	txt.Styles.Color = colors.Uniform(clr)
	txt.Styles.Text.Align = text.Center
	txt.Styles.Text.AlignV = text.Center
	txt.Pose.Pos = sd.Pos
	txt.Pose.Scale.SetScalar(sd.Shape.FontSize)
	return &txt.Solid
}

// setPose applies a placement to a solid. xyz rotations are in degrees.
func setPose(sld *xyz.Solid, pl *plant.Placement) {
	sld.Pose.Pos = pl.Pos
	sld.Pose.Scale = pl.UnitScale()
	if pl.Rot != (math32.Vector3{}) {
		sld.SetEulerRotation(math32.RadToDeg(pl.Rot.X), math32.RadToDeg(pl.Rot.Y), math32.RadToDeg(pl.Rot.Z))
	}
}
