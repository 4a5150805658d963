// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// Record is one solid of a scene in world space: its shape, composed
// transform and material, with the slash-separated path of names that
// leads to it from the root.
type Record struct {
	Path  string
	Shape Shape

	// Pos and Scale are in world space. Rot is the solid's own rotation,
	// since groups never rotate.
	Pos   math32.Vector3
	Rot   math32.Vector3
	Scale math32.Vector3

	Material      Material
	CastShadow    bool
	ReceiveShadow bool
	Anim          Anims
}

// Top returns the world-space height of the top of the record's bounding box.
func (rc *Record) Top() float32 {
	_, y, _ := rc.Shape.Extent()
	return rc.Pos.Y + y*rc.Scale.Y
}

// Flatten returns the records of all solids under root, in [Group.Walk] order.
func Flatten(root *Group) []Record {
	var recs []Record
	flatten(root, "/"+root.Name, math32.Vector3{}, math32.Vec3(1, 1, 1), &recs)
	return recs
}

func flatten(gp *Group, path string, pos, scale math32.Vector3, recs *[]Record) {
	pos = pos.Add(gp.Pos.Mul(scale))
	scale = scale.Mul(gp.UnitScale())
	for _, sd := range gp.Solids {
		*recs = append(*recs, Record{
			Path:          path + "/" + sd.Name,
			Shape:         sd.Shape,
			Pos:           pos.Add(sd.Pos.Mul(scale)),
			Rot:           sd.Rot,
			Scale:         scale.Mul(sd.UnitScale()),
			Material:      sd.Material,
			CastShadow:    sd.CastShadow,
			ReceiveShadow: sd.ReceiveShadow,
			Anim:          sd.Anim,
		})
	}
	for _, k := range gp.Groups {
		flatten(k, path+"/"+k.Name, pos, scale, recs)
	}
}

// Validate checks that sibling names are unique throughout the tree, that
// groups do not rotate, and that every material color parses.
func Validate(root *Group) error {
	var errs []error
	root.Walk(func(path string, gp *Group, sd *Solid) bool {
		if sd != nil {
			if _, err := sd.Material.RGBA(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
			}
			return true
		}
		if gp.Rot != (math32.Vector3{}) {
			errs = append(errs, fmt.Errorf("%s: groups cannot rotate", path))
		}
		seen := make(map[string]bool)
		for _, k := range gp.Groups {
			if seen[k.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate group %q", path, k.Name))
			}
			seen[k.Name] = true
		}
		seen = make(map[string]bool)
		for _, s := range gp.Solids {
			if seen[s.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate solid %q", path, s.Name))
			}
			seen[s.Name] = true
		}
		return true
	})
	return errors.Join(errs...)
}

// GroupCount is the number of solids under one top-level group.
type GroupCount struct {
	Name   string
	Solids int
}

// Summary tallies the solids of a scene.
type Summary struct {
	Groups []GroupCount
	Kinds  [KindsN]int
	Total  int

	// Animated is the number of solids with a per-frame mutator.
	Animated int
}

// Summarize counts the solids of root per top-level group and per kind.
func Summarize(root *Group) Summary {
	var sm Summary
	for _, k := range root.Groups {
		sm.Groups = append(sm.Groups, GroupCount{Name: k.Name, Solids: k.NumSolids()})
	}
	root.Walk(func(_ string, _ *Group, sd *Solid) bool {
		if sd == nil {
			return true
		}
		sm.Total++
		sm.Kinds[sd.Shape.Kind]++
		if sd.Anim != NoAnim {
			sm.Animated++
		}
		return true
	})
	slices.SortStableFunc(sm.Groups, func(a, b GroupCount) int {
		return b.Solids - a.Solids
	})
	return sm
}
