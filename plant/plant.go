// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plant describes the Atucha II nuclear power plant complex as a
// tree of primitive shape descriptors. The descriptors carry no rendering
// state: package plantxyz mounts them on an xyz.Scene, package plantmap
// rasterizes them into a top-down map, and [Encode] writes them out as
// flat records.
//
// All builders are pure functions of their arguments. Only the vegetation
// scatter draws from a random source, and only at construction time.
package plant

//go:generate core generate

// Kinds are the kinds of primitive a [Shape] can describe.
type Kinds int32 //enums:enum

const (
	// Box is an axis-aligned box of Width x Height x Depth.
	Box Kinds = iota

	// Cylinder is a (possibly tapered) cylinder along the Y axis.
	Cylinder

	// Sphere is a sphere, or a sector of one.
	Sphere

	// Plane is a flat rectangle of Width x Height.
	Plane

	// Torus is a ring of Radius with a tube of Tube radius.
	Torus

	// Label is a text label facing the viewer.
	Label
)

// Shadings are the lighting models a [Material] can use.
type Shadings int32 //enums:enum

const (
	// Lambert is diffuse-only shading with no specular highlight.
	Lambert Shadings = iota

	// Phong adds a specular highlight to diffuse shading.
	Phong

	// Basic is unlit: the color is shown as-is regardless of lights.
	Basic
)

// Anims name the per-frame mutator, if any, that drives a [Solid].
type Anims int32 //enums:enum

const (
	// NoAnim is a static solid.
	NoAnim Anims = iota

	// RiverShimmer oscillates opacity in [0.6, 0.8].
	RiverShimmer

	// SteamPlume spins about Y and oscillates opacity in [0.2, 0.4].
	SteamPlume
)
