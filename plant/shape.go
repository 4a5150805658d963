// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"fmt"
	"math"
)

// Shape is the geometry of a [Solid]: a [Kinds] tag plus the dimensional
// parameters that kind uses. Parameters a kind does not use stay zero.
type Shape struct {

	// Kind selects which of the fields below are meaningful.
	Kind Kinds

	// Width, Height and Depth size a Box. Plane uses Width and Height,
	// Cylinder uses Height.
	Width  float32
	Height float32
	Depth  float32

	// Radius is the Sphere radius or the Torus ring radius.
	Radius float32

	// TopRadius and BottomRadius shape a Cylinder.
	TopRadius    float32
	BottomRadius float32

	// Tube is the Torus tube radius.
	Tube float32

	// Segments is the radial segment count of a Cylinder or Torus,
	// or the width segment count of a Sphere.
	Segments int

	// SubSegments is the Sphere height segment count or the Torus
	// tubular segment count.
	SubSegments int

	// Sector restricts a Sphere to part of its surface. Zero is a full sphere.
	Sector Sector

	// Text and FontSize describe a Label. Labels are centered on their position.
	Text     string
	FontSize float32
}

// Sector is a spherical sector, in radians: Phi sweeps around Y,
// Theta sweeps down from the +Y pole.
type Sector struct {
	PhiStart    float32
	PhiLength   float32
	ThetaStart  float32
	ThetaLength float32
}

// IsZero returns whether the sector is unset, meaning the full sphere.
func (s Sector) IsZero() bool {
	return s == Sector{}
}

// Hemisphere is the upper half of a sphere.
var Hemisphere = Sector{PhiLength: 2 * math.Pi, ThetaLength: math.Pi / 2}

// NewBox returns a Box shape.
func NewBox(width, height, depth float32) Shape {
	return Shape{Kind: Box, Width: width, Height: height, Depth: depth}
}

// NewCylinder returns a Cylinder shape with the given top and bottom radii.
func NewCylinder(top, bottom, height float32, segs int) Shape {
	return Shape{Kind: Cylinder, TopRadius: top, BottomRadius: bottom, Height: height, Segments: segs}
}

// NewSphere returns a full Sphere shape.
func NewSphere(radius float32, widthSegs, heightSegs int) Shape {
	return Shape{Kind: Sphere, Radius: radius, Segments: widthSegs, SubSegments: heightSegs}
}

// NewPlane returns a Plane shape.
func NewPlane(width, height float32) Shape {
	return Shape{Kind: Plane, Width: width, Height: height}
}

// NewTorus returns a Torus shape.
func NewTorus(radius, tube float32, radialSegs, tubularSegs int) Shape {
	return Shape{Kind: Torus, Radius: radius, Tube: tube, Segments: radialSegs, SubSegments: tubularSegs}
}

// NewLabel returns a Label shape.
func NewLabel(text string, fontSize float32) Shape {
	return Shape{Kind: Label, Text: text, FontSize: fontSize}
}

// WithSector returns a copy of the shape restricted to the given sector.
func (s Shape) WithSector(sec Sector) Shape {
	s.Sector = sec
	return s
}

// Key returns a string that is identical for shapes with identical geometry,
// suitable for sharing one mesh among many solids.
func (s Shape) Key() string {
	switch s.Kind {
	case Box:
		return fmt.Sprintf("box-%g-%g-%g", s.Width, s.Height, s.Depth)
	case Cylinder:
		return fmt.Sprintf("cyl-%g-%g-%g-%d", s.TopRadius, s.BottomRadius, s.Height, s.Segments)
	case Sphere:
		if s.Sector.IsZero() {
			return fmt.Sprintf("sph-%g-%d-%d", s.Radius, s.Segments, s.SubSegments)
		}
		sc := s.Sector
		return fmt.Sprintf("sph-%g-%d-%d-%g-%g-%g-%g", s.Radius, s.Segments, s.SubSegments,
			sc.PhiStart, sc.PhiLength, sc.ThetaStart, sc.ThetaLength)
	case Plane:
		return fmt.Sprintf("plane-%g-%g", s.Width, s.Height)
	case Torus:
		return fmt.Sprintf("torus-%g-%g-%d-%d", s.Radius, s.Tube, s.Segments, s.SubSegments)
	case Label:
		return "label"
	}
	return s.Kind.String()
}

// Extent returns the half-extents of the shape's local bounding box.
// Labels have no extent.
func (s Shape) Extent() (x, y, z float32) {
	switch s.Kind {
	case Box:
		return s.Width / 2, s.Height / 2, s.Depth / 2
	case Cylinder:
		r := max(s.TopRadius, s.BottomRadius)
		return r, s.Height / 2, r
	case Sphere:
		return s.Radius, s.Radius, s.Radius
	case Plane:
		return s.Width / 2, 0, s.Height / 2
	case Torus:
		r := s.Radius + s.Tube
		return r, s.Tube, r
	}
	return 0, 0, 0
}
