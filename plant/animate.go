// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import "math"

// Frame is the display state of an animated solid at one instant.
type Frame struct {

	// Opacity replaces the material opacity.
	Opacity float32

	// RotY is the rotation about Y in radians, valid if Rotates.
	RotY float32

	// Rotates is whether this animation drives rotation.
	Rotates bool
}

// RiverOpacity is the river shimmer opacity after t seconds, in [0.6, 0.8].
func RiverOpacity(t float64) float32 {
	return float32(0.7 + math.Sin(t*0.5)*0.1)
}

// SteamOpacity is the steam plume opacity after t seconds, in [0.2, 0.4].
func SteamOpacity(t float64) float32 {
	return float32(0.3 + math.Sin(t)*0.1)
}

// SteamRotation is the steam plume rotation about Y after t seconds, in radians.
func SteamRotation(t float64) float32 {
	return float32(t * 0.2)
}

// Frame returns the display state for t seconds of elapsed time.
// The bool is false for [NoAnim], in which case nothing should change.
func (a Anims) Frame(t float64) (Frame, bool) {
	switch a {
	case RiverShimmer:
		return Frame{Opacity: RiverOpacity(t)}, true
	case SteamPlume:
		return Frame{Opacity: SteamOpacity(t), RotY: SteamRotation(t), Rotates: true}, true
	}
	return Frame{}, false
}
