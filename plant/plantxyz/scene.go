// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plantxyz

import (
	"fmt"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// Cameras are the saved camera views, by name. "default" is restored by
// the scene editor reset button.
var Cameras = map[string]struct{ Pos, Target math32.Vector3 }{
	"default": {math32.Vec3(300, 220, 420), math32.Vec3(0, 20, 0)},
	"aerial":  {math32.Vec3(0, 650, 1), math32.Vec3(0, 0, 0)},
	"river":   {math32.Vec3(-60, 30, 420), math32.Vec3(0, 30, 0)},
	"gate":    {math32.Vec3(0, 40, -320), math32.Vec3(0, 30, 0)},
}

// CameraNames returns the sorted names of [Cameras].
func CameraNames() []string {
	nms := make([]string, 0, len(Cameras))
	for nm := range Cameras {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// ConfigScene sets the background and lights for an outdoor daytime scene
// and saves all [Cameras] on sc, ending on the named one.
func ConfigScene(sc *xyz.Scene, camera string) error {
	cam, ok := Cameras[camera]
	if !ok {
		return fmt.Errorf("plantxyz: unknown camera %q, want one of %v", camera, CameraNames())
	}
	sc.Background = colors.Uniform(colors.FromRGB(135, 206, 235))
	xyz.NewAmbient(sc, "ambient", 0.4, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "sun", 1, xyz.DirectSun)
	dir.Pos.Set(100, 200, 100)

	sc.Camera.Far = 4000
	for _, nm := range CameraNames() {
		c := Cameras[nm]
		sc.Camera.Pose.Pos = c.Pos
		sc.Camera.LookAt(c.Target, math32.Vec3(0, 1, 0))
		sc.SaveCamera(nm)
	}
	sc.Camera.Pose.Pos = cam.Pos
	sc.Camera.LookAt(cam.Target, math32.Vec3(0, 1, 0))
	return nil
}
