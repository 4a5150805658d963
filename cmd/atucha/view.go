// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/atucha-viz/atucha/plant/plantxyz"
)

// View opens a window showing the complex, animated in real time.
//
//cli:cmd -root
func View(c *Config) error {
	b := core.NewBody("atucha").SetTitle("Atucha II Nuclear Complex")
	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sc := se.SceneXYZ()
	if err := plantxyz.ConfigScene(sc, c.Camera); err != nil {
		return err
	}

	vw := &viewer{editor: se, scene: sc}
	vw.root, vw.anim = plantxyz.Mount(sc, sc, c.Build())

	var elapsed time.Duration
	se.Animate(func(a *core.Animation) {
		elapsed += frameDelta(a.Dt)
		vw.anim.Step(elapsed)
		sc.SetNeedsUpdate()
		se.NeedsRender()
	})

	if c.Watch {
		stop, err := watchConfig(ConfigFile, *c, vw.reload)
		if err != nil {
			return err
		}
		defer stop()
	}
	b.RunMainWindow()
	return nil
}

// frameDelta converts an animation step in milliseconds to a duration.
func frameDelta(dt float32) time.Duration {
	return time.Duration(float64(dt) * float64(time.Millisecond))
}

// viewer holds the mounted complex of a running window.
type viewer struct {
	editor *xyzcore.SceneEditor
	scene  *xyz.Scene
	root   *xyz.Group
	anim   *plantxyz.Animator
}

// reload rebuilds the complex from cfg and swaps it into the scene.
func (vw *viewer) reload(cfg *Config) {
	root := cfg.Build()
	vw.editor.AsyncLock()
	defer vw.editor.AsyncUnlock()
	vw.root, vw.anim = plantxyz.Remount(vw.scene, vw.scene, vw.root, root)
	vw.editor.NeedsRender()
}

// watchConfig calls reload with the new config whenever the config file
// is written. Flags given on the command line stay in effect underneath
// the file. Configs that fail to parse are logged and skipped.
func watchConfig(file string, base Config, reload func(cfg *Config)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", file, err)
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		w.Close()
		return nil, err
	}
	// editors often replace the file, so watch the directory
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", file, err)
	}
	slog.Info("watching config", "file", abs)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg := base
				if errors.Log(readConfig(abs, &cfg)) != nil {
					continue
				}
				slog.Info("config changed, rebuilding", "file", abs)
				reload(&cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return func() { w.Close() }, nil
}

// readConfig decodes a TOML config file over the values already in cfg.
func readConfig(file string, cfg *Config) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	return nil
}
