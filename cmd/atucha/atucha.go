// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command atucha shows the Atucha II nuclear power plant complex in 3D,
// and exports, maps or summarizes its scene.
package main

//go:generate core generate -add-types -add-funcs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/muesli/termenv"

	"github.com/atucha-viz/atucha/plant"
	"github.com/atucha-viz/atucha/plant/plantmap"
)

// ConfigFile is the config file read from the current directory, if present.
const ConfigFile = "atucha.toml"

// Config is the configuration for all atucha commands.
type Config struct {

	// Seed seeds the tree scatter. Zero seeds from the current time.
	Seed int64

	// Trees is the number of tree scatter draws; at most this many trees grow.
	Trees int `default:"150"`

	// Static leaves out the trees, so that every build is identical.
	Static bool

	// Camera is the initial camera view: default, aerial, river or gate.
	Camera string `default:"default"`

	// Watch reloads the config file and regrows the trees when it changes.
	Watch bool `cmd:"view"`

	// Format is the export format: json, toml or yaml.
	Format string `default:"json"`

	// Output is the export file. Empty writes to standard output.
	Output string `flag:"o,output"`

	// Input is a previously exported file to map instead of building the
	// complex. Its format is given by Format.
	Input string `cmd:"map"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("atucha", "Atucha II nuclear power plant complex in 3D.")
	opts.DefaultFiles = []string{ConfigFile}
	cli.Run(opts, &Config{}, View, Export, Map, Stats)
}

// Build returns the complex described by the config.
func (c *Config) Build() *plant.Group {
	if c.Static {
		return plant.Static()
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("scattering trees", "seed", seed, "draws", c.Trees)
	root := plant.Complex(plant.NewRand(seed), c.Trees)
	errors.Log(plant.Validate(root))
	return root
}

// Export writes the flattened records of the complex in the configured format.
func Export(c *Config) error {
	format, err := plant.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	root := c.Build()
	if c.Output == "" {
		return plant.Encode(os.Stdout, root, format)
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	if err := plant.Encode(f, root, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}
	slog.Info("exported", "file", c.Output, "format", format, "solids", root.NumSolids())
	return nil
}

// Map shows a top-down site plan of the complex in the terminal.
func Map(c *Config) error {
	recs, err := c.Records()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return plantmap.Show(ctx, recs, plantmap.SiteBounds)
}

// Records returns the records to map: those of the Input file if it is
// set, and otherwise those of a newly built complex.
func (c *Config) Records() ([]plant.Record, error) {
	if c.Input == "" {
		return plant.Flatten(c.Build()), nil
	}
	format, err := plant.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(c.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := plant.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.Input, err)
	}
	return doc.Records, nil
}

// Stats prints the number of solids per group and per kind.
func Stats(c *Config) error {
	WriteStats(os.Stdout, plant.Summarize(c.Build()))
	return nil
}

// WriteStats writes a summary as a table, styled if w is a terminal.
func WriteStats(w io.Writer, sm plant.Summary) {
	out := termenv.NewOutput(w)
	head := func(s string) string {
		return out.String(s).Bold().Underline().String()
	}
	fmt.Fprintln(w, head("group"))
	for _, gc := range sm.Groups {
		fmt.Fprintf(w, "  %-28s %5d\n", gc.Name, gc.Solids)
	}
	fmt.Fprintln(w, head("kind"))
	for k := range plant.KindsN {
		if sm.Kinds[k] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-28s %5d\n", k, sm.Kinds[k])
	}
	total := fmt.Sprintf("  %-28s %5d", "total", sm.Total)
	fmt.Fprintln(w, out.String(total).Foreground(out.Color("#4A90E2")).String())
	fmt.Fprintf(w, "  %-28s %5d\n", "animated", sm.Animated)
}
