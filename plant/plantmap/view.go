// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plantmap

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/atucha-viz/atucha/plant"
)

// Viewer shows a site plan on a terminal screen, with a cursor that
// reports which solid is under it.
type Viewer struct {
	Screen  tcell.Screen
	Records []plant.Record
	Bounds  Bounds

	grid             *Grid
	cursorX, cursorY int
}

// Show runs a [Viewer] on the terminal until the user quits with q, Esc
// or Ctrl-C, or ctx is done.
func Show(ctx context.Context, recs []plant.Record, bounds Bounds) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("plantmap: opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("plantmap: initializing terminal: %w", err)
	}
	vw := &Viewer{Screen: screen, Records: recs, Bounds: bounds}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()
	defer screen.Fini()
	vw.Draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			vw.grid = nil
			screen.Sync()
		case *tcell.EventKey:
			if !vw.HandleKey(ev) {
				return nil
			}
		}
		vw.Draw()
	}
}

// HandleKey moves the cursor for arrow keys. It returns false for the
// keys that quit.
func (vw *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		vw.cursorX--
	case tcell.KeyRight:
		vw.cursorX++
	case tcell.KeyUp:
		vw.cursorY--
	case tcell.KeyDown:
		vw.cursorY++
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	}
	return true
}

// Draw rasterizes the records to fit the screen, if the size changed,
// and draws the plan with a status line at the bottom.
func (vw *Viewer) Draw() {
	w, h := vw.Screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return
	}
	if vw.grid == nil || vw.grid.Cols != w || vw.grid.Rows != rows {
		vw.grid = Rasterize(vw.Records, w, rows, vw.Bounds)
	}
	vw.cursorX = min(max(vw.cursorX, 0), w-1)
	vw.cursorY = min(max(vw.cursorY, 0), rows-1)

	vw.Screen.Clear()
	for r := range rows {
		for c := range w {
			cl := vw.grid.At(c, r)
			st := tcell.StyleDefault
			if cl.Color != "" {
				st = st.Background(tcell.GetColor(cl.Color))
			}
			ch := ' '
			if c == vw.cursorX && r == vw.cursorY {
				ch = '+'
				st = st.Foreground(tcell.ColorRed).Bold(true)
			}
			vw.Screen.SetContent(c, r, ch, nil, st)
		}
	}
	under := vw.grid.At(vw.cursorX, vw.cursorY)
	status := fmt.Sprintf(" %s  [arrows move, q quits]", under.Path)
	if under.Path == "" {
		status = " open ground  [arrows move, q quits]"
	}
	for i, ch := range []rune(status) {
		if i >= w {
			break
		}
		vw.Screen.SetContent(i, rows, ch, nil, tcell.StyleDefault.Reverse(true))
	}
	vw.Screen.Show()
}
