package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/floatingskies/mark-mark/internal/input/key"
	"github.com/floatingskies/mark-mark/internal/input/mode"
)

// timeoutPoll is how often pending keys are checked against the timeout.
const timeoutPoll = 50 * time.Millisecond

// runTerminal edits the host text in a terminal until a quit command or
// Ctrl-Q. Engine calls all happen on this goroutine.
func runTerminal(h *host) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(timeoutPoll)
	defer ticker.Stop()

	status := ""
	draw(screen, h, status)
	for !h.quit {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlQ {
					return nil
				}
				if a := h.engine.HandleKey(key.FromTcell(ev)); a != nil {
					h.apply(*a)
					status = a.JSON()
				}
			}
		case <-ticker.C:
			if !h.engine.Expired() {
				continue
			}
			h.engine.Cancel()
		}
		draw(screen, h, status)
	}
	return nil
}

// draw renders the text, the primary cursor and a status line.
func draw(s tcell.Screen, h *host, status string) {
	s.Clear()
	width, height := s.Size()
	if height < 2 {
		s.Show()
		return
	}

	e := h.engine
	cur := h.cursor()
	cx, cy := 0, 0
	offset := 0
	for y, line := range strings.Split(h.text, "\n") {
		if y >= height-1 {
			break
		}
		x := 0
		g := uniseg.NewGraphemes(line)
		for g.Next() {
			start, _ := g.Positions()
			if offset+start == cur {
				cx, cy = x, y
			}
			runes := g.Runes()
			if x < width {
				s.SetContent(x, y, runes[0], runes[1:], tcell.StyleDefault)
			}
			x += max(1, g.Width())
		}
		if offset+len(line) == cur {
			cx, cy = x, y
		}
		offset += len(line) + 1
	}

	bar := tcell.StyleDefault.Reverse(true)
	left := e.Mode().DisplayName()
	if e.Mode() == mode.Command {
		cl := e.CommandLine()
		left = string(cl.Prompt()) + cl.Buffer()
		cx, cy = cl.Column()+1, height-1
	} else if p := e.Pending(); !p.IsEmpty() {
		left += "  " + p.String()
	}
	line := left
	if status != "" {
		line += "  " + status
	}
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		s.SetContent(x, height-1, r, nil, bar)
		x++
	}
	for ; x < width; x++ {
		s.SetContent(x, height-1, ' ', nil, bar)
	}

	s.ShowCursor(cx, cy)
	s.Show()
}
