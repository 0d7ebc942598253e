package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sgostarter/i/l"

	"honnef.co/go/tween"
	"honnef.co/go/tween/internal/scene"
	"honnef.co/go/tween/palette"
)

const (
	trailFade   = 600 * time.Millisecond
	cursorStepX = 4
	cursorStepY = 2
)

var black = palette.MustHex("#000000")

type trailDot struct {
	pos   tween.Point
	color palette.Color
	at    tween.Instant
}

type viewer struct {
	screen tcell.Screen
	logger l.Wrapper
	scene  *scene.Scene

	marker tween.Animation[tween.Point, tween.Instant, tween.Span]
	colors tween.Animation[palette.Color, tween.Instant, tween.Span]
	cursor tween.Inertial[tween.Point, tween.Instant, tween.Span]
	trail  []trailDot

	width, height int
}

func newViewer(sc *scene.Scene, logger l.Wrapper) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	v := &viewer{
		screen: screen,
		logger: logger.WithFields(l.StringField(l.ClsKey, "viewer")),
		scene:  sc,
	}
	v.width, v.height = screen.Size()
	v.cursor = sc.Cursor(tween.Pt(float64(v.width/2), float64(v.height/2)))
	v.restart(tween.Now())
	return v, nil
}

func (v *viewer) restart(now tween.Instant) {
	v.marker = tween.Run[tween.Point, tween.Instant, tween.Span](v.scene.Timeline(), now)
	v.colors = tween.Run[palette.Color, tween.Instant, tween.Span](v.scene.ColorTimeline(), now)
	v.trail = v.trail[:0]
}

// moveCursor retargets the cursor by dx, dy cells, relative to where it is
// headed.
func (v *viewer) moveCursor(dx, dy float64, now tween.Instant) {
	target := v.cursor.Target().Add(tween.Pt(dx, dy))
	target.X = clamp(target.X, 0, float64(v.width-1))
	target.Y = clamp(target.Y, 0, float64(v.height-1))
	v.cursor = v.scene.MoveCursor(v.cursor, target, now)
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// handleInput returns false when the viewer should quit.
func (v *viewer) handleInput(ev tcell.Event, now tween.Instant) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.moveCursor(0, -cursorStepY, now)
		case tcell.KeyDown:
			v.moveCursor(0, cursorStepY, now)
		case tcell.KeyLeft:
			v.moveCursor(-cursorStepX, 0, now)
		case tcell.KeyRight:
			v.moveCursor(cursorStepX, 0, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				v.restart(now)
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			v.cursor = v.scene.MoveCursor(v.cursor, tween.Pt(float64(x), float64(y)), now)
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

// updateTrail records the marker's position at now and drops dots that have
// faded out.
func (v *viewer) updateTrail(pos tween.Point, color palette.Color, now tween.Instant) {
	cutoff := tween.SpanOf(trailFade)
	kept := v.trail[:0]
	for _, dot := range v.trail {
		if now.Since(dot.at).Less(cutoff) {
			kept = append(kept, dot)
		}
	}
	v.trail = append(kept, trailDot{pos: pos, color: color, at: now})
}

// fade returns the color of dot at now, darkening toward black as it ages.
func fade(dot trailDot, now tween.Instant) palette.Color {
	age := now.Since(dot.at).FractionOf(tween.SpanOf(trailFade))
	return dot.color.Mix(black, tween.CubicIn.Ease(age))
}

func styleOf(c palette.Color) tcell.Style {
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// cell returns the terminal cell containing pt.
func cell(pt tween.Point) (int, int) {
	return int(math.Round(pt.X)), int(math.Round(pt.Y))
}

func (v *viewer) set(pt tween.Point, r rune, style tcell.Style) {
	x, y := cell(pt)
	if x >= 0 && x < v.width && y >= 0 && y < v.height {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *viewer) draw(now tween.Instant) {
	v.screen.Clear()

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, pt := range v.scene.Path {
		v.set(pt, '+', dim)
	}

	pos := v.marker.Get(now)
	color := v.colors.Get(now)
	v.updateTrail(pos, color, now)
	for _, dot := range v.trail {
		v.set(dot.pos, '•', styleOf(fade(dot, now)))
	}
	v.set(pos, '●', styleOf(color))

	v.set(v.cursor.Get(now), '◆', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	status := fmt.Sprintf(" %s  depth %d  arrows/click: move  r: restart  q: quit ", color, v.cursor.Depth())
	for i, r := range status {
		if i >= v.width {
			break
		}
		v.screen.SetContent(i, v.height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}

	v.screen.Show()
}

// run plays the scene until the user quits and returns the number of frames
// drawn.
func (v *viewer) run(frame time.Duration) int {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(v.screen, eventChan, done)

	frames := 0
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return frames
			}
			if !v.handleInput(ev, tween.Now()) {
				return frames
			}

		case <-ticker.C:
			v.draw(tween.Now())
			frames++
		}
	}
}

// pollEvents forwards events from screen until the screen is finalized or
// done is closed, then closes events.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (v *viewer) cleanup() {
	v.screen.Fini()
	v.logger.WithFields(l.IntField("depth", v.cursor.Depth())).Debug("screen closed")
}
