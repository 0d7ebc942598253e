package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/tween"
	"honnef.co/go/tween/palette"
)

func TestUpdateTrail(t *testing.T) {
	start := tween.At(time.Unix(0, 0))
	red := palette.MustHex("#ff0000")

	var v viewer
	v.updateTrail(tween.Pt(0, 0), red, start)
	v.updateTrail(tween.Pt(1, 0), red, start.Advance(tween.SpanOf(trailFade/2)))
	assert.Len(t, v.trail, 2)

	v.updateTrail(tween.Pt(2, 0), red, start.Advance(tween.SpanOf(trailFade)))
	if assert.Len(t, v.trail, 2) {
		assert.Equal(t, tween.Pt(1, 0), v.trail[0].pos)
		assert.Equal(t, tween.Pt(2, 0), v.trail[1].pos)
	}
}

func TestFade(t *testing.T) {
	start := tween.At(time.Unix(0, 0))
	dot := trailDot{pos: tween.Pt(0, 0), color: palette.MustHex("#ff0000"), at: start}

	assert.Equal(t, "#ff0000", fade(dot, start).String())
	assert.Equal(t, "#000000", fade(dot, start.Advance(tween.SpanOf(trailFade))).String())
}

func TestCell(t *testing.T) {
	x, y := cell(tween.Pt(1.4, 2.6))
	assert.Equal(t, 1, x)
	assert.Equal(t, 3, y)
}

func TestPollEventsStopsAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event, 10)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok, "got %T, want *tcell.EventKey", ev)
		assert.Equal(t, 'q', key.Rune())
	case <-time.After(time.Second):
		t.Fatal("no event forwarded")
	}

	screen.Fini()
	select {
	case _, ok := <-events:
		assert.False(t, ok, "events should be closed after Fini")
	case <-time.After(time.Second):
		t.Fatal("pollEvents didn't return after Fini")
	}
}
