// Package render draws published snapshots onto a tcell screen
package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hook-miner/component"
	"github.com/lixenwraith/hook-miner/engine"
	"github.com/lixenwraith/hook-miner/event"
	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/vmath"
)

// Renderer draws the game frame
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	base   tcell.Style
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Observe implements engine.Observer
func (r *Renderer) Observe(snap *engine.Snapshot, _ []event.GameEvent) {
	r.Draw(snap)
}

// Draw renders one full frame
func (r *Renderer) Draw(snap *engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cols, rows := r.screen.Size()
	vp := NewCanvasViewport(cols, rows, snap.Width, snap.Height)

	r.screen.Fill(' ', r.base)
	r.drawField(vp)
	r.drawHUD(snap, cols)

	switch snap.Phase {
	case engine.PhasePlaying, engine.PhaseEventProcessing:
		r.drawItems(vp, snap)
		r.drawHook(vp, snap)
	}

	r.drawOverlay(snap, cols, rows)
	r.screen.Show()
}

func (r *Renderer) drawField(vp Viewport) {
	_, skyY := vp.ToCell(vmath.Vec2{Y: parameter.SkyLine})
	sky := r.base.Background(RgbSky)
	ground := r.base.Background(RgbGround)
	for y := HUDRows; y < vp.Rows+HUDRows; y++ {
		style := ground
		if y < skyY {
			style = sky
		}
		for x := 0; x < vp.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawHUD(snap *engine.Snapshot, cols int) {
	timeBg := RgbTimeBg
	if snap.TimeLeft < 10 {
		timeBg = RgbTimeLowBg
	}
	segments := []struct {
		text string
		bg   tcell.Color
	}{
		{fmt.Sprintf(" LEVEL %d ", snap.Level), RgbLevelBg},
		{fmt.Sprintf(" $%d ", int(snap.Score)), RgbScoreBg},
		{fmt.Sprintf(" GOAL $%d ", snap.Target), RgbTargetBg},
		{fmt.Sprintf(" %ds ", int(snap.TimeLeft+0.999)), timeBg},
	}

	x := 0
	for _, seg := range segments {
		style := tcell.StyleDefault.Foreground(RgbStatusText).Background(seg.bg)
		x = r.drawText(x, 0, seg.text, style, cols)
		x++
	}
}

func (r *Renderer) drawItems(vp Viewport, snap *engine.Snapshot) {
	for _, it := range snap.Items {
		if it.Caught {
			continue
		}
		r.drawItem(vp, it, it.Pos)
	}
}

func (r *Renderer) drawItem(vp Viewport, it component.Item, at vmath.Vec2) {
	glyph := component.Lookup(it.Kind).Glyph
	style := r.base.Foreground(ItemColor(it.Kind)).Bold(true)

	// Large items span a cell block proportional to their radius
	cx, cy := vp.ToCell(at)
	rx := int(it.Radius / vp.canvasW * float64(vp.Cols))
	ry := int(it.Radius / vp.canvasH * float64(vp.Rows))
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if vp.Contains(x, y) {
				r.screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}
}

func (r *Renderer) drawHook(vp Viewport, snap *engine.Snapshot) {
	rope := r.base.Foreground(RgbRope)
	vp.Line(snap.Hook.Origin, snap.Hook.Tip, func(x, y int) {
		if vp.Contains(x, y) {
			r.screen.SetContent(x, y, '.', nil, rope)
		}
	})

	if carried, ok := snap.Carried(); ok {
		r.drawItem(vp, carried, vmath.Vec2{X: snap.Hook.Tip.X, Y: snap.Hook.Tip.Y + carried.Radius})
	}

	if x, y := vp.ToCell(snap.Hook.Tip); vp.Contains(x, y) {
		r.screen.SetContent(x, y, 'V', nil, r.base.Foreground(RgbHook).Bold(true))
	}
	if x, y := vp.ToCell(snap.Hook.Origin); vp.Contains(x, y-1) {
		r.screen.SetContent(x, y-1, 'M', nil, r.base.Foreground(RgbMiner).Bold(true))
	}
}

func (r *Renderer) drawOverlay(snap *engine.Snapshot, cols, rows int) {
	var title string
	var lines []string

	switch snap.Phase {
	case engine.PhaseMenu:
		title = "HOOK MINER"
		lines = []string{"Swing the hook, grab the gold, beat the clock.", "", "[Enter] start   [Space/Down] shoot   [Esc] quit"}
	case engine.PhaseSkillSelect:
		title = fmt.Sprintf("LEVEL %d  -  CHOOSE A SKILL", snap.Level)
		for i, s := range snap.Offers {
			lines = append(lines, fmt.Sprintf("[%d] %s: %s", i+1, s.Name, s.Description))
		}
	case engine.PhaseEventProcessing:
		title = "MYSTERY STONE"
		if snap.MysteryPending {
			lines = []string{"The stone whispers..."}
		} else {
			lines = []string{snap.Message}
		}
	case engine.PhaseLevelComplete:
		title = "LEVEL COMPLETE"
		lines = []string{fmt.Sprintf("Score $%d of $%d", int(snap.Score), snap.Target), "", "[Enter] next level"}
	case engine.PhaseGameOver:
		title = "GAME OVER"
		lines = []string{fmt.Sprintf("Score $%d, needed $%d", int(snap.Score), snap.Target), "", "[Enter] play again"}
	default:
		return
	}

	width := len(title)
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	height := len(lines) + 4
	left := max((cols-width)/2, 0)
	top := max((rows-height)/2, HUDRows)

	box := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayText)
	for y := top; y < top+height && y < rows; y++ {
		for x := left; x < left+width && x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, box)
		}
	}

	r.drawText(left+(width-len(title))/2, top+1, title, box.Foreground(RgbOverlayTitle).Bold(true), cols)
	for i, l := range lines {
		r.drawText(left+2, top+3+i, l, box, cols)
	}
}

// drawText writes s starting at x and returns the column after it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style, cols int) int {
	for _, ch := range strings.ToValidUTF8(s, "?") {
		if x >= cols {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
