package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deflect/core"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/parameter"
)

// Renderer draws the full frame: border, net, score, paddles, balls
// Full redraw per frame; tcell diffs cells internally
type Renderer struct {
	screen   tcell.Screen
	viewport *Viewport
}

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNet     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleFirst   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleSecond  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
)

func NewRenderer(screen tcell.Screen, viewport *Viewport) *Renderer {
	return &Renderer{screen: screen, viewport: viewport}
}

// Resize updates the viewport for new terminal dimensions
func (r *Renderer) Resize(w, h int) {
	r.viewport.Resize(w, h)
}

// Draw renders one frame from world state
func (r *Renderer) Draw(w *engine.World) {
	r.screen.Clear()

	r.drawBorder()
	r.drawNet()
	r.drawScore(w.Resources.Score)
	r.drawPaddles(w)
	r.drawBalls(w)

	r.screen.Show()
}

func (r *Renderer) drawBorder() {
	ox, oy, cw, ch := r.viewport.Bounds()
	for x := ox - 1; x <= ox+cw; x++ {
		r.screen.SetContent(x, oy-1, tcell.RuneHLine, nil, styleBorder)
		r.screen.SetContent(x, oy+ch, tcell.RuneHLine, nil, styleBorder)
	}
	for y := oy - 1; y <= oy+ch; y++ {
		r.screen.SetContent(ox-1, y, tcell.RuneVLine, nil, styleBorder)
		r.screen.SetContent(ox+cw, y, tcell.RuneVLine, nil, styleBorder)
	}
	r.screen.SetContent(ox-1, oy-1, tcell.RuneULCorner, nil, styleBorder)
	r.screen.SetContent(ox+cw, oy-1, tcell.RuneURCorner, nil, styleBorder)
	r.screen.SetContent(ox-1, oy+ch, tcell.RuneLLCorner, nil, styleBorder)
	r.screen.SetContent(ox+cw, oy+ch, tcell.RuneLRCorner, nil, styleBorder)
}

func (r *Renderer) drawNet() {
	ox, oy, cw, ch := r.viewport.Bounds()
	x := ox + cw/2
	for y := oy; y < oy+ch; y += 2 {
		r.screen.SetContent(x, y, '┆', nil, styleNet)
	}
}

func (r *Renderer) drawScore(score *engine.ScoreResource) {
	left := fmt.Sprintf("P1 %d", score.FirstPlayer)
	right := fmt.Sprintf("%d P2", score.SecondPlayer)
	sep := " : "

	total := len(left) + len(sep) + len(right)
	x := (r.viewport.screenW - total) / 2
	x = r.drawText(x, 0, left, styleFirst)
	x = r.drawText(x, 0, sep, styleDefault)
	r.drawText(x, 0, right, styleSecond)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *Renderer) drawPaddles(w *engine.World) {
	com := w.Components
	for _, e := range com.Paddle.Entities() {
		paddle, ok := com.Paddle.Get(e)
		if !ok {
			continue
		}
		kin, ok := com.Kinetic.Get(e)
		if !ok {
			continue
		}

		style := styleSecond
		if paddle.FirstPlayer {
			style = styleFirst
		}

		x, y := r.viewport.WorldToScreen(kin.Pos)
		height := r.viewport.CellsPerWorldY(parameter.PaddleHeight)
		for i := -height / 2; i <= height/2; i++ {
			r.screen.SetContent(x, y+i, tcell.RuneBlock, nil, style)
		}
	}
}

func (r *Renderer) drawBalls(w *engine.World) {
	com := w.Components
	for _, e := range com.Ball.Entities() {
		ball, ok := com.Ball.Get(e)
		if !ok {
			continue
		}
		kin, ok := com.Kinetic.Get(e)
		if !ok {
			continue
		}

		x, y := r.viewport.WorldToScreen(kin.Pos)
		r.screen.SetContent(x, y, ballRune(ball.Kind), nil, ballStyle(ball.Kind))
	}
}

func ballRune(kind core.BallKind) rune {
	if kind.IsBonus() {
		return '•'
	}
	return '●'
}

func ballStyle(kind core.BallKind) tcell.Style {
	switch kind {
	case core.BallGold:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case core.BallMulti:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case core.BallSwitchSide:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}
