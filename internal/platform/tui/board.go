package tui

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Rows reserved around the board.
const (
	hudRows    = 1
	helpRows   = 1
	borderSize = 2
)

const (
	snakeRune    = '█'
	headRune     = '▓'
	foodRune     = '█'
	obstacleRune = '▒'
)

// Layout maps grid cells onto terminal cells.
type Layout struct {
	CellSize  int // terminal rows per grid cell
	CellWidth int // columns per terminal row unit, compensates for tall glyphs
}

func (l Layout) normalized() Layout {
	l.CellSize = max(l.CellSize, 1)
	l.CellWidth = max(l.CellWidth, 1)
	return l
}

// Grid computes the playable grid for a terminal of the given size.
func (l Layout) Grid(screenW, screenH int) game.Grid {
	l = l.normalized()
	boardW := (screenW - borderSize) / l.CellWidth
	boardH := screenH - hudRows - helpRows - borderSize
	return game.ComputeGrid(boardW, boardH, l.CellSize)
}

func (l Layout) cols() int { return l.CellSize * l.CellWidth }

// drawBoard renders a snapshot into the screen buffer.
func drawBoard(s *core.Screen, snap game.Snapshot, l Layout, lastErr error) {
	l = l.normalized()
	s.Clear()
	drawHUD(s, snap)

	if snap.Grid.Empty() || errors.Is(lastErr, game.ErrGridTooSmall) {
		s.DrawTextCentered(s.Height()/2, "Window too small - enlarge the terminal", core.ColorYellow)
		return
	}

	boxW := snap.Grid.Width*l.cols() + borderSize
	boxH := snap.Grid.Height*l.CellSize + borderSize
	x0 := max((s.Width()-boxW)/2, 0)
	y0 := hudRows
	s.DrawBox(x0, y0, boxW, boxH, core.ColorGray)

	fill := func(c game.Cell, r rune, color core.Color) {
		if !snap.Grid.Contains(c) {
			return
		}
		px := x0 + 1 + c.X*l.cols()
		py := y0 + 1 + c.Y*l.CellSize
		for dy := range l.CellSize {
			for dx := range l.cols() {
				s.SetCell(px+dx, py+dy, r, color)
			}
		}
	}

	if snap.Status != game.StatusIdle {
		for _, o := range snap.Obstacles {
			fill(o, obstacleRune, core.ColorGray)
		}
		fill(snap.Food, foodRune, core.ColorBrightRed)
		for i := len(snap.Snake) - 1; i >= 0; i-- {
			r := snakeRune
			if i == 0 {
				r = headRune
			}
			fill(snap.Snake[i], r, snap.Color)
		}
	}

	mid := y0 + boxH/2
	switch snap.Status {
	case game.StatusIdle:
		drawBanner(s, x0, boxW, mid, "Press Enter to start", core.ColorBrightWhite)
	case game.StatusPaused:
		drawBanner(s, x0, boxW, mid, "PAUSED - p to resume", core.ColorBrightYellow)
	case game.StatusOver:
		drawBanner(s, x0, boxW, mid, fmt.Sprintf("GAME OVER - score %d", snap.Score), core.ColorBrightRed)
		drawBanner(s, x0, boxW, mid+1, "Enter to play again", core.ColorBrightWhite)
		if errors.Is(lastErr, game.ErrPlacementExhausted) {
			drawBanner(s, x0, boxW, mid+2, "The board is full", core.ColorYellow)
		}
	}
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	s.DrawText(1, 0, "SNAKE", core.ColorBrightGreen)
	s.DrawText(8, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	s.DrawText(21, 0, fmt.Sprintf("Difficulty: %s", snap.Difficulty), core.ColorCyan)
	status := snap.Status.String()
	s.DrawText(s.Width()-len(status)-1, 0, status, core.ColorGray)
}

// drawBanner centers text inside the box spanning [x0, x0+w) with one space of padding.
func drawBanner(s *core.Screen, x0, w, y int, text string, c core.Color) {
	text = " " + text + " "
	n := len([]rune(text))
	s.DrawText(x0+max((w-n)/2, 0), y, text, c)
}
