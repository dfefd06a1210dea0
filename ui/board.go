// Package ui provides custom controls for tview to play Connect-4 in the terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termfour/config"
	"termfour/game"
	"termfour/msgcat"
)

const (
	// Each column is cellWidth wide and followed by a one-cell gap that belongs to no zone.
	cellWidth   = 3
	cellPitch   = cellWidth + 1
	boardMargin = 2
	headerRows  = 2 // column numbers + preview stone
)

type boardStyles struct {
	background tcell.Style
	slot       tcell.Style
	focus      tcell.Style
	stones     [3]tcell.Color // indexed by game.Stone
}

// BoardUI draws a game.Session and turns key presses and mouse input into drops.
type BoardUI struct {
	Box       *tview.Box
	session   *game.Session
	hint      *tview.TextView
	panel     *ScorePanel
	cfg       *config.Config
	msgs      *msgcat.Catalog
	log       *zap.Logger
	app       *tview.Application
	styles    boardStyles
	zones     game.FocusZones
	focusCol  int
	frozen    bool
	message   string
	focusMode bool
	timer     *time.Timer
	onTitle   func(string)
}

// NewBoard creates the board widget for session.
func NewBoard(app *tview.Application, c *config.Config, session *game.Session, msgs *msgcat.Catalog, hint *tview.TextView, log *zap.Logger) *BoardUI {
	board := &BoardUI{
		Box:      tview.NewBox(),
		session:  session,
		hint:     hint,
		msgs:     msgs,
		log:      log,
		app:      app,
		focusCol: -1,
		zones:    game.FocusZones{Pitch: cellPitch, Width: cellWidth},
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		x, _ := event.Position()
		column, ok := board.zones.ColumnAt(x)
		switch action {
		case tview.MouseMove:
			if !ok {
				column = -1
			}
			if column != board.focusCol {
				board.focusCol = column
				go func() {
					board.app.QueueUpdateDraw(func() {})
				}()
			}
		case tview.MouseLeftClick, tview.MouseLeftDoubleClick:
			// Quick clicks in different columns arrive as a double click.
			if ok {
				board.Drop(column)
			}
		}
		return action, event
	})
	board.refresh()
	return board
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	left := x + boardMargin
	top := y + headerRows
	g.zones.Origin = left
	boardW := game.Columns*cellPitch + 1
	board := g.session.Board()

	for row := y; row < top+game.Rows+1 && row < y+height; row++ {
		for col := left - 1; col < left-1+boardW && col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, g.styles.background)
		}
	}

	for c := 0; c < game.Columns; c++ {
		zoneX := g.zones.Left(c)
		bg := g.styles.background
		slot := g.styles.slot
		if c == g.focusCol && !g.frozen {
			bg = g.styles.focus
			slot = g.styles.focus.Foreground(g.styles.stones[game.Empty])
			for row := y; row < top+game.Rows; row++ {
				for dx := 0; dx < cellWidth; dx++ {
					screen.SetContent(zoneX+dx, row, ' ', nil, bg)
				}
			}
		}

		screen.SetContent(zoneX+1, y, rune('1'+c), nil, bg.Foreground(tcell.ColorGray))
		if c == g.focusCol && !g.frozen && g.cfg.Theme.ShowPreview {
			stone := g.session.Current()
			screen.SetContent(zoneX+1, y+1, g.cfg.Theme.Symbols.Stone, nil, bg.Foreground(g.styles.stones[stone]))
		}

		// Row 0 is the bottom of the column, drawn last.
		for r := 0; r < game.Rows; r++ {
			screenY := top + game.Rows - 1 - r
			stone := board.Occupant(c, r)
			if stone == game.Empty {
				screen.SetContent(zoneX+1, screenY, g.cfg.Theme.Symbols.Slot, nil, slot)
				continue
			}
			screen.SetContent(zoneX+1, screenY, g.cfg.Theme.Symbols.Stone, nil, bg.Foreground(g.styles.stones[stone]))
		}
	}
	return x, y, boardW + boardMargin, headerRows + game.Rows + 1
}

// Drop plays the current player's stone into column. Input is ignored while the
// board is frozen after a round.
func (g *BoardUI) Drop(column int) {
	if g.frozen {
		return
	}
	out, err := g.session.Play(column)
	if err != nil {
		g.log.Warn("drop ignored", zap.Int("column", column), zap.Error(err))
		return
	}
	g.focusCol = column
	switch out.Kind {
	case game.Placed:
		g.message = ""
	case game.ColumnFull:
		g.message = g.msgs.Text("board.column_full", nil)
	case game.Win:
		g.message = g.msgs.Text("board.win", g.playerData(out.Player))
		g.freeze()
	case game.Draw:
		g.message = g.msgs.Text("board.draw", nil)
		g.freeze()
	}
	g.refresh()
}

// DropAtFocus drops into the focused column, if any.
func (g *BoardUI) DropAtFocus() {
	if g.focusCol < 0 {
		return
	}
	g.Drop(g.focusCol)
}

// MoveFocus shifts the focused column by delta, wrapping at the edges.
func (g *BoardUI) MoveFocus(delta int) {
	if g.focusCol < 0 {
		g.focusCol = game.Columns / 2
		return
	}
	g.focusCol = (g.focusCol + delta + game.Columns) % game.Columns
}

// Reset clears the board on request. Ignored while frozen.
func (g *BoardUI) Reset() {
	if g.frozen {
		return
	}
	g.session.Reset()
	g.message = g.msgs.Text("board.reset", nil)
	g.refresh()
}

// freeze locks the board and starts the next round after the configured delay.
// The callback runs on the event loop.
func (g *BoardUI) freeze() {
	g.frozen = true
	g.timer = time.AfterFunc(g.cfg.Freeze(), func() {
		g.app.QueueUpdateDraw(func() {
			g.session.NewRound()
			g.frozen = false
			g.message = ""
			g.refresh()
		})
	})
}

// Close stops a pending round restart.
func (g *BoardUI) Close() {
	if g.timer != nil {
		g.timer.Stop()
	}
}

// IsFrozen returns true between the end of a round and the start of the next.
func (g *BoardUI) IsFrozen() bool {
	return g.frozen
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// SetTitleFunc registers a callback that receives the score line after every change.
func (g *BoardUI) SetTitleFunc(f func(score string)) {
	g.onTitle = f
	g.refresh()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.cfg = c
	bg := hexColor(c.Theme.Colors.Background)
	g.styles = boardStyles{
		background: tcell.StyleDefault.Background(bg),
		slot:       tcell.StyleDefault.Background(bg).Foreground(hexColor(c.Theme.Colors.Slot)),
		focus:      tcell.StyleDefault.Background(hexColor(c.Theme.Colors.Focus)),
		stones: [3]tcell.Color{
			hexColor(c.Theme.Colors.Slot),
			hexColor(c.Theme.Colors.PlayerA),
			hexColor(c.Theme.Colors.PlayerB),
		},
	}
	g.session.SetNames(game.Names{A: c.Players.A, B: c.Players.B})
	g.refresh()
}

func (g *BoardUI) refresh() {
	if g.panel != nil {
		g.panel.Refresh()
	}
	if g.onTitle != nil {
		g.onTitle(g.session.ScoreLine())
	}
	g.refreshHint()
}

func (g *BoardUI) refreshHint() {
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine string
	switch {
	case g.frozen:
		statusLine = fmt.Sprintf("  %s  %s", g.message, g.msgs.Text("board.frozen", nil))
	case g.message != "":
		statusLine = fmt.Sprintf("  %s  %s", g.msgs.Text("board.turn", g.playerData(g.session.Current())), g.message)
	default:
		statusLine = "  " + g.msgs.Text("board.turn", g.playerData(g.session.Current()))
	}
	controls := "  " + g.msgs.Text("board.controls", nil) + "   f focus"
	g.hint.SetText(strings.Join([]string{statusLine, controls}, "\n"))
}

// playerData is the template data for messages that name a player.
func (g *BoardUI) playerData(player game.Stone) map[string]any {
	return map[string]any{
		"Name":  tview.Escape(g.session.Name(player)),
		"Stone": g.stoneTag(player),
	}
}

// stoneTag is the stone symbol wrapped in tview color tags.
func (g *BoardUI) stoneTag(player game.Stone) string {
	return fmt.Sprintf("[#%06x]%c[-]", g.styles.stones[player].Hex(), g.cfg.Theme.Symbols.Stone)
}

// hexColor converts a validated "#rrggbb" config value into a tcell color.
func hexColor(s string) tcell.Color {
	v, err := config.ParseHexColor(s)
	if err != nil {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(v)
}
