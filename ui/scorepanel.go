package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termfour/game"
	"termfour/msgcat"
)

// ScorePanel displays the score and the player to move alongside the board.
type ScorePanel struct {
	box   *tview.TextView
	board *BoardUI
	msgs  *msgcat.Catalog
}

// NewScorePanel creates a score panel for board.
func NewScorePanel(board *BoardUI, msgs *msgcat.Catalog) *ScorePanel {
	panel := &ScorePanel{
		box:   tview.NewTextView(),
		board: board,
		msgs:  msgs,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *ScorePanel) Box() *tview.TextView {
	return p.box
}

// Refresh updates the panel text.
func (p *ScorePanel) Refresh() {
	s := p.board.session
	score := s.Score()

	text := fmt.Sprintf("[white::b]%s[-:-:-]\n", p.msgs.Text("panel.heading", nil))
	text += "[dimgray]──────────────────────[-:-:-]\n"

	for _, player := range []game.Stone{game.PlayerA, game.PlayerB} {
		marker := " "
		if s.Phase() == game.AwaitingMove && s.Current() == player {
			marker = "[white]>[-]"
		}
		line := p.msgs.Text("panel.line", map[string]any{
			"Stone": p.board.stoneTag(player),
			"Name":  tview.Escape(s.Name(player)),
			"Wins":  score.Of(player),
		})
		text += fmt.Sprintf("%s %s\n", marker, line)
	}

	text += "\n[dimgray]" + p.msgs.Text("panel.moves", map[string]any{"Moves": s.Board().Moves()}) + "[-]\n"
	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// RebuildNormalLayout restores the normal game layout with board, score panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	panel := NewScorePanel(board, board.msgs)
	board.panel = panel
	panel.Refresh()

	// Horizontal flex: board | score panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(panel.Box(), 26, 0, false)

	// Vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()
	board.panel = nil

	boardWidth := game.Columns*cellPitch + 1 + boardMargin
	boardHeight := headerRows + game.Rows + 1

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
