package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termfour/config"
	"termfour/game"
	"termfour/msgcat"
)

// ColorConfigUI lets each player pick a stone color, with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	msgs      *msgcat.Catalog
	log       *zap.Logger
	onDone    func()

	status    *tview.TextView

	// Colors under selection, applied to cfg when confirmed.
	selected   [3]string
	editing    game.Stone
	rebuilding bool
}

var stoneColors = []struct {
	hex  string
	name string
}{
	{"#E95379", "Pink"},
	{"#27D796", "Teal"},
	{"#F43E5C", "Red"},
	{"#FFD866", "Yellow"},
	{"#FAB795", "Peach"},
	{"#F09383", "Coral"},
	{"#B877DB", "Purple"},
	{"#25B2BC", "Cyan"},
	{"#3DB4F2", "Blue"},
	{"#A6E22E", "Lime"},
	{"#E6E6E6", "White"},
}

// NewColorConfig creates the stone color screen. onDone runs after the second player's
// color is confirmed.
func NewColorConfig(cfg *config.Config, msgs *msgcat.Catalog, log *zap.Logger, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:     cfg,
		msgs:    msgs,
		log:     log,
		onDone:  onDone,
		editing: game.PlayerA,
	}
	cc.selected[game.PlayerA] = cfg.Theme.Colors.PlayerA
	cc.selected[game.PlayerB] = cfg.Theme.Colors.PlayerB

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetMainTextColor(MenuColors.Label)
	cc.colorList.SetSelectedBackgroundColor(MenuColors.ButtonBG)
	cc.populateColorList()

	// The list reports the first item as changed while it is refilled.
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.rebuilding || index < 0 || index >= len(stoneColors) {
			return
		}
		cc.selected[cc.editing] = stoneColors[index].hex
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.choose(index)
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(msgs.Text("colors.preview", nil))
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.status = tview.NewTextView()
	cc.status.SetTextColor(tcell.ColorRed)

	row := tview.NewFlex().
		AddItem(cc.colorList, 44, 0, true).
		AddItem(cc.preview, 0, 1, false)
	cc.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(row, 0, 1, true).
		AddItem(cc.status, 1, 0, false)

	return cc
}

// choose confirms the color at index for the player being edited. Confirming the first
// player moves on to the second; confirming the second applies both and closes the screen.
// A rejected pair keeps the screen open with the reason shown.
func (cc *ColorConfigUI) choose(index int) {
	if index < 0 || index >= len(stoneColors) {
		return
	}
	cc.selected[cc.editing] = stoneColors[index].hex
	cc.status.SetText("")
	if cc.editing == game.PlayerA {
		cc.editing = game.PlayerB
		cc.populateColorList()
		return
	}
	if err := cc.apply(); err != nil {
		cc.status.SetText(err.Error())
		return
	}
	cc.editing = game.PlayerA
	cc.populateColorList()
	cc.onDone()
}

// apply stores both selections in the config and saves it. A pair that fails
// validation leaves the config untouched.
func (cc *ColorConfigUI) apply() error {
	next := *cc.cfg
	next.Theme.Colors.PlayerA = cc.selected[game.PlayerA]
	next.Theme.Colors.PlayerB = cc.selected[game.PlayerB]
	if err := next.Validate(); err != nil {
		cc.log.Warn("stone colors rejected", zap.Error(err))
		return err
	}
	cc.cfg.Theme.Colors.PlayerA = next.Theme.Colors.PlayerA
	cc.cfg.Theme.Colors.PlayerB = next.Theme.Colors.PlayerB
	if err := cc.cfg.Save(); err != nil {
		cc.log.Error("save config", zap.Error(err))
	}
	return nil
}

// populateColorList fills the list for the player being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.rebuilding = true
	defer func() { cc.rebuilding = false }()
	cc.colorList.Clear()

	name := cc.cfg.Players.A
	if cc.editing == game.PlayerB {
		name = cc.cfg.Players.B
	}
	cc.colorList.SetTitle(cc.msgs.Text("colors.title", map[string]any{"Name": tview.Escape(name)}))

	for i, c := range stoneColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]●●●[-] %s", hexColor(c.hex).Hex(), c.name), "", rune('a'+i), nil)
	}
	for i, c := range stoneColors {
		if strings.EqualFold(c.hex, cc.selected[cc.editing]) {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}
	bg := tcell.StyleDefault.Background(hexColor(cc.cfg.Theme.Colors.Background))
	slotStyle := bg.Foreground(hexColor(cc.cfg.Theme.Colors.Slot))
	stoneStyles := [3]tcell.Style{
		slotStyle,
		bg.Foreground(hexColor(cc.selected[game.PlayerA])),
		bg.Foreground(hexColor(cc.selected[game.PlayerB])),
	}

	// A few opening moves on a real board.
	b := game.NewBoard()
	for i, c := range []int{3, 3, 2, 4, 4, 2, 3} {
		player := game.PlayerA
		if i%2 == 1 {
			player = game.PlayerB
		}
		_, _ = b.Drop(c, player)
	}

	startX := x + 2
	startY := y + 1
	for r := 0; r < game.Rows; r++ {
		screenY := startY + game.Rows - 1 - r
		for c := 0; c < game.Columns; c++ {
			screenX := startX + c*cellPitch
			for dx := 0; dx < cellPitch; dx++ {
				screen.SetContent(screenX+dx, screenY, ' ', nil, bg)
			}
			stone := b.Occupant(c, r)
			symbol := cc.cfg.Theme.Symbols.Stone
			if stone == game.Empty {
				symbol = cc.cfg.Theme.Symbols.Slot
			}
			screen.SetContent(screenX+1, screenY, symbol, nil, stoneStyles[stone])
		}
	}

	info := fmt.Sprintf("%s: %s  %s: %s",
		cc.cfg.Players.A, cc.selected[game.PlayerA],
		cc.cfg.Players.B, cc.selected[game.PlayerB])
	col := startX
	for _, ch := range info {
		if col >= x+width-1 {
			break
		}
		screen.SetContent(col, startY+game.Rows+1, ch, nil, tcell.StyleDefault)
		col++
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between the two players.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editing = cc.editing.Other()
	cc.populateColorList()
}
