package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termfour/game"
	"termfour/msgcat"
)

// GameSetupUI provides a form for naming the players before a game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(game.Names)
	onCancel func()
	onColors func()

	names game.Names
}

// NewGameSetup creates a new game setup form prefilled with names.
func NewGameSetup(names game.Names, msgs *msgcat.Catalog, onStart func(game.Names), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		names:    names,
	}

	form := tview.NewForm()

	form.AddInputField(msgs.Text("setup.player_a", nil), names.A, 24, nil, func(text string) {
		setup.names.A = strings.TrimSpace(text)
	})
	form.AddInputField(msgs.Text("setup.player_b", nil), names.B, 24, nil, func(text string) {
		setup.names.B = strings.TrimSpace(text)
	})

	form.AddButton(msgs.Text("setup.start", nil), func() {
		onStart(setup.names)
	})

	form.AddButton(msgs.Text("setup.colors", nil), func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton(msgs.Text("setup.quit", nil), func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitle(msgs.Text("setup.title", nil))
	form.SetTitleColor(MenuColors.Title)
	form.SetTitleAlign(tview.AlignCenter)
	form.SetLabelColor(MenuColors.Label)
	form.SetFieldBackgroundColor(MenuColors.FieldBG)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText(msgs.Text("setup.help", nil)).
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// Names returns the names currently entered.
func (s *GameSetupUI) Names() game.Names {
	return s.names
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
