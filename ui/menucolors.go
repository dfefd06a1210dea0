package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette for the setup and color screens.
var MenuColors = struct {
	Border      tcell.Color // Border of panels
	Title       tcell.Color // Panel titles
	Label       tcell.Color // Field labels
	Hint        tcell.Color // Help text
	FieldBG     tcell.Color // Input field background
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.NewHexColor(0x343747),
	Title:       tcell.NewHexColor(0xFFFFFF),
	Label:       tcell.NewHexColor(0xCBCED0),
	Hint:        tcell.PaletteColor(245),
	FieldBG:     tcell.NewHexColor(0x232530),
	ButtonBG:    tcell.NewHexColor(0x2E303E),
	ButtonFocus: tcell.NewHexColor(0xE95379),
	ButtonText:  tcell.NewHexColor(0xFFFFFF),
}
