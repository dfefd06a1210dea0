// termfour is a two-player Connect-4 game for the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termfour/config"
	"termfour/game"
	"termfour/logging"
	"termfour/msgcat"
	"termfour/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlayerA    = flag.String("a", "", "Name of the first player")
	flagPlayerB    = flag.String("b", "", "Name of the second player")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with configured names")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var messagesFile = "termfour/messages.yaml"

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var msgs *msgcat.Catalog
var log *zap.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termfour %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if *flagPlayerA != "" {
		cfg.Players.A = *flagPlayerA
	}
	if *flagPlayerB != "" {
		cfg.Players.B = *flagPlayerB
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var closeLog func()
	log, closeLog, err = logging.New(cfg.Log)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer closeLog()

	msgPath, err := xdg.SearchConfigFile(messagesFile)
	if err != nil {
		msgPath = ""
	}
	msgs, err = msgcat.New(msgPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	session := game.NewSession(game.Names{A: cfg.Players.A, B: cfg.Players.B}, log)
	log.Info("starting", zap.String("version", Version), zap.String("session", session.ID))

	quickStart := *flagQuickStart || *flagPlayerA != "" || *flagPlayerB != "" || *flagFocus

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true)

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(app, cfg, session, msgs, gameHint, log)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.SetTitleFunc(func(score string) {
		rootPage.SetTitle(msgs.Text("app.title", map[string]any{"Score": tview.Escape(score)}))
	})

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			rootPage.SwitchToPage("setup")
			return nil
		case tcell.KeyLeft:
			gameBoard.MoveFocus(-1)
		case tcell.KeyRight:
			gameBoard.MoveFocus(1)
		case tcell.KeyEnter:
			gameBoard.DropAtFocus()
		case tcell.KeyRune:
			if column, ok := game.ColumnForKey(event.Rune()); ok {
				gameBoard.Drop(column)
				return nil
			}
			switch event.Rune() {
			case 'h':
				gameBoard.MoveFocus(-1)
			case 'l':
				gameBoard.MoveFocus(1)
			case ' ':
				gameBoard.DropAtFocus()
			case 'r':
				gameBoard.Reset()
			case 'q':
				gameBoard.Close()
				app.Stop()
				return nil
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		session.Names(),
		msgs,
		func(names game.Names) {
			startGame(names)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Stone color screen
	colorConfig := ui.NewColorConfig(cfg, msgs, log, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		if event.Key() == tcell.KeyCtrlS {
			startGame(setupUI.Names())
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", setupUI.Form(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(session.Names())
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		log.Error("application stopped", zap.Error(err))
		panic(err)
	}
	log.Info("bye", zap.String("score", session.ScoreLine()))
}

// startGame applies the player names and shows a cleared board. The score is kept.
func startGame(names game.Names) {
	next := *cfg
	next.Players = config.PlayersConfig{A: names.A, B: names.B}
	if err := next.Validate(); err != nil {
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Cannot start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	cfg.Players = next.Players
	gameBoard.SetConfig(cfg)
	gameBoard.Reset()
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
}
