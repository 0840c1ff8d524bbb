// Package gameplay applies player intents and pointer events to the game.
package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	engineinput "boxplay/pkg/engine/input"
	"boxplay/pkg/engine/textgrid"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/devtools"
	"boxplay/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if g.Activity == nil {
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.QuitRequested = true
		logMessage(g, gotext.Get("GOODBYE"))
		return

	case engineinput.ActionRestart:
		if err := Restart(g); err != nil {
			logMessage(g, err.Error())
		}
		return

	case engineinput.ActionDumpBoard:
		path, err := devtools.DumpBoard(g, g.DumpDir)
		if err != nil {
			logMessage(g, fmt.Sprintf(gotext.Get("BOARD_DUMP_FAILED"), err.Error()))
			return
		}
		logMessage(g, fmt.Sprintf(gotext.Get("BOARD_DUMPED"), path))
		return
	}

	// Completion screen: only restart and quit do anything
	if g.Activity.Finished() {
		logMessage(g, gotext.Get("ACTIVITY_OVER"))
		return
	}

	switch intent.Action {
	case engineinput.ActionCursorUp:
		MoveCursor(g, textgrid.Up)
	case engineinput.ActionCursorDown:
		MoveCursor(g, textgrid.Down)
	case engineinput.ActionCursorLeft:
		MoveCursor(g, textgrid.Left)
	case engineinput.ActionCursorRight:
		MoveCursor(g, textgrid.Right)

	case engineinput.ActionConfirm:
		Confirm(g)

	case engineinput.ActionHint:
		ShowHint(g)

	case engineinput.ActionTypeChar, engineinput.ActionErase, engineinput.ActionToggleDirection:
		c, ok := g.Activity.(*activity.Crossword)
		if !ok {
			return
		}
		switch intent.Action {
		case engineinput.ActionTypeChar:
			c.TypeChar(intent.Char)
		case engineinput.ActionErase:
			c.Erase()
		default:
			c.ToggleDirection()
		}
	}
}
