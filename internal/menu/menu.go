// Package menu provides the interactive menu for awgenc.
package menu

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/net2share/awgenc/internal/actions"
	"github.com/net2share/go-corelib/tui"
)

// errCancelled is returned when user cancels/backs out.
var errCancelled = errors.New("cancelled")

// Version and BuildTime are set by cmd package.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const awgencBanner = `
   __ ___      ______ ____  ____  _____
  / _` + "`" + ` \ \ /\ / / _` + "`" + ` |/ _ \| '_ \/ ___|
 | (_| |\ V  V / (_| |  __/| | | | (__
  \__,_| \_/\_/ \__, |\___||_| |_|\___|
                |___/
`

// ContextFunc returns a fresh action context for one interactive run.
type ContextFunc func() *actions.Context

// PrintBanner displays the awgenc banner with version info.
func PrintBanner() {
	tui.PrintBanner(tui.BannerConfig{
		AppName:   "AmneziaWG Config Encoder",
		Version:   Version,
		BuildTime: BuildTime,
		ASCII:     awgencBanner,
	})
}

// RunInteractive shows the main interactive menu.
func RunInteractive(newContext ContextFunc) error {
	PrintBanner()

	for {
		options := BuildMenuOptions("")
		options = append(options, tui.MenuOption{Label: "Exit", Value: "exit"})

		header := ""
		if ctx := newContext(); ctx.Settings != nil {
			header = "Keys: " + ctx.Settings.KeysDir
		}

		choice, err := tui.RunMenu(tui.MenuConfig{
			Header:  header,
			Title:   "AmneziaWG Config Encoder",
			Options: options,
		})
		if err != nil {
			return err
		}
		if choice == "" || choice == "exit" {
			return nil
		}

		err = runChoice(newContext, choice)
		if errors.Is(err, errCancelled) {
			continue
		}
		if err != nil {
			_ = tui.ShowMessage(tui.AppMessage{Type: "error", Message: err.Error()})
		}
	}
}

func runChoice(newContext ContextFunc, id string) error {
	action := actions.Get(id)
	if action != nil && action.IsSubmenu {
		return RunSubmenu(newContext, id)
	}
	return RunAction(newContext, id)
}

// BuildMenuOptions builds menu options from child actions. An empty parentID
// lists the top-level actions.
func BuildMenuOptions(parentID string) []tui.MenuOption {
	var options []tui.MenuOption
	for _, action := range actions.GetChildren(parentID) {
		if action.Hidden {
			continue
		}
		label := action.Short
		if action.IsSubmenu {
			label += " →"
		}
		options = append(options, tui.MenuOption{Label: label, Value: action.ID})
	}
	return options
}

// RunSubmenu runs a submenu loop for a parent action.
func RunSubmenu(newContext ContextFunc, parentID string) error {
	action := actions.Get(parentID)
	if action == nil {
		return fmt.Errorf("unknown action: %s", parentID)
	}

	for {
		options := BuildMenuOptions(parentID)
		options = append(options, tui.MenuOption{Label: "Back", Value: "back"})

		choice, err := tui.RunMenu(tui.MenuConfig{
			Title:   action.Short,
			Options: options,
		})
		if err != nil || choice == "" || choice == "back" {
			return errCancelled
		}

		if err := runChoice(newContext, choice); err != nil && !errors.Is(err, errCancelled) {
			_ = tui.ShowMessage(tui.AppMessage{Type: "error", Message: err.Error()})
		}
	}
}

// RunAction prompts for an action's argument and inputs, runs it, and shows
// whatever it wrote to stdout.
func RunAction(newContext ContextFunc, actionID string) error {
	action := actions.Get(actionID)
	if action == nil {
		return fmt.Errorf("unknown action: %s", actionID)
	}
	if action.Handler == nil {
		return fmt.Errorf("no handler for action %s", action.ID)
	}

	ctx := newContext()
	var result bytes.Buffer
	ctx.Stdout = &result

	if action.Args != nil {
		value, confirmed, err := tui.RunInput(tui.InputConfig{
			Title:       action.Args.Name,
			Description: action.Args.Description,
		})
		if err != nil {
			return err
		}
		if !confirmed || (action.Args.Required && value == "") {
			return errCancelled
		}
		ctx.Args = []string{value}
	}

	for _, input := range action.Inputs {
		value, err := promptInput(input)
		if err != nil {
			return err
		}
		ctx.Set(input.Name, value)
	}

	if err := action.Handler(ctx); err != nil {
		return err
	}

	if out := strings.TrimSpace(result.String()); out != "" {
		_ = tui.ShowMessage(tui.AppMessage{Type: "success", Message: out})
	}
	return nil
}

func promptInput(input actions.InputField) (interface{}, error) {
	if input.Type == actions.InputTypeBool {
		ok, err := tui.RunConfirm(tui.ConfirmConfig{
			Title:   input.Label,
			Default: false,
		})
		if err != nil {
			return nil, err
		}
		return ok, nil
	}

	description := ""
	if input.Default != "" {
		description = fmt.Sprintf("Default: %s", input.Default)
	}

	var validationErr error
	for {
		desc := description
		if validationErr != nil {
			desc = strings.TrimSpace(fmt.Sprintf("%s\n⚠ %s", desc, validationErr.Error()))
		}

		val, confirmed, err := tui.RunInput(tui.InputConfig{
			Title:       input.Label,
			Description: desc,
			Value:       input.Default,
		})
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, errCancelled
		}
		if val == "" {
			val = input.Default
		}

		if input.Type != actions.InputTypeNumber {
			return val, nil
		}
		if val == "" {
			return 0, nil
		}
		if input.Validate != nil {
			if validationErr = input.Validate(val); validationErr != nil {
				continue
			}
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			validationErr = fmt.Errorf("%s must be a number", input.Label)
			continue
		}
		return n, nil
	}
}
