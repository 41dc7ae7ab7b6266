package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/net2share/awgenc/internal/actions"
	"github.com/net2share/awgenc/internal/handlers"
	"github.com/spf13/cobra"
)

// BuildCobraCommand builds a Cobra command from an action.
func BuildCobraCommand(action *actions.Action) *cobra.Command {
	cmd := &cobra.Command{
		Use:     action.Use,
		Short:   action.Short,
		Long:    action.Long,
		Example: action.Example,
		Hidden:  action.Hidden,
	}
	if action.Args != nil {
		cmd.Use = fmt.Sprintf("%s <%s>", action.Use, action.Args.Name)
		cmd.Args = cobra.MaximumNArgs(1)
	}

	// Add flags for inputs
	for _, input := range action.Inputs {
		switch input.Type {
		case actions.InputTypeText:
			if input.ShortFlag != 0 {
				cmd.Flags().StringP(input.Name, string(input.ShortFlag), input.Default, input.Label)
			} else {
				cmd.Flags().String(input.Name, input.Default, input.Label)
			}
		case actions.InputTypeNumber:
			defaultVal := 0
			if input.Default != "" {
				if v, err := strconv.Atoi(input.Default); err == nil {
					defaultVal = v
				}
			}
			if input.ShortFlag != 0 {
				cmd.Flags().IntP(input.Name, string(input.ShortFlag), defaultVal, input.Label)
			} else {
				cmd.Flags().Int(input.Name, defaultVal, input.Label)
			}
		case actions.InputTypeBool:
			cmd.Flags().Bool(input.Name, false, input.Label)
		}
	}

	// Submenus have no RunE
	if action.IsSubmenu {
		return cmd
	}

	// Set up the run function
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, action, args)
	}

	return cmd
}

// newActionContext creates an action context from the loaded settings.
func newActionContext(stdout io.Writer) *actions.Context {
	return &actions.Context{
		Ctx:        context.Background(),
		Settings:   settings,
		ConfigPath: configPath,
		Values:     make(map[string]interface{}),
		Output:     handlers.NewTUIOutput(),
		Stdout:     stdout,
		Logger:     logger,
	}
}

// runAction collects flag values into an action context and runs the handler.
func runAction(cmd *cobra.Command, action *actions.Action, args []string) error {
	ctx := newActionContext(cmd.OutOrStdout())
	ctx.Args = args

	// Collect values from flags
	for _, input := range action.Inputs {
		if cmd.Flags().Lookup(input.Name) == nil {
			continue
		}
		switch input.Type {
		case actions.InputTypeText:
			val, _ := cmd.Flags().GetString(input.Name)
			ctx.Values[input.Name] = val
		case actions.InputTypeNumber:
			val, _ := cmd.Flags().GetInt(input.Name)
			if input.Validate != nil {
				if err := input.Validate(strconv.Itoa(val)); err != nil {
					return fmt.Errorf("--%s: %w", input.Name, err)
				}
			}
			ctx.Values[input.Name] = val
		case actions.InputTypeBool:
			val, _ := cmd.Flags().GetBool(input.Name)
			ctx.Values[input.Name] = val
		}
	}

	if action.Handler == nil {
		return fmt.Errorf("no handler for action %s", action.ID)
	}

	return action.Handler(ctx)
}

// RegisterActionsWithRoot adds all action-based commands to a root command.
func RegisterActionsWithRoot(root *cobra.Command) {
	for _, action := range actions.TopLevel() {
		cmd := BuildCobraCommand(action)
		for _, child := range actions.GetChildren(action.ID) {
			childCmd := BuildCobraCommand(child)
			cmd.AddCommand(childCmd)
		}
		root.AddCommand(cmd)
	}
}
