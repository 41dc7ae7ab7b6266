// Package cmd provides the Cobra CLI for awgenc.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/net2share/awgenc/internal/actions"
	"github.com/net2share/awgenc/internal/config"
	"github.com/net2share/awgenc/internal/handlers"
	"github.com/net2share/awgenc/internal/logging"
	"github.com/net2share/awgenc/internal/menu"
	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version and BuildTime are set at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	configPath string
	settings   *config.Settings
	logger     *slog.Logger
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "awgenc [user_id]",
	Short: "AmneziaWG client config encoder",
	Long: `AmneziaWG client config encoder

Converts a user's AmneziaWG client configuration into the token imported by
the AmneziaVPN client. 'awgenc <user_id>' is shorthand for 'awgenc encode <user_id>'.
Run without arguments on a terminal to open the interactive menu.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		tui.SetAppInfo("awgenc", Version, BuildTime)

		if configPath == "" {
			configPath = config.Path()
		}
		s, err := config.LoadOrDefault(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		settings = s

		l, closer, err := logging.Setup(s.Log)
		if err != nil {
			handlers.NewTUIOutput().Warning(fmt.Sprintf("Logging to stderr: %v", err))
		}
		logger, logCloser = l, closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
			menu.Version = Version
			menu.BuildTime = BuildTime
			return menu.RunInteractive(func() *actions.Context {
				return newActionContext(cmd.OutOrStdout())
			})
		}
		return runAction(cmd, actions.Get(actions.ActionEncode), args)
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default $"+config.EnvConfigPath+" or "+config.Path()+")")

	// Register all action-based commands
	RegisterActionsWithRoot(rootCmd)
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		handlers.NewTUIOutput().Error(err.Error())
		closeLog()
		os.Exit(1)
	}
}

// SetVersionInfo sets version information for the CLI.
func SetVersionInfo(version, buildTime string) {
	Version = version
	BuildTime = buildTime
	rootCmd.Version = version + " (built " + buildTime + ")"
}
