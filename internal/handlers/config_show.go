package handlers

import (
	"fmt"
	"os"

	"github.com/net2share/awgenc/internal/actions"
)

func init() {
	actions.SetHandler(actions.ActionConfigShow, HandleConfigShow)
}

// HandleConfigShow shows the effective settings.
func HandleConfigShow(ctx *actions.Context) error {
	s, err := LoadSettings(ctx)
	if err != nil {
		return actions.WrapError(err, "failed to load settings", "Check "+settingsPath(ctx))
	}

	path := settingsPath(ctx)
	if _, err := os.Stat(path); err != nil {
		ctx.Output.Info(fmt.Sprintf("No config file at %s, using defaults", path))
	}

	lines := []string{
		ctx.Output.KV("Config file", path),
		"",
		ctx.Output.KV("Keys directory", s.KeysDir),
		ctx.Output.KV("Key path", s.KeyPath("<user_id>")),
		ctx.Output.KV("Description", s.Description("<user_id>")),
		"",
		ctx.Output.KV("Log level", s.Log.Level),
		ctx.Output.KV("Log file", s.Log.File),
		ctx.Output.KV("QR size", fmt.Sprintf("%d", s.QR.Size)),
	}

	ctx.Output.Box("Configuration", lines)
	return nil
}
