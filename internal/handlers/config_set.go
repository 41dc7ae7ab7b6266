package handlers

import (
	"fmt"

	"github.com/net2share/awgenc/internal/actions"
)

func init() {
	actions.SetHandler(actions.ActionConfigSet, HandleConfigSet)
}

// HandleConfigSet applies flag values to the settings and saves them.
func HandleConfigSet(ctx *actions.Context) error {
	current, err := LoadSettings(ctx)
	if err != nil {
		return actions.WrapError(err, "failed to load settings", "Check "+settingsPath(ctx))
	}

	s := *current
	if v := ctx.GetString("keys-dir"); v != "" {
		s.KeysDir = v
	}
	if v := ctx.GetString("description-prefix"); v != "" {
		s.DescriptionPrefix = v
	}
	if v := ctx.GetString("log-level"); v != "" {
		s.Log.Level = v
	}
	if v := ctx.GetString("log-file"); v != "" {
		s.Log.File = v
	}
	if v := ctx.GetInt("qr-size"); v != 0 {
		s.QR.Size = v
	}

	if err := s.Validate(); err != nil {
		return actions.WrapError(err, fmt.Sprintf("invalid settings: %v", err), "Run 'awgenc config set --help' for accepted values")
	}

	path := settingsPath(ctx)
	if err := s.SaveToPath(path); err != nil {
		ctx.Log().Error("failed to save settings", "path", path, "error", err)
		return err
	}
	ctx.Settings = &s

	ctx.Log().Info("saved settings", "path", path)
	ctx.Output.Success(fmt.Sprintf("Settings written to %s", path))
	return nil
}
