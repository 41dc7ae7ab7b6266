// Package handlers provides the business logic for awgenc actions.
package handlers

import (
	"github.com/net2share/awgenc/internal/actions"
	"github.com/net2share/awgenc/internal/awg"
	"github.com/net2share/awgenc/internal/config"
)

// LoadSettings loads and caches the settings.
func LoadSettings(ctx *actions.Context) (*config.Settings, error) {
	if ctx.Settings != nil {
		return ctx.Settings, nil
	}

	s, err := config.LoadOrDefault(ctx.ConfigPath)
	if err != nil {
		return nil, err
	}
	ctx.Settings = s
	return s, nil
}

// settingsPath returns the settings file in effect for ctx.
func settingsPath(ctx *actions.Context) string {
	if ctx.ConfigPath != "" {
		return ctx.ConfigPath
	}
	return config.Path()
}

// RequireUserID returns the sanitised user ID from the first argument.
func RequireUserID(ctx *actions.Context, command string) (string, error) {
	if !ctx.HasArg(0) {
		return "", actions.MissingUserIDError(command)
	}
	id := ctx.GetArg(0)
	if err := config.ValidateUserID(id); err != nil {
		return "", err
	}
	return id, nil
}

// source describes where a user's configuration is read from.
type source struct {
	UserID string
	Path   string
	Opts   awg.Options
}

// resolveSource combines the user ID, settings and flags into an encode
// request.
func resolveSource(ctx *actions.Context, command string) (*source, error) {
	id, err := RequireUserID(ctx, command)
	if err != nil {
		return nil, err
	}

	s, err := LoadSettings(ctx)
	if err != nil {
		return nil, actions.WrapError(err, "failed to load settings", "Check "+settingsPath(ctx))
	}

	path := ctx.GetString("file")
	if path == "" {
		path = s.KeyPath(id)
	}

	description := ctx.GetString("description")
	if description == "" {
		description = s.Description(id)
	}

	return &source{
		UserID: id,
		Path:   path,
		Opts: awg.Options{
			Description: description,
			StrictKeys:  ctx.GetBool("strict"),
		},
	}, nil
}
