package handlers

import (
	"fmt"

	"github.com/net2share/awgenc/internal/actions"
	"github.com/net2share/awgenc/internal/awg"
	"github.com/net2share/awgenc/internal/wgconf"
)

func init() {
	actions.SetHandler(actions.ActionPayload, HandlePayload)
}

// HandlePayload prints the uncompressed JSON payload for a user.
func HandlePayload(ctx *actions.Context) error {
	log := ctx.Log()

	src, err := resolveSource(ctx, actions.ActionPayload)
	if err != nil {
		log.Error("failed to build payload", "error", err)
		return err
	}
	log = log.With("user", src.UserID)

	cfg, err := wgconf.ParseFile(src.Path)
	if err != nil {
		log.Error("failed to build payload", "path", src.Path, "error", err)
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	if src.Opts.StrictKeys {
		if err := cfg.ValidateKeys(); err != nil {
			log.Error("failed to build payload", "path", src.Path, "error", err)
			return err
		}
	}

	data, err := awg.NewBuilder(cfg, src.Opts.Description).JSON()
	if err != nil {
		log.Error("failed to build payload", "path", src.Path, "error", err)
		return err
	}

	log.Debug("built payload", "bytes", len(data))
	_, err = fmt.Fprintln(ctx.Stdout, string(data))
	return err
}
