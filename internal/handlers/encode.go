package handlers

import (
	"fmt"
	"time"

	"github.com/net2share/awgenc/internal/actions"
	"github.com/net2share/awgenc/internal/awg"
	"github.com/net2share/awgenc/internal/clientcfg"
	"github.com/net2share/awgenc/internal/metrics"
)

func init() {
	actions.SetHandler(actions.ActionEncode, HandleEncode)
}

// HandleEncode encodes a user's client configuration and prints the token.
func HandleEncode(ctx *actions.Context) error {
	rec := metrics.NewRecorder()
	err := encode(ctx, rec)
	if err != nil {
		rec.Failure(err)
	}

	if path := ctx.GetString("metrics-file"); path != "" {
		if werr := rec.WriteFile(path); werr != nil {
			ctx.Log().Warn("failed to write metrics", "path", path, "error", werr)
			ctx.Output.Warning(fmt.Sprintf("Failed to write metrics file: %v", werr))
		}
	}
	return err
}

func encode(ctx *actions.Context, rec *metrics.Recorder) error {
	log := ctx.Log()

	src, err := resolveSource(ctx, actions.ActionEncode)
	if err != nil {
		log.Error("failed to encode configuration", "error", err)
		return err
	}

	log = log.With("user", src.UserID)
	log.Info("encoding configuration", "path", src.Path)

	res, err := awg.EncodeFile(src.Path, src.Opts)
	if err != nil {
		log.Error("failed to encode configuration", "path", src.Path, "error", err)
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	link := clientcfg.URL(res.Token)
	if qrPath := ctx.GetString("qr"); qrPath != "" {
		size := ctx.GetInt("qr-size")
		if size == 0 && ctx.Settings != nil {
			size = ctx.Settings.QR.Size
		}
		if err := clientcfg.WriteQRCode(qrPath, link, size); err != nil {
			log.Error("failed to write qr code", "path", qrPath, "error", err)
			return err
		}
		log.Info("wrote qr code", "path", qrPath, "size", size)
		ctx.Output.Success(fmt.Sprintf("QR code written to %s", qrPath))
	}

	out := res.Token
	if ctx.GetBool("link") {
		out = link
	}
	if _, err := fmt.Fprintln(ctx.Stdout, out); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}

	rec.Success(res.Token, time.Now())
	log.Info("encoded configuration", "payload_bytes", len(res.Payload), "token_length", len(res.Token))
	return nil
}
