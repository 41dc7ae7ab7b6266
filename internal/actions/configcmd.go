package actions

func init() {
	// Config parent action (submenu)
	Register(&Action{
		ID:        ActionConfig,
		Use:       "config",
		Short:     "Manage configuration",
		Long:      "Show and change awgenc settings",
		IsSubmenu: true,
	})

	// config show
	Register(&Action{
		ID:     ActionConfigShow,
		Parent: ActionConfig,
		Use:    "show",
		Short:  "Show current configuration",
		Long:   "Display the effective settings and where they were loaded from",
	})

	// config set
	Register(&Action{
		ID:     ActionConfigSet,
		Parent: ActionConfig,
		Use:    "set",
		Short:  "Change configuration",
		Long: `Apply the given values to the effective settings and write them to the
settings file. Without flags the current settings are written, which creates
the file with defaults if it does not exist.`,
		Example: "  awgenc config set --keys-dir /srv/awg/keys --qr-size 512",
		Inputs: []InputField{
			{Name: "keys-dir", Label: "Directory holding <user_id>/<user_id>.conf", Type: InputTypeText},
			{Name: "description-prefix", Label: "Prefix of the client-visible description", Type: InputTypeText},
			{Name: "log-level", Label: "Log level (debug, info, warn, error)", Type: InputTypeText},
			{Name: "log-file", Label: "Log file path", Type: InputTypeText},
			{Name: "qr-size", Label: "Default QR code width in pixels", Type: InputTypeNumber, Validate: validateQRSize},
		},
	})
}
