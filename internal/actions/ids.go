package actions

// Action IDs for type-safe references throughout the codebase.
const (
	// Encoding actions
	ActionEncode  = "encode"
	ActionPayload = "payload"

	// Config actions
	ActionConfig     = "config"
	ActionConfigShow = "config.show"
	ActionConfigSet  = "config.set"
)
