package actions

// OutputWriter defines the interface for action diagnostics.
// Command results go to Context.Stdout instead.
type OutputWriter interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)

	Box(title string, lines []string)
	KV(key, value string) string
}
