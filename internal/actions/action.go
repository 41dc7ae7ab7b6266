// Package actions provides the action registry the awgenc CLI is built from.
package actions

import (
	"context"
	"io"
	"log/slog"

	"github.com/net2share/awgenc/internal/config"
)

// InputType defines the type of input field.
type InputType int

const (
	// InputTypeText is a text flag.
	InputTypeText InputType = iota
	// InputTypeNumber is a numeric flag.
	InputTypeNumber
	// InputTypeBool is a boolean flag.
	InputTypeBool
)

// InputField defines a flag accepted by an action.
type InputField struct {
	Name      string
	Label     string
	Type      InputType
	Default   string
	ShortFlag rune
	Validate  func(value string) error
}

// ArgsSpec defines the positional arguments for an action.
type ArgsSpec struct {
	Name        string
	Description string
	Required    bool
}

// Handler is the function signature for action handlers.
type Handler func(ctx *Context) error

// Action defines a CLI command.
type Action struct {
	ID        string
	Parent    string
	Use       string
	Short     string
	Long      string
	Example   string
	Args      *ArgsSpec
	Inputs    []InputField
	Handler   Handler
	Hidden    bool
	IsSubmenu bool
}

// Context provides the execution context for action handlers.
type Context struct {
	Ctx        context.Context
	Settings   *config.Settings
	ConfigPath string
	Args       []string
	Values     map[string]interface{}
	Output     OutputWriter
	// Stdout receives command results such as tokens, kept apart from
	// Output so they can be piped.
	Stdout io.Writer
	Logger *slog.Logger
}

// GetString returns a string value from the context.
func (c *Context) GetString(key string) string {
	if v, ok := c.Values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt returns an integer value from the context.
func (c *Context) GetInt(key string) int {
	if v, ok := c.Values[key]; ok {
		switch i := v.(type) {
		case int:
			return i
		case int64:
			return int(i)
		case float64:
			return int(i)
		}
	}
	return 0
}

// GetBool returns a boolean value from the context.
func (c *Context) GetBool(key string) bool {
	if v, ok := c.Values[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetArg returns the positional argument at the given index.
func (c *Context) GetArg(index int) string {
	if index >= 0 && index < len(c.Args) {
		return c.Args[index]
	}
	return ""
}

// HasArg returns true if a positional argument exists at the given index.
func (c *Context) HasArg(index int) bool {
	return index >= 0 && index < len(c.Args)
}

// Set sets a value in the context.
func (c *Context) Set(key string, value interface{}) {
	if c.Values == nil {
		c.Values = make(map[string]interface{})
	}
	c.Values[key] = value
}

// Log returns the context logger, or a discarding logger when none is set.
func (c *Context) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
