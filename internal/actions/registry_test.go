package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisteredActions(t *testing.T) {
	var ids []string
	for _, a := range TopLevel() {
		ids = append(ids, a.ID)
	}
	require.Equal(t, []string{ActionConfig, ActionEncode, ActionPayload}, ids)

	children := GetChildren(ActionConfig)
	require.Len(t, children, 2)
	require.Equal(t, ActionConfigSet, children[0].ID)
	require.Equal(t, ActionConfigShow, children[1].ID)

	encode := Get(ActionEncode)
	require.NotNil(t, encode)
	require.True(t, encode.Args.Required)

	var names []string
	for _, in := range encode.Inputs {
		names = append(names, in.Name)
	}
	require.Equal(t, []string{"file", "description", "strict", "link", "qr", "qr-size", "metrics-file"}, names)

	// Shared inputs must not alias between actions.
	require.Len(t, Get(ActionPayload).Inputs, 3)
}

func TestValidateQRSize(t *testing.T) {
	require.NoError(t, validateQRSize("0"))
	require.NoError(t, validateQRSize("256"))
	require.Error(t, validateQRSize("-1"))
	require.Error(t, validateQRSize("10"))
	require.Error(t, validateQRSize("big"))
}

func TestActionError(t *testing.T) {
	err := MissingUserIDError("encode")
	require.ErrorIs(t, err, ErrMissingUserID)
	require.Equal(t, "user ID required\nUsage: awgenc encode <user_id>", err.Error())

	wrapped := WrapError(errors.New("inner"), "outer", "")
	require.Equal(t, "outer", wrapped.Error())
	require.EqualError(t, errors.Unwrap(wrapped), "inner")
}

func TestContextValues(t *testing.T) {
	ctx := &Context{Args: []string{"alice"}}
	ctx.Set("n", 3)
	ctx.Set("s", "x")
	ctx.Set("b", true)

	require.Equal(t, 3, ctx.GetInt("n"))
	require.Equal(t, "x", ctx.GetString("s"))
	require.True(t, ctx.GetBool("b"))
	require.Equal(t, "", ctx.GetString("missing"))
	require.Equal(t, "alice", ctx.GetArg(0))
	require.False(t, ctx.HasArg(1))
	require.NotNil(t, ctx.Log())
}
