package menu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/net2share/awgenc/internal/actions"
)

func TestBuildMenuOptions(t *testing.T) {
	top := BuildMenuOptions("")
	require.Len(t, top, 3)
	require.Equal(t, actions.ActionConfig, top[0].Value)
	require.Equal(t, "Manage configuration →", top[0].Label)
	require.Equal(t, actions.ActionEncode, top[1].Value)
	require.Equal(t, actions.ActionPayload, top[2].Value)

	sub := BuildMenuOptions(actions.ActionConfig)
	require.Len(t, sub, 2)
	require.Equal(t, actions.ActionConfigSet, sub[0].Value)
	require.Equal(t, actions.ActionConfigShow, sub[1].Value)
}

func TestRunActionUnknown(t *testing.T) {
	err := RunAction(func() *actions.Context { return &actions.Context{} }, "nope")
	require.EqualError(t, err, "unknown action: nope")
}
