package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordsMatch(t *testing.T) {
	require.True(t, SignupForm{Password: "abc", PasswordRepeat: "abc"}.PasswordsMatch())
	require.False(t, SignupForm{Password: "abc", PasswordRepeat: "abd"}.PasswordsMatch())
	require.True(t, ResetPasswordForm{Password: "x", ConfirmPassword: "x"}.PasswordsMatch())
	require.False(t, ResetPasswordForm{Password: "x", ConfirmPassword: ""}.PasswordsMatch())
}

func TestGoalSeconds(t *testing.T) {
	require.Equal(t, 7200, GoalForm{Duration: 2, Unit: "hrs"}.Seconds())
	require.Equal(t, 300, GoalForm{Duration: 5, Unit: "mins"}.Seconds())
	require.Equal(t, 45, GoalForm{Duration: 45, Unit: "secs"}.Seconds())
}

func TestProfileFields(t *testing.T) {
	f := ProfileForm{Name: "Al", Username: "al"}
	require.NotContains(t, f.Fields(), "heartbeats_timeout_sec")
	f.KeyStrokeTimeout = 300
	require.Equal(t, 300, f.Fields()["heartbeats_timeout_sec"])
}
