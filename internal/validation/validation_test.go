package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsGitHubUsername(t *testing.T) {
	for _, ok := range []string{"a", "octocat", "Octo-Cat", "a1-b2-c3", "x23456789012345678901234567890123456789"} {
		require.True(t, IsGitHubUsername(ok), ok)
	}
	for _, bad := range []string{"", "-octo", "octo-", "oc--to", "oc_to", "x234567890123456789012345678901234567890"} {
		require.False(t, IsGitHubUsername(bad), bad)
	}
}

type profile struct {
	Name     string `validate:"min=2"`
	Github   string `validate:"omitempty,gh_username"`
	Twitter  string `validate:"omitempty,twitter_handle"`
	LinkedIn string `validate:"omitempty,linkedin_handle"`
}

func TestCustomValidator(t *testing.T) {
	cv := New()
	require.NoError(t, cv.Validate(&profile{Name: "ok"}))
	require.NoError(t, cv.Validate(&profile{Name: "ok", Github: "octo-cat", Twitter: "jack_1", LinkedIn: "jane-doe"}))

	err := cv.Validate(&profile{Name: "ok", Github: "-bad"})
	require.Error(t, err)
	require.Equal(t, "Please enter a valid GitHub username.", Message(err))

	err = cv.Validate(&profile{Name: "ok", Twitter: "this_is_way_too_long"})
	require.Equal(t, "Please enter a valid Twitter username.", Message(err))

	err = cv.Validate(&profile{Name: "ok", LinkedIn: "ab"})
	require.Equal(t, "Please enter a valid LinkedIn username.", Message(err))

	err = cv.Validate(&profile{Name: "a"})
	require.Equal(t, "Name must be at least 2 characters.", Message(err))
}

func TestMessage(t *testing.T) {
	require.Equal(t, "", Message(nil))
	require.Equal(t, "boom", Message(errors.New("boom")))
}
