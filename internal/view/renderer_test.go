package view

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"wakatimer/internal/model"
	"wakatimer/internal/period"
)

func TestRendererPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"landing.html", "about.html", "signin.html", "signup.html", "otp_verify.html",
		"forgot_password.html", "reset_password.html", "dashboard.html", "project.html",
		"leaderboards.html", "settings.html", "clients.html", "invoices.html", "goals.html", "plugins.html",
	} {
		require.True(t, r.Has(name), name)
	}
	require.False(t, r.Has("layout.html"))
}

func TestRenderSignin(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "signin.html", Page{
		Title: "Sign in",
		Flash: ErrorFlash("Email and password are required"),
		Data:  AuthForm{Email: "a@b.c", Next: "/goals", Error: "<oops>"},
	}, nil)
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "<title>Sign in | Wakatimer</title>")
	require.Contains(t, out, "Email and password are required")
	require.Contains(t, out, `value="a@b.c"`)
	require.Contains(t, out, `value="/goals"`)
	require.Contains(t, out, "&lt;oops&gt;")
}

func TestRenderDashboard(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	d := NewDashboard(model.SummariesResponse{Data: sampleSummaries()}, period.Last14Days, "2024-03-01", "2024-03-15")
	var buf bytes.Buffer
	err = r.Render(&buf, "dashboard.html", Page{
		Session: model.SessionData{IsLoggedIn: true},
		Data:    d,
	}, nil)
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, `<option value="Last 14 Days" selected>`)
	require.Contains(t, out, "3h 30m")
	require.Contains(t, out, "Wed Mar 13th")
	require.Contains(t, out, "Log out")
}

func TestRenderSettingsSecurity(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "settings.html", Page{
		Session: model.SessionData{IsLoggedIn: true},
		Data: Settings{
			Tab:  "security",
			Tabs: SettingsTabs,
			History: []model.AuthEvent{{
				Method:    model.AuthMethodGitHub,
				Success:   true,
				IP:        "10.0.0.1",
				CreatedAt: time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC),
			}},
		},
	}, nil)
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "Recent sign-ins")
	require.Contains(t, out, "Mar 13, 2024 09:30")
	require.Contains(t, out, "10.0.0.1")
	require.NotContains(t, out, "Update profile")
}

func TestRenderUnknown(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	require.Error(t, r.Render(&bytes.Buffer{}, "missing.html", Page{}, nil))
}

func TestNewRendererParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layout.html":      {Data: []byte(`{{define "layout"}}{{template "content" .}}{{end}}`)},
		"templates/pages/bad.html":   {Data: []byte(`{{define "content"}}{{.Title}`)},
		"templates/pages/other.html": {Data: []byte(`{{define "content"}}ok{{end}}`)},
	}
	_, err := newRenderer(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.html")
}
