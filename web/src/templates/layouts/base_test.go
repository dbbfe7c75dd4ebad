package layouts

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/octofit/internal/module"
)

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0d:00h:00m:00s", FormatUptime(0))
	assert.Equal(t, "0d:00h:00m:00s", FormatUptime(-time.Second))
	assert.Equal(t, "3d:04h:05m:06s", FormatUptime(3*24*time.Hour+4*time.Hour+5*time.Minute+6*time.Second))
}

func TestBase(t *testing.T) {
	var buf bytes.Buffer
	err := Base(Chrome{
		Title:  "Teams",
		Active: "/teams",
		Nav: []module.Route{
			{Path: "/activities", Label: "Activities"},
			{Path: "/teams", Label: "Teams"},
		},
		Now:    time.Date(2026, 5, 1, 13, 7, 9, 0, time.UTC),
		Uptime: 90 * time.Second,
		PingMS: 17,
		Glitch: true,
	}, g.Text("content-here")).Render(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Teams - OctoFit Tracker</title>")
	assert.Contains(t, out, `navigator.sendBeacon(el.dataset.release)`)
	assert.Contains(t, out, `class="active nav-link" href="/teams"`)
	assert.Contains(t, out, `class="nav-link" href="/activities"`)
	assert.Contains(t, out, `<div class="cyber-time">13:07:09</div>`)
	assert.Contains(t, out, "UPTIME: 0d:00h:01m:30s")
	assert.Contains(t, out, "PING: 17ms")
	assert.Contains(t, out, `class="App glitching"`)
	assert.Contains(t, out, "content-here")
}
