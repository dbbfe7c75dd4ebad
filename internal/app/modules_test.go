package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/octofit/internal/apiclient"
)

func TestNewModules(t *testing.T) {
	client, err := apiclient.New("http://localhost:8000/")
	require.NoError(t, err)

	mods := NewModules(Dependencies{Client: client})

	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name()
	}
	assert.Equal(t, []string{"diagnostics", "activities", "leaderboard", "teams", "users", "workouts"}, names)
}

func TestDashboards_Routes(t *testing.T) {
	client, err := apiclient.New("http://localhost:8000/")
	require.NoError(t, err)

	var paths []string
	for _, d := range Dashboards(Dependencies{Client: client}) {
		paths = append(paths, d.Route().Path)
		assert.NotEmpty(t, d.NewPanel().ID())
	}
	assert.Equal(t, []string{"/activities", "/leaderboard", "/teams", "/users", "/workouts"}, paths)
}
