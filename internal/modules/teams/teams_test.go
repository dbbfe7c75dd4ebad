package teams

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/decor"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/testutils"
)

const twoTeams = `[
	{"_id":"t1","name":"Blue Shift","members":["u1",{"_id":"u2","username":"trinity"}]},
	{"_id":"t2","name":"Red Queen"}
]`

func TestTeams_FirstTeamSelected(t *testing.T) {
	backend := testutils.NewBackend(t, map[string]string{apiclient.ResourceTeams: twoTeams})

	panel := testutils.Settle(t, New(backend.Deps(t)).NewPanel())

	require.Equal(t, dataview.Success, panel.State())
	html := testutils.Render(t, panel.Render())
	assert.Contains(t, html, "Neural Collectives")
	assert.Contains(t, html, "<h2>Blue Shift</h2>", "first team is the detail focus")
	assert.Contains(t, html, "SYNCHRONIZED MEMBERS")
	assert.Contains(t, html, "trinity")
	assert.Contains(t, html, "Neural Lead")
	assert.Contains(t, html, `hx-post="/views/`+panel.ID()+`/select/t2"`)
	assert.Equal(t, 1, strings.Count(html, "team-active"))

	stats := panel.Stats()
	assert.Equal(t, "2", testutils.StatValue(stats, "Collectives"))
	assert.Equal(t, "2", testutils.StatValue(stats, "Synchronized Members"))
	assert.Equal(t, "1.0", testutils.StatValue(stats, "Avg Members"))
}

func TestTeams_SelectRepointsDetail(t *testing.T) {
	backend := testutils.NewBackend(t, map[string]string{apiclient.ResourceTeams: twoTeams})
	panel := testutils.Settle(t, New(backend.Deps(t)).NewPanel())

	require.NoError(t, panel.Select("t2"))
	html := testutils.Render(t, panel.Render())
	assert.Contains(t, html, "<h2>Red Queen</h2>")
	assert.NotContains(t, html, "<h2>Blue Shift</h2>")

	assert.ErrorIs(t, panel.Select("nope"), domain.ErrNotFound)
}

func TestTeams_NoData(t *testing.T) {
	tests := map[string]testutils.Response{
		"empty array":  {Status: http.StatusOK, Body: `[]`},
		"server error": {Status: http.StatusServiceUnavailable, Body: ``},
		"object body":  {Status: http.StatusOK, Body: `{"teams":[]}`},
	}
	for name, res := range tests {
		t.Run(name, func(t *testing.T) {
			backend := testutils.NewBackend(t, nil)
			backend.Set(apiclient.ResourceTeams, res)

			panel := testutils.Settle(t, New(backend.Deps(t)).NewPanel())

			html := testutils.Render(t, panel.Render())
			assert.Contains(t, html, EmptyMessage)
			assert.NotContains(t, html, "team-detail-panel")
			assert.ErrorIs(t, panel.Select("t1"), dataview.ErrNotReady)
		})
	}
}

func TestDecorate(t *testing.T) {
	var teams []domain.Team
	for range 50 {
		teams = append(teams, domain.Team{Name: "x"})
	}
	cards := decorate(decor.Seeded(7), wrap(teams))

	for _, c := range cards {
		assert.GreaterOrEqual(t, c.Synergy, 0)
		assert.LessOrEqual(t, c.Synergy, 99)
		assert.GreaterOrEqual(t, c.Density, 50)
		assert.LessOrEqual(t, c.Density, 149)
		assert.GreaterOrEqual(t, c.Strength, 1)
		assert.LessOrEqual(t, c.Strength, 5)
		assert.Regexp(t, `^TM-[0-9A-Z]{5}$`, c.Code)
		assert.Len(t, c.Points, c.Density/10)
		assert.Len(t, c.MiniMap, miniMapNodes)
		require.Len(t, c.Members, 1, "a team without members still lists one row")
		assert.True(t, strings.HasPrefix(c.Members[0].Name, "User_"))
	}
}

func TestMembers(t *testing.T) {
	team := domain.Team{Members: []domain.UserRef{
		{User: &domain.User{Username: "neo"}},
		{ID: "u7"},
		{},
	}}
	got := members(decor.Seeded(1), team)

	require.Len(t, got, 3)
	assert.Equal(t, Member{Avatar: "A", Name: "neo", Role: "Neural Lead"}, got[0])
	assert.Equal(t, Member{Avatar: "B", Name: "u7", Role: "Neural Member"}, got[1])
	assert.Equal(t, "C", got[2].Avatar)
	assert.True(t, strings.HasPrefix(got[2].Name, "User_"))
}

func TestSynapsesRegenerate(t *testing.T) {
	fx := newSynapses(decor.Seeded(9))
	before := fx.Frame()
	require.Len(t, before.Lines, synapseLines)
	require.Len(t, before.Nodes, synapseNodes)

	fx.Step(1)
	after := fx.Frame()
	assert.NotEqual(t, before.Lines, after.Lines)

	for _, l := range after.Lines {
		assert.GreaterOrEqual(t, l.Opacity, 0.2)
		assert.Less(t, l.Opacity, 0.7)
	}

	html := testutils.Render(t, Render(dataview.Snapshot[Card]{ID: "m4", State: dataview.Loading}, after))
	assert.Contains(t, html, "SYNCHRONIZING NEURAL COLLECTIVES")
	assert.Equal(t, synapseLines, strings.Count(html, "<line "))
}
