package workouts

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

const twoWorkouts = `[
	{"_id":"w1","name":"Core Reboot"},
	{"_id":"w2","name":"Sprint Ladder","description":"Ten sprints, rest between."}
]`

func TestWorkouts_FirstWorkoutSelected(t *testing.T) {
	backend := testutils.NewBackend(t, map[string]string{apiclient.ResourceWorkouts: twoWorkouts})

	panel := testutils.Settle(t, New(backend.Deps(t)).NewPanel())

	require.Equal(t, dataview.Success, panel.State())
	html := testutils.Render(t, panel.Render())
	assert.Contains(t, html, "Neural Training Protocols")
	assert.Contains(t, html, "<h2>Core Reboot</h2>")
	assert.Contains(t, html, DefaultDescription)
	assert.Contains(t, html, "PROTOCOL #")
	assert.Contains(t, html, "N-LVL ")
	assert.Equal(t, 1, strings.Count(html, `class="selected workout-card"`))

	stats := panel.Stats()
	assert.Equal(t, "2", testutils.StatValue(stats, "Protocols"))
	assert.NotEmpty(t, testutils.StatValue(stats, "Avg Neural Load"))

	require.NoError(t, panel.Select("w2"))
	html = testutils.Render(t, panel.Render())
	assert.Contains(t, html, "<h2>Sprint Ladder</h2>")
	assert.Contains(t, html, "Ten sprints, rest between.")
	assert.NotContains(t, html, DefaultDescription)
}

func TestWorkouts_NoData(t *testing.T) {
	tests := map[string]testutils.Response{
		"empty array": {Status: http.StatusOK, Body: `[]`},
		"not found":   {Status: http.StatusNotFound, Body: `{"detail":"Not found."}`},
		"plain text":  {Status: http.StatusOK, Body: `hello`},
	}
	for name, res := range tests {
		t.Run(name, func(t *testing.T) {
			backend := testutils.NewBackend(t, nil)
			backend.Set(apiclient.ResourceWorkouts, res)

			panel := testutils.Settle(t, New(backend.Deps(t)).NewPanel())

			html := testutils.Render(t, panel.Render())
			assert.Contains(t, html, EmptyMessage)
			assert.NotContains(t, html, "workout-detail")
			assert.Nil(t, panel.Stats())
		})
	}
}

func TestMatrix(t *testing.T) {
	fx := newMatrix(decor.Seeded(2))
	frame := fx.Frame()
	require.Len(t, frame.Cells, matrixRows)
	for _, row := range frame.Cells {
		assert.Len(t, row, matrixCols)
	}

	var got []int
	for range 4 {
		fx.Step(0)
		got = append(got, fx.Frame().Phase)
	}
	assert.Equal(t, []int{1, 2, 0, 1}, got)

	html := testutils.Render(t, Render(dataview.Snapshot[Card]{ID: "m7", State: dataview.Loading}, fx.Frame()))
	assert.Contains(t, html, "COMPILING NEURAL TRAINING PROTOCOLS")
	assert.Contains(t, html, "rotate(120deg)")
	assert.Equal(t, matrixRows*matrixCols, strings.Count(html, "matrix-cell"))
}

func TestDecorate(t *testing.T) {
	cards := decorate(decor.Seeded(13), make([]Card, 100))
	for _, c := range cards {
		assert.GreaterOrEqual(t, c.Load, 0)
		assert.LessOrEqual(t, c.Load, 99)
		assert.GreaterOrEqual(t, c.Level, 1)
		assert.LessOrEqual(t, c.Level, 5)
		assert.GreaterOrEqual(t, c.Efficiency, 70)
		assert.LessOrEqual(t, c.Efficiency, 99)
		assert.Regexp(t, `^[0-9A-F]{8}$`, c.Signature)
		assert.GreaterOrEqual(t, c.Strain, 1)
		assert.LessOrEqual(t, c.Strain, 10)
		assert.GreaterOrEqual(t, len(c.Segments), 3)
		assert.LessOrEqual(t, len(c.Segments), 5)
		assert.Equal(t, "NEURAL CALIBRATION", c.Segments[0].Name)
	}
}

func TestPattern(t *testing.T) {
	pts := Pattern("FF00800F")
	require.Len(t, pts, 4)
	assert.Equal(t, Point{X: 0, Y: 100, Intensity: 15.0 / 16}, pts[0])
	assert.Equal(t, Point{X: 25, Y: 0, Intensity: 0}, pts[1])
	assert.InDelta(t, 50.2, pts[2].Y, 0.01)
	assert.Equal(t, 75.0, pts[3].X)
	assert.Empty(t, Pattern(""))
}

func TestCard(t *testing.T) {
	c := Card{Workout: domain.Workout{Name: "x"}, Signature: "ABCDEF12"}
	assert.Equal(t, "PROTOCOL #ABCDEF", c.ProtocolID())
	assert.Equal(t, DefaultDescription, c.Details())

	assert.Equal(t, "red", LoadBand(81))
	assert.Equal(t, "yellow", LoadBand(80))
	assert.Equal(t, "yellow", LoadBand(51))
	assert.Equal(t, "green", LoadBand(50))
}

func TestAverageLoad(t *testing.T) {
	assert.Equal(t, 0, AverageLoad(nil))
	assert.Equal(t, 51, AverageLoad([]Card{{Load: 50}, {Load: 51}}), "50.5 rounds up")
	assert.Equal(t, "%", Stats([]Card{{Load: 10}})[1].Unit)
}
