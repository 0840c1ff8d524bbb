package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/report"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(nil)
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	assert.Equal(t, []string{"m3", "m4", "m5", "m6", "m7"}, g.Messages)

	g.ClearMessages()
	assert.Empty(t, g.Messages)
}

func TestGame_ForwardsToReporter(t *testing.T) {
	r := report.New(nil)
	s, err := r.NewSession("demo")
	require.NoError(t, err)
	g := NewGame(r)

	require.NoError(t, g.ReportAction("memory", activity.Action{Type: activity.ActionMatch, OK: true, Score: 1}))
	require.NoError(t, g.ReportAction("memory", activity.Action{Type: activity.ActionMatch}))
	require.NoError(t, g.ReportActivityEnd("memory", true))

	require.Len(t, s.Activities, 1)
	assert.Equal(t, 2, s.Activities[0].NumActions())
	assert.True(t, s.Activities[0].Solved)
	assert.True(t, g.IsCompleted("memory"))
	require.Len(t, g.Messages, 3)
	assert.Contains(t, g.Messages[0], "MATCH_OK")
	assert.Contains(t, g.Messages[1], "MATCH_FAIL")
	assert.Contains(t, g.Messages[2], "ACTIVITY_DONE")
}

func TestGame_WithoutReporter(t *testing.T) {
	g := NewGame(nil)
	assert.NoError(t, g.ReportAction("crossword", activity.Action{Type: activity.ActionWrite, OK: true}))
	assert.Empty(t, g.Messages, "typing is not logged")
	assert.NoError(t, g.ReportActivityEnd("crossword", false))
	assert.False(t, g.IsCompleted("crossword"))
}

func TestGame_ReporterErrorsSurface(t *testing.T) {
	g := NewGame(report.New(nil))
	err := g.ReportAction("order", activity.Action{Type: activity.ActionPlace, Source: "b"})
	assert.Error(t, err, "no session open")
	assert.Contains(t, g.Messages[0], "PLACE_FAIL")
}
