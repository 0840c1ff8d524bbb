package report

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/game/activity"
	gameerrors "boxplay/pkg/game/errors"
)

// fixedClock returns a reporter whose clock advances one second per reading
func fixedClock(t *testing.T) *Reporter {
	t.Helper()
	r := New(nil)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return r
}

func TestReporter_RequiresSession(t *testing.T) {
	r := New(nil)
	err := r.ReportAction("memory", activity.Action{Type: activity.ActionMatch})
	assert.True(t, gameerrors.Is(err, gameerrors.ErrNotFound))
	_, err = r.NewActivity("memory")
	assert.Error(t, err)
}

func TestReporter_SessionIDs(t *testing.T) {
	r := fixedClock(t)
	s1, err := r.NewSession("demo")
	require.NoError(t, err)
	s2, err := r.NewSession("demo")
	require.NoError(t, err)

	_, err = ulid.ParseStrict(s1.ID)
	require.NoError(t, err)
	assert.NotEqual(t, s1.ID, s2.ID)
	assert.Len(t, r.Sessions(), 2)
	assert.Same(t, s2, r.Session())
}

func TestReporter_RecordsActions(t *testing.T) {
	r := fixedClock(t)
	s, err := r.NewSession("demo")
	require.NoError(t, err)

	require.NoError(t, r.ReportAction("memory", activity.Action{Type: activity.ActionMatch, Source: "X", Dest: "Y", OK: false}))
	require.NoError(t, r.ReportAction("memory", activity.Action{Type: activity.ActionMatch, Source: "X", Dest: "X", OK: true, Score: 1, Progress: 0.5}))
	require.NoError(t, r.ReportAction("memory", activity.Action{Type: activity.ActionMatch, Source: "Y", Dest: "Y", OK: true, Score: 2, Progress: 1}))
	require.NoError(t, r.ReportActivityEnd("memory", true))

	require.Len(t, s.Activities, 1)
	rec := s.Activities[0]
	assert.True(t, rec.Closed)
	assert.True(t, rec.Solved)
	assert.Equal(t, 3, rec.NumActions())
	assert.Equal(t, 66, rec.Precision())
	assert.Equal(t, 2, rec.Score)
	assert.Equal(t, 1.0, rec.Progress)
	assert.True(t, s.Played("memory"))
	assert.False(t, s.Played("order"))
	assert.Nil(t, s.Current("memory"))

	sum := s.Summary()
	assert.Equal(t, Summary{Activities: 1, Solved: 1, Actions: 3, Score: 2, Precision: 66}, sum)
}

func TestReporter_RestartClosesPreviousRun(t *testing.T) {
	r := fixedClock(t)
	s, err := r.NewSession("demo")
	require.NoError(t, err)

	first, err := r.NewActivity("order")
	require.NoError(t, err)
	second, err := r.NewActivity("order")
	require.NoError(t, err)

	assert.True(t, first.Closed)
	assert.False(t, first.Solved)
	assert.Same(t, second, s.Current("order"))

	r.EndSession()
	assert.True(t, second.Closed)
	assert.Nil(t, r.Session())
}

func TestReporter_Counters(t *testing.T) {
	r := fixedClock(t)
	_, err := r.NewSession("demo")
	require.NoError(t, err)
	require.NoError(t, r.ReportAction("crossword", activity.Action{Type: activity.ActionWrite, OK: true, Score: 4}))

	actions, score, elapsed := r.Counters("crossword")
	assert.Equal(t, 1, actions.Value())
	assert.Equal(t, 4, score.Value())
	assert.Positive(t, elapsed.Value())

	actions, _, _ = r.Counters("wordsearch")
	assert.Zero(t, actions.Value())
}

func TestCounter_Display(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		countDown int
		enabled   bool
		want      string
	}{
		{"plain", 7, 0, true, "  7"},
		{"clamped high", 1500, 0, true, "999"},
		{"clamped low", -3, 0, true, "  0"},
		{"count down", 4, 10, true, "  6"},
		{"count down exhausted", 12, 10, true, "  0"},
		{"disabled", 5, 0, false, "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter(CounterScore)
			c.Set(tt.value)
			c.SetCountDown(tt.countDown)
			c.SetEnabled(tt.enabled)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestCounter_IncrAndClear(t *testing.T) {
	c := NewCounter(CounterActions)
	c.Incr()
	c.Incr()
	assert.Equal(t, 2, c.Value())
	c.Clear()
	assert.Zero(t, c.Value())
	assert.True(t, c.Enabled())
}
