package puzzles

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/engine/textgrid"
	"boxplay/pkg/game/activity"
	gameerrors "boxplay/pkg/game/errors"
)

func pos(x, y int) textgrid.Pos {
	return textgrid.Pos{X: x, Y: y}
}

func TestEveryKindHasAPuzzle(t *testing.T) {
	for _, k := range activity.Kinds() {
		p, err := Find(k, "")
		require.NoError(t, err, k.String())
		assert.Equal(t, k, p.Kind)
	}
}

func TestFind_UnknownName(t *testing.T) {
	_, err := Find(activity.KindMatching, "planets")
	assert.True(t, gameerrors.Is(err, gameerrors.ErrNotFound))
}

func TestEveryPuzzleBuildsAndStarts(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			ctrl, err := p.Build(activity.Options{})
			require.NoError(t, err)
			assert.Equal(t, p.Name, ctrl.Name())
			ctrl.Start(rand.New(rand.NewPCG(1, 1)))
			assert.True(t, ctrl.Playing())
		})
	}
}

func TestWordSearchWordsAreHidden(t *testing.T) {
	for _, p := range ForKind(activity.KindWordSearch) {
		ctrl, err := p.Build(activity.Options{})
		require.NoError(t, err)
		ws := ctrl.(*activity.WordSearch)
		ws.Start(nil)
		ws.SelectCells(pos(0, 0), pos(3, 0))
		assert.True(t, ws.IsFound("PEAR"))
		ws.SelectCells(pos(0, 0), pos(3, 3))
		assert.True(t, ws.IsFound("PLUM"))
		ws.SelectCells(pos(4, 1), pos(4, 3))
		assert.True(t, ws.IsFound("FIG"))
		ws.SelectCells(pos(3, 4), pos(0, 4))
		assert.True(t, ws.Finished())
	}
}

func TestCrosswordSolvable(t *testing.T) {
	p, err := Find(activity.KindCrossword, "colors")
	require.NoError(t, err)
	ctrl, err := p.Build(activity.Options{})
	require.NoError(t, err)
	cw := ctrl.(*activity.Crossword)
	cw.Start(nil)

	for _, ch := range "PINKAVSKY" {
		cw.TypeChar(ch)
	}
	assert.True(t, cw.Finished())
}
