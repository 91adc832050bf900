package royalset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, holes int) *Game {
	t.Helper()
	g, err := NewGame(holes, NewLedger(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	for _, holes := range []int{0, 1, 10, 100, -3} {
		_, err := NewGame(holes, nil, rand.New(rand.NewSource(1)))
		assert.Equal(t, ErrInvalidHoles, err)
	}

	g := newTestGame(t, 9)
	s := g.Snapshot()
	assert.Equal(t, PhaseDiscard, s.Phase)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, 9, s.Holes)
	assert.Equal(t, 0, s.Score)
	assert.Len(t, s.Hand, 3)
	assert.Equal(t, []bool{false, false, false}, s.Selected)
	assert.Nil(t, s.Dice)
	assert.Equal(t, []bool{false, false, false}, s.Held)
	assert.Equal(t, 2, s.MaxRolls)
	assert.Equal(t, 0, s.RollCount)
	assert.False(t, s.Rolled)
	assert.False(t, s.Discarded)
	assert.Equal(t, 1, s.Preview.Multiplier)
	assert.True(t, s.CanDiscard)
	assert.True(t, s.CanRoll)
	assert.False(t, s.CanReroll)
	assert.False(t, s.CanLockIn)
}

func TestDiscardEmptySelection(t *testing.T) {
	g := newTestGame(t, 9)
	before := g.Snapshot()

	assert.False(t, g.Discard())
	assert.False(t, g.DiscardSelected())
	assert.Equal(t, before, g.Snapshot())
	assert.True(t, g.CanDiscard())
}

func TestDiscardRedeals(t *testing.T) {
	g := newTestGame(t, 9)
	kept := g.Hand()[1]

	assert.True(t, g.Discard(0, 2))

	s := g.Snapshot()
	assert.Len(t, s.Hand, 3)
	assert.Equal(t, kept, s.Hand[0])
	assert.True(t, s.Discarded)
	assert.Equal(t, PhaseRoll, s.Phase)
	assert.Equal(t, 3, g.dice.Count())
	assert.Equal(t, 2, s.MaxRolls)
	assert.Equal(t, 0, s.RollCount)
	assert.False(t, s.Rolled)
	assert.Equal(t, []bool{false, false, false}, s.Selected)

	// One discard per hole.
	hand := g.Hand()
	assert.False(t, g.Discard(1))
	assert.Equal(t, hand, g.Hand())
}

func TestDiscardSelected(t *testing.T) {
	g := newTestGame(t, 9)
	kept := g.Hand()[0]

	assert.True(t, g.ToggleSelect(1))
	assert.True(t, g.ToggleSelect(2))
	assert.True(t, g.ToggleSelect(2))
	assert.True(t, g.ToggleSelect(2))
	assert.False(t, g.ToggleSelect(3))
	assert.False(t, g.ToggleSelect(-1))
	assert.Equal(t, []bool{false, true, true}, g.Snapshot().Selected)

	assert.True(t, g.DiscardSelected())
	assert.Equal(t, kept, g.Hand()[0])
	assert.Equal(t, []bool{false, false, false}, g.Snapshot().Selected)
	assert.False(t, g.ToggleSelect(0))
}

func TestDiscardInvalid(t *testing.T) {
	g := newTestGame(t, 9)
	before := g.Snapshot()

	assert.False(t, g.Discard(0, 3))
	assert.False(t, g.Discard(-1))
	assert.Equal(t, before, g.Snapshot())

	require.True(t, g.Roll())
	hand := g.Hand()
	assert.False(t, g.Discard(0))
	assert.False(t, g.ToggleSelect(0))
	assert.Equal(t, hand, g.Hand())
}

func TestRoll(t *testing.T) {
	g := newTestGame(t, 9)
	assert.False(t, g.ToggleHold(0))

	assert.True(t, g.Roll())
	s := g.Snapshot()
	assert.Equal(t, PhaseLockIn, s.Phase)
	assert.True(t, s.Rolled)
	assert.Equal(t, 1, s.RollCount)
	assert.Len(t, s.Dice, 3)
	assert.False(t, s.CanDiscard)
	assert.True(t, s.CanLockIn)
	assert.True(t, s.CanReroll)

	assert.False(t, g.Roll())
	assert.Equal(t, 1, g.rollCount)
}

func TestRerollBudget(t *testing.T) {
	g := newTestGame(t, 9)
	require.True(t, g.Roll())

	assert.True(t, g.ToggleHold(0))
	held := g.dice.Faces()[0]
	assert.True(t, g.Reroll())
	assert.Equal(t, 2, g.rollCount)
	assert.Equal(t, held, g.dice.Faces()[0])
	assert.Equal(t, 0, g.Score())

	// Rolls are used up; a third attempt changes nothing, score or not.
	for _, score := range []int{3, 50} {
		g.score = score
		faces := g.dice.Faces()
		assert.False(t, g.CanReroll())
		assert.False(t, g.Reroll())
		assert.Equal(t, score, g.Score())
		assert.Equal(t, 2, g.rollCount)
		assert.Equal(t, faces, g.dice.Faces())
	}
}

func TestRerollAllHeld(t *testing.T) {
	g := newTestGame(t, 9)
	require.True(t, g.Roll())
	for i := 0; i < 3; i++ {
		require.True(t, g.ToggleHold(i))
	}
	assert.False(t, g.ToggleHold(3))

	g.score = 20
	faces := g.dice.Faces()
	assert.False(t, g.Reroll())
	assert.Equal(t, 1, g.rollCount)
	assert.Equal(t, 20, g.Score())
	assert.Equal(t, faces, g.dice.Faces())
}

func TestPaidReroll(t *testing.T) {
	g := newTestGame(t, 9)
	require.True(t, g.Roll())
	require.True(t, g.Reroll())
	g.maxRolls = 4

	g.score = 4
	assert.False(t, g.Reroll())
	assert.Equal(t, 4, g.Score())
	assert.Equal(t, 2, g.rollCount)

	g.score = 12
	assert.True(t, g.Reroll())
	assert.Equal(t, 7, g.Score())
	assert.Equal(t, 3, g.rollCount)

	assert.True(t, g.Reroll())
	assert.Equal(t, 2, g.Score())
	assert.False(t, g.Reroll())
	assert.Equal(t, 4, g.rollCount)
}

func TestSmallHandsGetOneRoll(t *testing.T) {
	for _, size := range []int{1, 2} {
		g := newTestGame(t, 9)
		g.hand = g.hand[:size]
		g.selected = g.selected[:size]
		g.resetDice()
		g.score = 100

		assert.Equal(t, size, g.dice.Count())
		assert.Equal(t, 1, g.maxRolls)

		require.True(t, g.Roll())
		assert.Len(t, g.dice.Faces(), size)
		assert.False(t, g.Reroll())
		assert.Equal(t, 100, g.Score())
		assert.Equal(t, 1, g.rollCount)
	}
}

func TestLockInScoresStraightFlush(t *testing.T) {
	g := newTestGame(t, 9)
	g.hand = []Card{
		{SuitHearts, RankNine},
		{SuitHearts, RankTen},
		{SuitHearts, RankJack},
	}
	require.True(t, g.Roll())
	g.dice.faces = []Rank{RankNine, RankTen, RankJack}

	assert.Equal(t, Preview{PatternStraightFlush, 30, 8}, g.Preview())
	assert.Equal(t, 240, g.Preview().Total())

	applied, over := g.LockIn()
	assert.True(t, applied)
	assert.False(t, over)

	s := g.Snapshot()
	assert.Equal(t, 240, s.Score)
	assert.Equal(t, 240, s.HighScore)
	assert.Equal(t, 2, s.Round)
	assert.Equal(t, PhaseDiscard, s.Phase)
	assert.Len(t, s.Hand, 3)
	assert.Nil(t, s.Dice)
	assert.False(t, s.Rolled)
	assert.False(t, s.Discarded)
	assert.Equal(t, 0, s.RollCount)
	assert.Equal(t, 2, s.MaxRolls)
}

func TestLockInBeforeRoll(t *testing.T) {
	g := newTestGame(t, 9)
	before := g.Snapshot()

	applied, over := g.LockIn()
	assert.False(t, applied)
	assert.False(t, over)
	assert.Equal(t, before, g.Snapshot())
}

func TestGameOver(t *testing.T) {
	ledger := NewLedger()
	g, err := NewGame(3, ledger, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for hole := 1; hole <= 3; hole++ {
		require.True(t, g.Roll())
		applied, over := g.LockIn()
		require.True(t, applied)
		assert.Equal(t, hole == 3, over)
	}

	assert.True(t, g.GameOver())
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 4, g.Round())
	assert.True(t, g.Score() > 0)
	assert.Equal(t, g.Score(), ledger.Best(3))

	score := g.Score()
	assert.False(t, g.Roll())
	assert.False(t, g.Reroll())
	assert.False(t, g.ToggleHold(0))
	assert.False(t, g.Discard(0))
	applied, over := g.LockIn()
	assert.False(t, applied)
	assert.True(t, over)
	assert.Equal(t, score, g.Score())
}

func TestLedgerKeepsBestAcrossGames(t *testing.T) {
	ledger := NewLedger()
	first, err := NewGame(3, ledger, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	first.score = 500
	require.True(t, first.Roll())
	first.LockIn()
	best := ledger.Best(3)
	assert.True(t, best >= 500)

	second, err := NewGame(3, ledger, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.True(t, second.Roll())
	second.LockIn()
	assert.Equal(t, best, ledger.Best(3))
	assert.Equal(t, best, second.Snapshot().HighScore)
	assert.Equal(t, 0, ledger.Best(9))
}
