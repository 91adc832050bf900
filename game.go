package royalset

// HandSize is the number of cards dealt at the start of every hole.
const HandSize = 3

// RerollCost is the score paid for a reroll once the free ones are used up.
const RerollCost = 5

// Phase is where a hole stands. It is derived from the round flags.
type Phase string

const (
	PhaseDiscard  Phase = "discard"
	PhaseRoll     Phase = "roll"
	PhaseLockIn   Phase = "lock_in"
	PhaseGameOver Phase = "game_over"
)

// Game is one player's run over a fixed number of holes. Every transition
// either applies completely and reports true, or leaves the game untouched
// and reports false. A Game is not safe for concurrent use.
type Game struct {
	holes  int
	ledger *Ledger
	src    Source
	deck   *Deck

	round int
	score int
	over  bool

	hand      []Card
	selected  []bool
	dice      *Pool
	rolled    bool
	rollCount int
	maxRolls  int
	discarded bool
}

func NewGame(holes int, ledger *Ledger, src Source) (*Game, error) {
	if !validMode(holes) {
		return nil, ErrInvalidHoles
	}
	if ledger == nil {
		ledger = NewLedger()
	}

	g := &Game{
		holes:  holes,
		ledger: ledger,
		src:    src,
		deck:   NewDeck(src),
		round:  1,
	}
	g.deal()
	return g, nil
}

func (g *Game) deal() {
	g.hand = g.deck.Deal(HandSize)
	g.selected = make([]bool, len(g.hand))
	g.discarded = false
	g.resetDice()
}

// resetDice sizes the dice to the current hand and clears roll accounting.
func (g *Game) resetDice() {
	count, maxRolls := DiceConfig(len(g.hand))
	g.dice = NewPool(count)
	g.maxRolls = maxRolls
	g.rolled = false
	g.rollCount = 0
}

func (g *Game) Holes() int {
	return g.holes
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) GameOver() bool {
	return g.over
}

func (g *Game) Hand() []Card {
	hand := make([]Card, len(g.hand))
	copy(hand, g.hand)
	return hand
}

func (g *Game) Phase() Phase {
	switch {
	case g.over:
		return PhaseGameOver
	case g.rolled:
		return PhaseLockIn
	case !g.discarded:
		return PhaseDiscard
	}
	return PhaseRoll
}

func (g *Game) CanDiscard() bool {
	return !g.over && !g.discarded && !g.rolled
}

// ToggleSelect marks or unmarks hand card i for discard.
func (g *Game) ToggleSelect(i int) bool {
	if !g.CanDiscard() || i < 0 || i >= len(g.hand) {
		return false
	}
	g.selected[i] = !g.selected[i]
	return true
}

// DiscardSelected discards the cards currently marked with ToggleSelect.
func (g *Game) DiscardSelected() bool {
	var indices []int
	for i, s := range g.selected {
		if s {
			indices = append(indices, i)
		}
	}
	return g.Discard(indices...)
}

// Discard replaces the cards at the given hand positions with fresh ones from
// the deck. It can be used once per hole, before rolling. An empty selection
// does not use up the discard, and any out of range index rejects the whole
// request.
func (g *Game) Discard(indices ...int) bool {
	if !g.CanDiscard() || len(indices) == 0 {
		return false
	}

	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(g.hand) {
			return false
		}
		drop[i] = true
	}

	size := len(g.hand)
	kept := make([]Card, 0, size)
	for i, c := range g.hand {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	g.hand = append(kept, g.deck.Deal(size-len(kept))...)
	g.discarded = true
	g.selected = make([]bool, len(g.hand))
	g.resetDice()
	return true
}

func (g *Game) CanRoll() bool {
	return !g.over && !g.rolled
}

// Roll makes the first roll of the hole.
func (g *Game) Roll() bool {
	if !g.CanRoll() {
		return false
	}
	g.dice.Roll(g.src)
	g.rolled = true
	g.rollCount = 1
	return true
}

// rerollCost picks the budget a reroll would be charged under, and reports
// whether a reroll is possible at all. Free rerolls are tried first; once they
// are spent the reroll costs RerollCost, as long as rolls remain.
func (g *Game) rerollCost() (int, bool) {
	if g.over || !g.rolled || g.rollCount >= g.maxRolls {
		return 0, false
	}

	switch {
	case len(g.hand) == 3 && g.rollCount < 2:
		return 0, g.dice.AnyUnheld()
	case len(g.hand) == 2 && g.rollCount < 1:
		return 0, g.dice.AnyUnheld()
	case g.score >= RerollCost && g.dice.AnyUnheld():
		return RerollCost, true
	}
	return 0, false
}

func (g *Game) CanReroll() bool {
	_, ok := g.rerollCost()
	return ok
}

// Reroll rerolls every die that is not held.
func (g *Game) Reroll() bool {
	cost, ok := g.rerollCost()
	if !ok {
		return false
	}
	g.score -= cost
	g.dice.Reroll(g.src)
	g.rollCount++
	return true
}

// ToggleHold holds or releases die i. Dice can only be held once rolled.
func (g *Game) ToggleHold(i int) bool {
	if g.over || !g.rolled {
		return false
	}
	return g.dice.ToggleHold(i)
}

func (g *Game) CanLockIn() bool {
	return !g.over && g.rolled
}

// LockIn scores the hole, records the running score in the ledger and moves
// on to the next hole. The second result reports whether that was the last
// hole.
func (g *Game) LockIn() (applied bool, over bool) {
	if !g.CanLockIn() {
		return false, g.over
	}

	g.score += Classify(g.hand).Value() * Multiplier(g.hand, g.dice)
	g.ledger.Record(g.holes, g.score)
	g.round++
	if g.round > g.holes {
		g.over = true
		return true, true
	}

	g.deal()
	return true, false
}

// Preview is the score the hand would earn if locked in now.
type Preview struct {
	Pattern    Pattern `json:"pattern"`
	Base       int     `json:"base"`
	Multiplier int     `json:"multiplier"`
}

func (p Preview) Total() int {
	return p.Base * p.Multiplier
}

func (g *Game) Preview() Preview {
	pattern := Classify(g.hand)
	mult := 1
	if g.rolled {
		mult = Multiplier(g.hand, g.dice)
	}
	return Preview{
		Pattern:    pattern,
		Base:       pattern.Value(),
		Multiplier: mult,
	}
}

// State is a plain snapshot of a game for display.
type State struct {
	Phase     Phase   `json:"phase"`
	Round     int     `json:"round"`
	Holes     int     `json:"holes"`
	Score     int     `json:"score"`
	HighScore int     `json:"high_score"`
	Hand      []Card  `json:"hand"`
	Selected  []bool  `json:"selected"`
	Dice      []Rank  `json:"dice"`
	Held      []bool  `json:"held"`
	Rolled    bool    `json:"rolled"`
	RollCount int     `json:"roll_count"`
	MaxRolls  int     `json:"max_rolls"`
	Discarded bool    `json:"discarded"`
	GameOver  bool    `json:"game_over"`
	Preview   Preview `json:"preview"`

	CanDiscard bool `json:"can_discard"`
	CanRoll    bool `json:"can_roll"`
	CanReroll  bool `json:"can_reroll"`
	CanLockIn  bool `json:"can_lock_in"`
}

func (g *Game) Snapshot() State {
	selected := make([]bool, len(g.selected))
	copy(selected, g.selected)

	return State{
		Phase:      g.Phase(),
		Round:      g.round,
		Holes:      g.holes,
		Score:      g.score,
		HighScore:  g.ledger.Best(g.holes),
		Hand:       g.Hand(),
		Selected:   selected,
		Dice:       g.dice.Faces(),
		Held:       g.dice.Held(),
		Rolled:     g.rolled,
		RollCount:  g.rollCount,
		MaxRolls:   g.maxRolls,
		Discarded:  g.discarded,
		GameOver:   g.over,
		Preview:    g.Preview(),
		CanDiscard: g.CanDiscard(),
		CanRoll:    g.CanRoll(),
		CanReroll:  g.CanReroll(),
		CanLockIn:  g.CanLockIn(),
	}
}
