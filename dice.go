package royalset

// DiceConfig maps a hand size to the number of dice and the number of rolls
// (first roll included) that hand gets.
func DiceConfig(handSize int) (count, maxRolls int) {
	switch handSize {
	case 3:
		return 3, 2
	case 2:
		return 2, 1
	case 1:
		return 1, 1
	}
	return 0, 0
}

// Pool is a fixed set of dice showing rank faces, each of which can be held.
// A pool shows no faces until its first roll.
type Pool struct {
	count int
	faces []Rank
	held  []bool
}

func NewPool(count int) *Pool {
	if count < 0 {
		count = 0
	}
	return &Pool{
		count: count,
		held:  make([]bool, count),
	}
}

func (p *Pool) Count() int {
	return p.count
}

// Faces returns a copy of the faces showing, or nil before the first roll.
func (p *Pool) Faces() []Rank {
	if p.faces == nil {
		return nil
	}
	faces := make([]Rank, len(p.faces))
	copy(faces, p.faces)
	return faces
}

func (p *Pool) Held() []bool {
	held := make([]bool, len(p.held))
	copy(held, p.held)
	return held
}

func randomFace(src Source) Rank {
	ranks := AllRanks()
	return ranks[src.Intn(len(ranks))]
}

// Roll gives every die a fresh face and releases all holds.
func (p *Pool) Roll(src Source) {
	p.faces = make([]Rank, p.count)
	for i := range p.faces {
		p.faces[i] = randomFace(src)
	}
	p.held = make([]bool, p.count)
}

// Reroll gives every die that is not held a fresh face. Held dice keep theirs.
func (p *Pool) Reroll(src Source) {
	if p.faces == nil {
		return
	}
	for i := range p.faces {
		if !p.held[i] {
			p.faces[i] = randomFace(src)
		}
	}
}

// ToggleHold flips the hold on die i. It reports false if i is out of range.
func (p *Pool) ToggleHold(i int) bool {
	if i < 0 || i >= p.count {
		return false
	}
	p.held[i] = !p.held[i]
	return true
}

func (p *Pool) AnyUnheld() bool {
	for _, h := range p.held {
		if !h {
			return true
		}
	}
	return false
}

// Multiplier scores how well the dice match the hand. It counts the distinct
// hand ranks that also show on some die: every rank matched pays 8, otherwise
// two matches pay 4 and one pays 2. Dice that have not been rolled pay 1.
func Multiplier(hand []Card, p *Pool) int {
	if p == nil || len(p.faces) == 0 {
		return 1
	}

	showing := make(map[Rank]bool, len(p.faces))
	for _, f := range p.faces {
		showing[f] = true
	}
	ranks := make(map[Rank]bool, len(hand))
	for _, c := range hand {
		ranks[c.rank] = true
	}
	var matches int
	for r := range ranks {
		if showing[r] {
			matches++
		}
	}

	switch {
	case matches == len(hand):
		return 8
	case matches == 2:
		return 4
	case matches == 1:
		return 2
	}
	return 1
}
