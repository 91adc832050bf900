package royalset

import "encoding/json"

// Pattern is the named shape of a hand.
type Pattern int

const (
	PatternNothing       Pattern = 0
	PatternHighCard      Pattern = 1
	PatternPair          Pattern = 2
	PatternStraight      Pattern = 3
	PatternFlush         Pattern = 4
	PatternFlushedPair   Pattern = 5
	PatternPairedFlush   Pattern = 6
	PatternTrips         Pattern = 7
	PatternTripleDouble  Pattern = 8
	PatternStraightFlush Pattern = 9
	PatternRoyalFlush    Pattern = 10
	PatternRoyalSet      Pattern = 11
)

func (p Pattern) String() string {
	switch p {
	case PatternNothing:
		return "Nothing"
	case PatternHighCard:
		return "High Card"
	case PatternPair:
		return "Pair"
	case PatternStraight:
		return "Straight"
	case PatternFlush:
		return "Flush"
	case PatternFlushedPair:
		return "Flushed Pair"
	case PatternPairedFlush:
		return "Paired Flush"
	case PatternTrips:
		return "Trips"
	case PatternTripleDouble:
		return "Triple Double"
	case PatternStraightFlush:
		return "Straight Flush"
	case PatternRoyalFlush:
		return "Royal Flush"
	case PatternRoyalSet:
		return "Royal Set"
	}
	return "Unknown"
}

// Value is the base score of the pattern. Note Trips outscores Triple Double.
func (p Pattern) Value() int {
	switch p {
	case PatternHighCard:
		return 1
	case PatternPair:
		return 2
	case PatternStraight:
		return 3
	case PatternFlush:
		return 5
	case PatternFlushedPair:
		return 10
	case PatternPairedFlush:
		return 15
	case PatternTrips:
		return 25
	case PatternTripleDouble:
		return 20
	case PatternStraightFlush:
		return 30
	case PatternRoyalFlush:
		return 40
	case PatternRoyalSet:
		return 50
	}
	return 0
}

func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

type handShape struct {
	rankCounts map[Rank]int
	suitCounts map[Suit]int
	straight   bool
}

func shapeOf(hand []Card) handShape {
	s := handShape{
		rankCounts: make(map[Rank]int),
		suitCounts: make(map[Suit]int),
	}
	for _, c := range hand {
		s.rankCounts[c.rank]++
		s.suitCounts[c.suit]++
	}

	if len(hand) == 3 && len(s.rankCounts) == 3 {
		lo, hi := hand[0].rank, hand[0].rank
		for _, c := range hand[1:] {
			if c.rank < lo {
				lo = c.rank
			}
			if c.rank > hi {
				hi = c.rank
			}
		}
		s.straight = hi-lo == 2
	}
	return s
}

func (s handShape) hasRankCount(n int) bool {
	for _, c := range s.rankCounts {
		if c == n {
			return true
		}
	}
	return false
}

func (s handShape) maxSuitCount() int {
	var most int
	for _, c := range s.suitCounts {
		if c > most {
			most = c
		}
	}
	return most
}

func (s handShape) oneSuit() bool {
	return len(s.suitCounts) == 1
}

func (s handShape) isRoyal() bool {
	if len(s.rankCounts) != 3 {
		return false
	}
	for _, r := range []Rank{RankAce, RankKing, RankQueen} {
		if s.rankCounts[r] == 0 {
			return false
		}
	}
	return true
}

// pairSuited reports whether the two cards of the paired rank share a suit.
func pairSuited(hand []Card, s handShape) bool {
	var pair Rank
	for r, c := range s.rankCounts {
		if c == 2 {
			pair = r
			break
		}
	}
	suits := make(map[Suit]bool)
	for _, c := range hand {
		if c.rank == pair {
			suits[c.suit] = true
		}
	}
	return len(suits) == 1
}

// Classify names the pattern of a hand of up to three cards. Rules are tried
// in a fixed order and the first match wins. An empty hand is PatternNothing.
func Classify(hand []Card) Pattern {
	if len(hand) == 0 {
		return PatternNothing
	}

	s := shapeOf(hand)
	trips := s.hasRankCount(3)
	pair := s.hasRankCount(2)

	switch {
	case len(s.rankCounts) == 1 && s.oneSuit():
		return PatternRoyalSet
	case s.isRoyal() && s.oneSuit():
		return PatternRoyalFlush
	case s.straight && s.oneSuit():
		return PatternStraightFlush
	// Triple Double and Trips split three of a kind by suit count, so they
	// can never both match.
	case trips && len(s.suitCounts) == 2 && s.maxSuitCount() == 2:
		return PatternTripleDouble
	case trips && len(s.suitCounts) == 3:
		return PatternTrips
	case s.oneSuit() && pair:
		return PatternPairedFlush
	case pair && pairSuited(hand, s) && !s.oneSuit():
		return PatternFlushedPair
	case s.oneSuit() && !pair && !s.straight:
		return PatternFlush
	case s.straight && !s.oneSuit():
		return PatternStraight
	case pair:
		return PatternPair
	}
	return PatternHighCard
}
