package royalset

import "encoding/json"

type Suit int

const (
	SuitUnknown  Suit = 0
	SuitHearts   Suit = 1
	SuitDiamonds Suit = 2
	SuitClubs    Suit = 3
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	}
	return "?"
}

func AllSuits() []Suit {
	return []Suit{
		SuitHearts,
		SuitDiamonds,
		SuitClubs,
	}
}

// Rank doubles as a die face: the dice carry the same six symbols as the cards.
// Ranks are numbered in straight order so consecutive ranks differ by one.
type Rank int

const (
	RankUnknown Rank = 0
	RankNine    Rank = 1
	RankTen     Rank = 2
	RankJack    Rank = 3
	RankQueen   Rank = 4
	RankKing    Rank = 5
	RankAce     Rank = 6
)

func (r Rank) String() string {
	switch r {
	case RankNine:
		return "9"
	case RankTen:
		return "10"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	}
	return "?"
}

// Value is the point value of a card of this rank.
func (r Rank) Value() int {
	switch r {
	case RankNine:
		return 9
	case RankTen, RankJack, RankQueen, RankKing:
		return 10
	case RankAce:
		return 11
	}
	return 0
}

func (r Rank) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func AllRanks() []Rank {
	return []Rank{
		RankNine,
		RankTen,
		RankJack,
		RankQueen,
		RankKing,
		RankAce,
	}
}

type Card struct {
	suit Suit
	rank Rank
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{suit, rank}
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Value() int {
	return c.rank.Value()
}

func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Suit  string `json:"suit"`
		Rank  string `json:"rank"`
		Value int    `json:"value"`
	}{c.suit.String(), c.rank.String(), c.Value()})
}
