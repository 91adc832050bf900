package royalset

// Source supplies randomness for deals and dice. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// deckCopies is how many full rank x suit sets make up a fresh deck.
const deckCopies = 3

// DeckSize is the number of cards in a freshly filled deck.
var DeckSize = deckCopies * len(AllSuits()) * len(AllRanks())

// Deck is an auto-replenishing supply of cards. It refills and reshuffles
// itself whenever a deal would exhaust it.
type Deck struct {
	src   Source
	cards []Card
}

func NewDeck(src Source) *Deck {
	d := &Deck{src: src}
	d.refill()
	return d
}

func (d *Deck) refill() {
	cards := make([]Card, 0, DeckSize)
	for i := 0; i < deckCopies; i++ {
		for _, s := range AllSuits() {
			for _, r := range AllRanks() {
				cards = append(cards, NewCard(s, r))
			}
		}
	}
	d.cards = cards
	d.Shuffle()
}

func (d *Deck) Shuffle() {
	d.src.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes n cards from the deck. If fewer than n remain the deck is
// refilled first, so Deal always returns exactly n cards for n <= DeckSize.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return nil
	}
	if len(d.cards) < n {
		d.refill()
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[len(d.cards)-n:])
	d.cards = d.cards[:len(d.cards)-n]
	return dealt
}

func (d *Deck) Size() int {
	return len(d.cards)
}
