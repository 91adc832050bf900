package royalset

import (
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrUnknownPlayer  = errors.New("player not found")
	ErrNoGame         = errors.New("start a game first")
)

// Manager routes client messages to each player's game. All players share
// one Ledger.
type Manager struct {
	ledger       *Ledger
	seed         int64
	defaultHoles int

	playersMu sync.Mutex
	players   map[string]*Player
	opened    int64
}

// NewManager returns a Manager whose players draw their randomness from
// sources derived from seed.
func NewManager(ledger *Ledger, seed int64) *Manager {
	if ledger == nil {
		ledger = NewLedger()
	}
	return &Manager{
		ledger:       ledger,
		seed:         seed,
		defaultHoles: 9,
		players:      make(map[string]*Player),
	}
}

// SetDefaultHoles sets the mode used by new_game messages that name none.
func (m *Manager) SetDefaultHoles(holes int) error {
	if !validMode(holes) {
		return ErrInvalidHoles
	}
	m.defaultHoles = holes
	return nil
}

func (m *Manager) Ledger() *Ledger {
	return m.ledger
}

// Open registers a new player and returns its id.
func (m *Manager) Open(addr string) (string, error) {
	m.playersMu.Lock()
	defer m.playersMu.Unlock()

	m.opened++
	src := rand.New(rand.NewSource(m.seed + m.opened))
	player, err := NewPlayer(uuid.NewString(), addr, src)
	if err != nil {
		return "", err
	}
	m.players[player.id] = player

	log.Printf("%s -> %s: open", addr, player.id)
	return player.id, nil
}

func (m *Manager) Close(id string) {
	m.playersMu.Lock()
	defer m.playersMu.Unlock()

	if p, ok := m.players[id]; ok {
		log.Printf("%s -> %s: close", p.addr, id)
		delete(m.players, id)
	}
}

func (m *Manager) player(id string) (*Player, error) {
	m.playersMu.Lock()
	defer m.playersMu.Unlock()

	p, ok := m.players[id]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	return p, nil
}

// Handle applies msg to the player's game and returns the reply to send.
func (m *Manager) Handle(id string, msg *Message) (*Message, error) {
	p, err := m.player(id)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	log.Printf("%s -> %s: %s (%s)", p.addr, p.id, msg.Type, string(msg.Data))

	switch msg.Type {
	case "new_game":
		var data NewGameMessage
		if err := unmarshalData(msg, &data); err != nil {
			return nil, err
		}
		return m.newGame(p, data)
	case "ledger":
		return MakeMessage("ledger", LedgerMessage{Scores: m.ledger.Scores()}), nil
	}

	if p.game == nil {
		if isGameMessage(msg.Type) {
			return nil, ErrNoGame
		}
		return nil, ErrUnknownMessage
	}
	g := p.game

	var applied bool
	switch msg.Type {
	case "state":
	case "toggle_select":
		var data IndexMessage
		if err := unmarshalData(msg, &data); err != nil {
			return nil, err
		}
		applied = g.ToggleSelect(data.Index)
	case "discard":
		var data DiscardMessage
		if err := unmarshalData(msg, &data); err != nil {
			return nil, err
		}
		if len(data.Indices) == 0 {
			applied = g.DiscardSelected()
		} else {
			applied = g.Discard(data.Indices...)
		}
	case "roll":
		applied = g.Roll()
	case "reroll":
		applied = g.Reroll()
	case "toggle_hold":
		var data IndexMessage
		if err := unmarshalData(msg, &data); err != nil {
			return nil, err
		}
		applied = g.ToggleHold(data.Index)
	case "lock_in":
		var over bool
		applied, over = g.LockIn()
		if applied && over {
			log.Printf("%s -> %s: game over (%d holes, score %d)", p.addr, p.id, g.Holes(), g.Score())
		}
	default:
		return nil, ErrUnknownMessage
	}

	return stateMessage(g, applied), nil
}

func (m *Manager) newGame(p *Player, data NewGameMessage) (*Message, error) {
	holes := data.Holes
	if holes == 0 {
		holes = m.defaultHoles
	}

	game, err := NewGame(holes, m.ledger, p.src)
	if err != nil {
		return nil, err
	}
	p.game = game

	log.Printf("%s -> %s: new game (%d holes)", p.addr, p.id, holes)
	return stateMessage(game, true), nil
}

func stateMessage(g *Game, applied bool) *Message {
	return MakeMessage("state", StateMessage{
		Applied:  applied,
		GameOver: g.GameOver(),
		State:    g.Snapshot(),
	})
}

func isGameMessage(typ string) bool {
	switch typ {
	case "state", "toggle_select", "discard", "roll", "reroll", "toggle_hold", "lock_in":
		return true
	}
	return false
}

func unmarshalData(msg *Message, v interface{}) error {
	if len(msg.Data) == 0 || string(msg.Data) == "null" {
		return nil
	}
	return json.Unmarshal(msg.Data, v)
}
