package royalset

import (
	"errors"
	"strings"
	"sync"
)

// Player is one connected client and the game it is currently playing.
type Player struct {
	id   string
	addr string
	src  Source

	mu   sync.Mutex
	game *Game
}

func NewPlayer(id, addr string, src Source) (*Player, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("invalid player id")
	}
	if src == nil {
		return nil, errors.New("invalid random source")
	}

	return &Player{id: id, addr: addr, src: src}, nil
}
