package royalset

import "encoding/json"

type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type NewGameMessage struct {
	Holes int `json:"holes"`
}

type IndexMessage struct {
	Index int `json:"index"`
}

// DiscardMessage discards the listed positions, or the current selection
// when Indices is omitted.
type DiscardMessage struct {
	Indices []int `json:"indices,omitempty"`
}

type StateMessage struct {
	Applied  bool  `json:"applied"`
	GameOver bool  `json:"game_over"`
	State    State `json:"state"`
}

type LedgerMessage struct {
	Scores []LedgerEntry `json:"scores"`
}

func MakeMessage(typ string, data interface{}) *Message {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}

	return &Message{typ, b}
}
