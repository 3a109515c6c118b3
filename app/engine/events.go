package engine

// EventType tags one entry of an action's ordered result log.
type EventType string

const (
	EventDice    EventType = "dice"
	EventMove    EventType = "move"
	EventMessage EventType = "message"
	EventOffer   EventType = "offer"
	EventRent    EventType = "rent"
	EventBuy     EventType = "buy"
	EventCard    EventType = "card"
	EventBuild   EventType = "build"
)

// Event is a single record of what happened during an action, in causal
// order. Text is always display-ready; the structured fields carry whatever
// a client needs to animate the change.
type Event struct {
	Type     EventType `json:"type"`
	Text     string    `json:"text,omitempty"`
	Player   string    `json:"player,omitempty"` // display name, dice events
	Values   []int     `json:"values,omitempty"` // dice pair
	PlayerID string    `json:"playerId,omitempty"`
	Position int       `json:"position,omitempty"`
	FromPos  int       `json:"fromPos,omitempty"`
	CellID   int       `json:"cellId,omitempty"`
	Price    int       `json:"price,omitempty"`
	Amount   int       `json:"amount,omitempty"`
	From     string    `json:"from,omitempty"` // payer id, rent events
	To       string    `json:"to,omitempty"`   // payee id, rent events
	CardType string    `json:"cardType,omitempty"`
	Houses   int       `json:"houses,omitempty"`
}

func message(text string) Event {
	return Event{Type: EventMessage, Text: text}
}
