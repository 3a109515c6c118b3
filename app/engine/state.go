package engine

import "monopoly-online/app/models"

// WinnerInfo is the public slice of the winning player.
type WinnerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// State is the full snapshot broadcast to every room member after each
// action. Clients render from it alone; building eligibility shown from
// PropertyGroups is still re-checked server-side.
type State struct {
	RoomID             string           `json:"roomId"`
	MaxPlayers         int              `json:"maxPlayers"`
	Board              []models.Cell    `json:"board"`
	Players            []Player         `json:"players"`
	CurrentPlayerIndex int              `json:"currentPlayerIndex"`
	CurrentPlayerID    string           `json:"currentPlayerId,omitempty"`
	Started            bool             `json:"started"`
	GameOver           bool             `json:"gameOver"`
	Winner             *WinnerInfo      `json:"winner"`
	LastDice           [2]int           `json:"lastDice"`
	AwaitingAction     *PendingAction   `json:"awaitingAction"`
	PropertyGroups     map[string][]int `json:"propertyGroups"`
}

// Snapshot copies the public game state. Player holdings are copied so the
// caller can serialize without racing a later action.
func (g *Game) Snapshot() State {
	players := make([]Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = *p
		players[i].Properties = append([]int(nil), p.Properties...)
		houses := make(map[int]int, len(p.Houses))
		for id, n := range p.Houses {
			houses[id] = n
		}
		players[i].Houses = houses
	}

	state := State{
		RoomID:             g.RoomID,
		MaxPlayers:         g.Capacity,
		Board:              g.Board,
		Players:            players,
		CurrentPlayerIndex: g.Current,
		Started:            g.Started,
		GameOver:           g.GameOver,
		LastDice:           g.LastDice,
		PropertyGroups:     g.groups,
	}
	if len(g.Players) > 0 {
		state.CurrentPlayerID = g.currentPlayer().ID
	}
	if g.Winner != nil {
		state.Winner = &WinnerInfo{ID: g.Winner.ID, Name: g.Winner.Name}
	}
	if g.Awaiting != nil {
		pending := *g.Awaiting
		state.AwaitingAction = &pending
	}
	return state
}
