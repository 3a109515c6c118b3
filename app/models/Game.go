package models

// Game is the lobby row for a room; live game state stays in memory with
// the engine and is never written back here.
type Game struct {
	Id         string
	Name       string
	Status     string // "waiting", "in progress", "finished"
	MaxPlayers int
}

type GameCreateDto struct {
	Name       string `json:"name"`
	MaxPlayers int    `json:"max_players"`
}

type VerifyGameDto struct {
	Code string `query:"code"`
}
