package engine

import (
	"fmt"
	"math/rand"

	"monopoly-online/app/models"
)

const (
	BoardSize    = 40
	StartMoney   = 1500
	Salary       = 200
	BailAmount   = 50
	JailCell     = 10
	MaxJailTurns = 3
	MaxHouses    = 5 // 5 = hotel
)

var (
	tokens = []string{"🚗", "🎩", "🐶"}
	colors = []string{"#e74c3c", "#3498db", "#2ecc71"}
)

// Player is one seat at the table. Mutated exclusively by engine actions;
// a bankrupt player stays in the list with cleared holdings.
type Player struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Money      int         `json:"money"`
	Position   int         `json:"position"`
	Token      string      `json:"token"`
	Color      string      `json:"color"`
	Properties []int       `json:"properties"`
	InJail     bool        `json:"inJail"`
	JailTurns  int         `json:"jailTurns"`
	Bankrupt   bool        `json:"bankrupt"`
	Houses     map[int]int `json:"houses"`
}

func (p *Player) owns(cellID int) bool {
	for _, id := range p.Properties {
		if id == cellID {
			return true
		}
	}
	return false
}

// PendingKind tags the variant of a pending action. Only one variant exists
// today; the tag leaves room for more without loosening validation.
type PendingKind string

const PendingBuyOrPass PendingKind = "buy_or_pass"

type PendingAction struct {
	Type   PendingKind `json:"type"`
	CellID int         `json:"cellId"`
}

// Config is the static board and deck data a game is built from. The game
// takes its own deep copy, so one loaded config can feed many rooms.
type Config struct {
	Cells  []models.Cell
	Chance []models.Card
	Chest  []models.Card
}

type deck struct {
	cards []models.Card
	next  int
}

// draw returns the next card; the cursor wraps and the deck is never
// reshuffled mid-game.
func (d *deck) draw() models.Card {
	card := d.cards[d.next]
	d.next = (d.next + 1) % len(d.cards)
	return card
}

// Game is the authoritative state machine for exactly one room. It assumes
// at-most-one-in-flight-call discipline from its caller and never blocks.
type Game struct {
	RoomID       string
	Capacity     int
	Players      []*Player
	Current      int
	Board        []models.Cell
	Started      bool
	GameOver     bool
	Winner       *Player
	LastDice     [2]int
	DoublesCount int
	Awaiting     *PendingAction

	groups map[string][]int
	chance deck
	chest  deck
	dice   func() (int, int)
}

// New builds a game for one room. Capacity is clamped to 2-3. All
// randomness (dice and deck shuffles) flows from rng, so a seeded source
// makes whole games reproducible.
func New(roomID string, capacity int, cfg Config, rng *rand.Rand) *Game {
	if capacity < 2 {
		capacity = 2
	}
	if capacity > 3 {
		capacity = 3
	}
	g := &Game{
		RoomID:   roomID,
		Capacity: capacity,
		Board:    cloneCells(cfg.Cells),
	}
	g.groups = groupCells(g.Board)
	g.chance = deck{cards: shuffled(cfg.Chance, rng)}
	g.chest = deck{cards: shuffled(cfg.Chest, rng)}
	g.dice = func() (int, int) { return rng.Intn(6) + 1, rng.Intn(6) + 1 }
	return g
}

func cloneCells(cells []models.Cell) []models.Cell {
	out := make([]models.Cell, len(cells))
	copy(out, cells)
	for i := range out {
		out[i].Rent = append([]int(nil), out[i].Rent...)
	}
	return out
}

func groupCells(cells []models.Cell) map[string][]int {
	groups := make(map[string][]int)
	for _, cell := range cells {
		if cell.Type == "property" && cell.Color != "" {
			groups[cell.Color] = append(groups[cell.Color], cell.ID)
		}
	}
	return groups
}

func shuffled(cards []models.Card, rng *rand.Rand) []models.Card {
	out := append([]models.Card(nil), cards...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// AddPlayer seats a new player. Turn order is join order and never changes.
// The game starts automatically once the room reaches capacity.
func (g *Game) AddPlayer(id, name string) error {
	if g.Started {
		return ErrAlreadyStarted
	}
	if len(g.Players) >= g.Capacity {
		return ErrRoomFull
	}
	seat := len(g.Players)
	g.Players = append(g.Players, &Player{
		ID:         id,
		Name:       name,
		Money:      StartMoney,
		Token:      tokens[seat],
		Color:      colors[seat],
		Properties: []int{},
		Houses:     map[int]int{},
	})
	if len(g.Players) == g.Capacity {
		g.Started = true
	}
	return nil
}

func (g *Game) player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) currentPlayer() *Player {
	return g.Players[g.Current]
}

func (g *Game) activePlayers() []*Player {
	var active []*Player
	for _, p := range g.Players {
		if !p.Bankrupt {
			active = append(active, p)
		}
	}
	return active
}

func (g *Game) propertyOwner(cellID int) *Player {
	for _, p := range g.Players {
		if !p.Bankrupt && p.owns(cellID) {
			return p
		}
	}
	return nil
}

func (g *Game) rollDice() (int, int) {
	d1, d2 := g.dice()
	g.LastDice = [2]int{d1, d2}
	return d1, d2
}

func (g *Game) isDoubles() bool {
	return g.LastDice[0] == g.LastDice[1]
}

// nextTurn hands the turn to the next non-bankrupt player, resetting the
// doubles streak and discarding any pending offer.
func (g *Game) nextTurn() {
	g.DoublesCount = 0
	g.Awaiting = nil
	if g.GameOver {
		return
	}
	for i := 0; i < len(g.Players); i++ {
		g.Current = (g.Current + 1) % len(g.Players)
		if !g.currentPlayer().Bankrupt {
			return
		}
	}
}

// checkTurn validates that playerID may take a turn-bound action right now.
func (g *Game) checkTurn(playerID string) error {
	if g.GameOver {
		return ErrGameOver
	}
	if !g.Started {
		return ErrNotStarted
	}
	p := g.player(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if p.Bankrupt {
		return ErrBankrupt
	}
	if g.currentPlayer().ID != playerID {
		return ErrNotYourTurn
	}
	return nil
}

// movePlayer advances p by steps with wraparound, crediting the GO salary
// on a wrap (landing exactly on GO is credited by the landing itself), then
// resolves the landing.
func (g *Game) movePlayer(p *Player, steps int) []Event {
	var events []Event
	oldPos := p.Position
	newPos := (oldPos + steps) % BoardSize
	if newPos < oldPos && newPos != 0 {
		p.Money += Salary
		events = append(events, message(fmt.Sprintf("%s passed GO and collected $%d", p.Name, Salary)))
	}
	p.Position = newPos
	events = append(events, Event{Type: EventMove, PlayerID: p.ID, Position: newPos, FromPos: oldPos})
	return append(events, g.landOnCell(p, g.Board[newPos])...)
}

func (g *Game) landOnCell(p *Player, cell models.Cell) []Event {
	var events []Event

	switch cell.Type {
	case "start":
		p.Money += Salary
		events = append(events, message(fmt.Sprintf("%s landed on GO! +$%d", p.Name, Salary)))

	case "property", "railroad", "utility":
		owner := g.propertyOwner(cell.ID)
		switch {
		case owner == nil:
			if p.Money >= cell.Price {
				g.Awaiting = &PendingAction{Type: PendingBuyOrPass, CellID: cell.ID}
				events = append(events, Event{
					Type:   EventOffer,
					Text:   fmt.Sprintf("%s may buy %q for $%d", p.Name, cell.Name, cell.Price),
					CellID: cell.ID,
					Price:  cell.Price,
				})
			} else {
				events = append(events, message(fmt.Sprintf("%s cannot afford %q", p.Name, cell.Name)))
			}
		case owner.ID != p.ID:
			rent := g.calculateRent(cell, owner)
			p.Money -= rent
			owner.Money += rent
			events = append(events, Event{
				Type:   EventRent,
				Text:   fmt.Sprintf("%s paid $%d rent to %s for %q", p.Name, rent, owner.Name, cell.Name),
				From:   p.ID,
				To:     owner.ID,
				CellID: cell.ID,
				Amount: rent,
			})
		default:
			events = append(events, message(fmt.Sprintf("%s is on their own property %q", p.Name, cell.Name)))
		}

	case "tax":
		p.Money -= cell.Amount
		events = append(events, Event{
			Type:   EventMessage,
			Text:   fmt.Sprintf("%s paid $%d tax", p.Name, cell.Amount),
			Amount: cell.Amount,
		})

	case "chance":
		card := g.chance.draw()
		events = append(events, Event{Type: EventCard, Text: "Chance: " + card.Text, CardType: "chance"})
		events = append(events, g.applyCard(p, card)...)

	case "chest":
		card := g.chest.draw()
		events = append(events, Event{Type: EventCard, Text: "Community Chest: " + card.Text, CardType: "chest"})
		events = append(events, g.applyCard(p, card)...)

	case "gotojail":
		p.Position = JailCell
		p.InJail = true
		events = append(events, message(fmt.Sprintf("%s goes to jail!", p.Name)))
		events = append(events, Event{Type: EventMove, PlayerID: p.ID, Position: JailCell})

	case "jail":
		events = append(events, message(fmt.Sprintf("%s is just visiting jail", p.Name)))

	case "parking":
		events = append(events, message(fmt.Sprintf("%s takes a rest at free parking", p.Name)))
	}

	return events
}

func (g *Game) applyCard(p *Player, card models.Card) []Event {
	var events []Event

	switch card.Action {
	case "receive":
		p.Money += card.Value
		events = append(events, message(fmt.Sprintf("%s received $%d", p.Name, card.Value)))

	case "pay":
		p.Money -= card.Value
		events = append(events, message(fmt.Sprintf("%s paid $%d", p.Name, card.Value)))

	case "goto":
		// no salary when sent to the go-to-jail corner, even behind us
		if card.Value < p.Position && g.Board[card.Value].Type != "gotojail" {
			p.Money += Salary
			events = append(events, message(fmt.Sprintf("%s passed GO and collected $%d", p.Name, Salary)))
		}
		p.Position = card.Value
		events = append(events, Event{Type: EventMove, PlayerID: p.ID, Position: card.Value})
		events = append(events, g.landOnCell(p, g.Board[card.Value])...)

	case "gotojail":
		p.Position = JailCell
		p.InJail = true
		events = append(events, message(fmt.Sprintf("%s goes to jail!", p.Name)))
		events = append(events, Event{Type: EventMove, PlayerID: p.ID, Position: JailCell})

	case "back":
		p.Position = (p.Position - card.Value + BoardSize) % BoardSize
		events = append(events, Event{Type: EventMove, PlayerID: p.ID, Position: p.Position})
		events = append(events, g.landOnCell(p, g.Board[p.Position])...)

	case "birthday":
		for _, other := range g.Players {
			if other.ID == p.ID || other.Bankrupt {
				continue
			}
			other.Money -= card.Value
			p.Money += card.Value
			events = append(events, message(fmt.Sprintf("%s gave $%d to %s", other.Name, card.Value, p.Name)))
		}
	}

	return events
}

// sweepBankruptcies marks every player with a negative balance bankrupt,
// returns their holdings to the bank, and settles the endgame. Runs at the
// end of every money-changing action.
func (g *Game) sweepBankruptcies() []Event {
	var events []Event
	currentBroke := false
	for _, p := range g.Players {
		if p.Bankrupt || p.Money >= 0 {
			continue
		}
		p.Bankrupt = true
		p.Properties = []int{}
		p.Houses = map[int]int{}
		if g.currentPlayer() == p {
			currentBroke = true
		}
		events = append(events, message(fmt.Sprintf("%s is bankrupt! Their properties return to the bank", p.Name)))
	}
	if len(events) == 0 {
		return nil
	}

	active := g.activePlayers()
	if len(active) <= 1 {
		events = append(events, g.declareWinner(active)...)
	} else if currentBroke {
		g.nextTurn()
	}
	return events
}

func (g *Game) declareWinner(active []*Player) []Event {
	g.GameOver = true
	g.Awaiting = nil
	if len(active) == 1 {
		g.Winner = active[0]
		return []Event{message(fmt.Sprintf("%s wins the game!", active[0].Name))}
	}
	return []Event{message("Nobody is left standing")}
}
