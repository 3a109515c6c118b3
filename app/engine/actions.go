package engine

import "fmt"

// Roll is the central turn transition: dice, movement, landing resolution,
// doubles handling and the bankruptcy sweep, in that order. Only the
// current player may roll, and never while a purchase offer is pending.
func (g *Game) Roll(playerID string) ([]Event, error) {
	if err := g.checkTurn(playerID); err != nil {
		return nil, err
	}
	if g.Awaiting != nil {
		return nil, ErrActionPending
	}

	p := g.currentPlayer()
	d1, d2 := g.rollDice()
	events := []Event{{Type: EventDice, Values: []int{d1, d2}, Player: p.Name, PlayerID: p.ID}}

	if p.InJail {
		events = append(events, g.rollInJail(p, d1, d2)...)
		events = append(events, g.sweepBankruptcies()...)
		return events, nil
	}

	if d1 == d2 {
		g.DoublesCount++
		if g.DoublesCount >= 3 {
			p.Position = JailCell
			p.InJail = true
			events = append(events, message(fmt.Sprintf("%s rolled three doubles in a row — straight to jail!", p.Name)))
			events = append(events, Event{Type: EventMove, PlayerID: p.ID, Position: JailCell})
			g.nextTurn()
			events = append(events, g.sweepBankruptcies()...)
			return events, nil
		}
	}

	events = append(events, g.movePlayer(p, d1+d2)...)

	switch {
	case g.Awaiting != nil:
		// purchase decision keeps the turn open
	case d1 == d2:
		events = append(events, message(fmt.Sprintf("%s rolled a double and goes again!", p.Name)))
	default:
		g.nextTurn()
	}

	events = append(events, g.sweepBankruptcies()...)
	return events, nil
}

// rollInJail resolves a jailed player's roll. A double releases without a
// bonus turn; the third failed attempt forces the bail payment and moves by
// the roll. The turn passes in every branch.
func (g *Game) rollInJail(p *Player, d1, d2 int) []Event {
	var events []Event

	if d1 == d2 {
		p.InJail = false
		p.JailTurns = 0
		events = append(events, message(fmt.Sprintf("%s rolled a double and is out of jail!", p.Name)))
		events = append(events, g.movePlayer(p, d1+d2)...)
		g.nextTurn()
		return events
	}

	p.JailTurns++
	if p.JailTurns >= MaxJailTurns {
		p.InJail = false
		p.JailTurns = 0
		p.Money -= BailAmount
		events = append(events, message(fmt.Sprintf("%s paid $%d and is out of jail", p.Name, BailAmount)))
		events = append(events, g.movePlayer(p, d1+d2)...)
	} else {
		events = append(events, message(fmt.Sprintf("%s stays in jail (attempt %d/%d)", p.Name, p.JailTurns, MaxJailTurns)))
	}
	g.nextTurn()
	return events
}

// Buy accepts the pending purchase offer for exactly cellID.
func (g *Game) Buy(playerID string, cellID int) ([]Event, error) {
	if err := g.checkTurn(playerID); err != nil {
		return nil, err
	}
	if g.Awaiting == nil || g.Awaiting.Type != PendingBuyOrPass || g.Awaiting.CellID != cellID {
		return nil, ErrNoOffer
	}

	p := g.currentPlayer()
	cell := g.Board[cellID]
	if p.Money < cell.Price {
		return nil, ErrInsufficientFunds
	}

	p.Money -= cell.Price
	p.Properties = append(p.Properties, cellID)
	g.Awaiting = nil

	events := []Event{{
		Type:     EventBuy,
		Text:     fmt.Sprintf("%s bought %q for $%d", p.Name, cell.Name, cell.Price),
		PlayerID: p.ID,
		CellID:   cellID,
		Price:    cell.Price,
	}}

	// a doubles roll still owes the extra roll
	if !g.isDoubles() {
		g.nextTurn()
	}

	events = append(events, g.sweepBankruptcies()...)
	return events, nil
}

// Pass declines the pending purchase offer; the cell stays with the bank.
func (g *Game) Pass(playerID string) ([]Event, error) {
	if err := g.checkTurn(playerID); err != nil {
		return nil, err
	}
	if g.Awaiting == nil || g.Awaiting.Type != PendingBuyOrPass {
		return nil, ErrNoOffer
	}

	p := g.currentPlayer()
	cell := g.Board[g.Awaiting.CellID]
	g.Awaiting = nil

	events := []Event{message(fmt.Sprintf("%s passed on buying %q", p.Name, cell.Name))}

	if !g.isDoubles() {
		g.nextTurn()
	}
	return events, nil
}

// BuildHouse adds one house (the fifth is a hotel) on an owned property.
// Deliberately not gated on whose turn it is; see the even-building and
// monopoly checks for everything that is enforced.
func (g *Game) BuildHouse(playerID string, cellID int) ([]Event, error) {
	if g.GameOver {
		return nil, ErrGameOver
	}
	if !g.Started {
		return nil, ErrNotStarted
	}
	p := g.player(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if p.Bankrupt {
		return nil, ErrBankrupt
	}
	if cellID < 0 || cellID >= BoardSize {
		return nil, ErrInvalidTarget
	}
	cell := g.Board[cellID]
	if cell.Type != "property" {
		return nil, ErrInvalidTarget
	}
	if !p.owns(cellID) {
		return nil, ErrInvalidTarget
	}

	group := g.groups[cell.Color]
	for _, id := range group {
		if !p.owns(id) {
			return nil, ErrMonopolyRequired
		}
	}

	current := p.Houses[cellID]
	if current >= MaxHouses {
		return nil, ErrMaxHouses
	}
	if p.Money < cell.HouseCost {
		return nil, ErrInsufficientFunds
	}

	min := MaxHouses
	for _, id := range group {
		if p.Houses[id] < min {
			min = p.Houses[id]
		}
	}
	if current > min {
		return nil, ErrUnevenBuilding
	}

	p.Money -= cell.HouseCost
	p.Houses[cellID] = current + 1

	building := fmt.Sprintf("house (%d)", p.Houses[cellID])
	if p.Houses[cellID] == MaxHouses {
		building = "hotel"
	}
	return []Event{{
		Type:     EventBuild,
		Text:     fmt.Sprintf("%s built a %s on %q for $%d", p.Name, building, cell.Name, cell.HouseCost),
		PlayerID: p.ID,
		CellID:   cellID,
		Houses:   p.Houses[cellID],
	}}, nil
}

// PayBail clears jail status for the current player without consuming the
// turn; a roll is still expected afterwards.
func (g *Game) PayBail(playerID string) ([]Event, error) {
	if err := g.checkTurn(playerID); err != nil {
		return nil, err
	}
	p := g.currentPlayer()
	if !p.InJail {
		return nil, ErrNotInJail
	}
	if p.Money < BailAmount {
		return nil, ErrInsufficientFunds
	}

	p.Money -= BailAmount
	p.InJail = false
	p.JailTurns = 0
	return []Event{message(fmt.Sprintf("%s paid $%d and is out of jail", p.Name, BailAmount))}, nil
}

// Surrender retires a player unconditionally. Holdings return to the bank
// and may be bought again; with fewer than two active players left the game
// ends and the survivor wins.
func (g *Game) Surrender(playerID string) ([]Event, error) {
	if g.GameOver {
		return nil, ErrGameOver
	}
	if !g.Started {
		return nil, ErrNotStarted
	}
	p := g.player(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if p.Bankrupt {
		return nil, ErrBankrupt
	}

	wasCurrent := g.currentPlayer() == p
	p.Bankrupt = true
	p.Properties = []int{}
	p.Houses = map[int]int{}

	events := []Event{message(fmt.Sprintf("%s surrendered", p.Name))}

	active := g.activePlayers()
	if len(active) <= 1 {
		events = append(events, g.declareWinner(active)...)
	} else if wasCurrent {
		g.nextTurn()
	}
	return events, nil
}

// ForceUnlock is the escape hatch for a stalled turn: the current player
// discards their own pending offer and hands the turn over.
func (g *Game) ForceUnlock(playerID string) ([]Event, error) {
	if err := g.checkTurn(playerID); err != nil {
		return nil, err
	}
	p := g.currentPlayer()
	g.Awaiting = nil
	g.nextTurn()
	return []Event{message(fmt.Sprintf("%s ended their turn", p.Name))}, nil
}
