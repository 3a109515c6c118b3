package engine

import "monopoly-online/app/models"

// calculateRent prices a stay on owner's cell. Utility rent is derived from
// the last recorded dice pair, even when the landing came from a card
// relocation rather than a fresh roll.
func (g *Game) calculateRent(cell models.Cell, owner *Player) int {
	switch cell.Type {
	case "railroad":
		count := 0
		for _, id := range owner.Properties {
			if g.Board[id].Type == "railroad" {
				count++
			}
		}
		return cell.Rent[count-1]

	case "utility":
		count := 0
		for _, id := range owner.Properties {
			if g.Board[id].Type == "utility" {
				count++
			}
		}
		diceSum := g.LastDice[0] + g.LastDice[1]
		if count == 1 {
			return diceSum * 4
		}
		return diceSum * 10
	}

	houses := owner.Houses[cell.ID]
	if houses == 0 {
		if g.hasMonopoly(owner, cell.Color) {
			return cell.Rent[0] * 2
		}
		return cell.Rent[0]
	}
	return cell.Rent[houses]
}

func (g *Game) hasMonopoly(p *Player, color string) bool {
	group, ok := g.groups[color]
	if !ok {
		return false
	}
	for _, id := range group {
		if !p.owns(id) {
			return false
		}
	}
	return true
}
