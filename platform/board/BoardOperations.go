package board

import (
	_ "embed"
	"encoding/json"
	"errors"

	"monopoly-online/app/models"
)

//go:embed board.json
var boardJSON []byte

//go:embed cards.json
var cardsJSON []byte

type deckFile struct {
	Chance []models.Card `json:"chance"`
	Chest  []models.Card `json:"chest"`
}

// LoadCells returns the 40-cell board in position order.
func LoadCells() []models.Cell {
	var cells []models.Cell
	if err := json.Unmarshal(boardJSON, &cells); err != nil {
		panic(err)
	}
	return cells
}

// LoadCards returns the chance and community chest decks, unshuffled.
func LoadCards() ([]models.Card, []models.Card) {
	var decks deckFile
	if err := json.Unmarshal(cardsJSON, &decks); err != nil {
		panic(err)
	}
	return decks.Chance, decks.Chest
}

func GetByPos(pos int, cells []models.Cell) (models.Cell, error) {
	for _, cell := range cells {
		if cell.ID == pos {
			return cell, nil
		}
	}
	return models.Cell{}, errors.New("not found")
}
