package board

import "testing"

func TestLoadCells(t *testing.T) {
	cells := LoadCells()
	if len(cells) != 40 {
		t.Fatalf("board has %d cells, want 40", len(cells))
	}
	for i, cell := range cells {
		if cell.ID != i {
			t.Fatalf("cell %d carries id %d", i, cell.ID)
		}
	}

	corners := map[int]string{0: "start", 10: "jail", 20: "parking", 30: "gotojail"}
	for pos, kind := range corners {
		if cells[pos].Type != kind {
			t.Errorf("cell %d type = %q, want %q", pos, cells[pos].Type, kind)
		}
	}

	colorCount := map[string]int{}
	for _, cell := range cells {
		switch cell.Type {
		case "property":
			if len(cell.Rent) != 6 {
				t.Errorf("%q rent schedule has %d entries, want 6", cell.Name, len(cell.Rent))
			}
			if cell.Price <= 0 || cell.HouseCost <= 0 || cell.Color == "" {
				t.Errorf("%q missing price/houseCost/color", cell.Name)
			}
			colorCount[cell.Color]++
		case "railroad":
			if len(cell.Rent) != 4 {
				t.Errorf("%q rent schedule has %d entries, want 4", cell.Name, len(cell.Rent))
			}
		case "utility":
			if len(cell.Rent) != 0 {
				t.Errorf("%q must not carry a rent schedule", cell.Name)
			}
		case "tax":
			if cell.Amount <= 0 {
				t.Errorf("%q missing tax amount", cell.Name)
			}
		}
	}

	wantGroups := map[string]int{
		"brown": 2, "lightblue": 3, "pink": 3, "orange": 3,
		"red": 3, "yellow": 3, "green": 3, "darkblue": 2,
	}
	for color, want := range wantGroups {
		if colorCount[color] != want {
			t.Errorf("group %q has %d cells, want %d", color, colorCount[color], want)
		}
	}
}

func TestLoadCards(t *testing.T) {
	chance, chest := LoadCards()
	if len(chance) == 0 || len(chest) == 0 {
		t.Fatal("decks must not be empty")
	}

	valid := map[string]bool{
		"receive": true, "pay": true, "goto": true,
		"gotojail": true, "back": true, "birthday": true,
	}
	for _, card := range append(chance, chest...) {
		if !valid[card.Action] {
			t.Errorf("card %q has unknown action %q", card.Text, card.Action)
		}
		if card.Action == "goto" && (card.Value < 0 || card.Value > 39) {
			t.Errorf("card %q targets cell %d, out of range", card.Text, card.Value)
		}
		if card.Text == "" {
			t.Error("card with empty text")
		}
	}
}

func TestGetByPos(t *testing.T) {
	cells := LoadCells()
	cell, err := GetByPos(39, cells)
	if err != nil || cell.Name != "Boardwalk" {
		t.Fatalf("GetByPos(39) = %v, %v", cell.Name, err)
	}
	if _, err := GetByPos(40, cells); err == nil {
		t.Fatal("GetByPos(40) must fail")
	}
}
