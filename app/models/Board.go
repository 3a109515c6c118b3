package models

// Cell is one square of the 40-cell board. Rent is indexed by house count
// 0-5 for properties and by owned-railroad count 1-4 for railroads;
// utilities carry no schedule because their rent is dice-derived.
type Cell struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"` // start, property, railroad, utility, tax, chance, chest, gotojail, jail, parking
	Color     string `json:"color,omitempty"`
	Price     int    `json:"price,omitempty"`
	Rent      []int  `json:"rent,omitempty"`
	HouseCost int    `json:"houseCost,omitempty"`
	Amount    int    `json:"amount,omitempty"` // tax cells only
}

// Card is a single chance or community chest deck entry.
type Card struct {
	Text   string `json:"text"`
	Action string `json:"action"` // receive, pay, goto, gotojail, back, birthday
	Value  int    `json:"value"`  // amount, destination cell id, or step count
}
