package mlbstats

// searchResponse is the payload of /people/search and /people/{id}.
type searchResponse struct {
	People []person `json:"people"`
}

type person struct {
	ID          int    `json:"id"`
	Active      bool   `json:"active"`
	CurrentAge  int    `json:"currentAge"`
	MLBDebut    string `json:"mlbDebutDate"`
	BatSide     handed `json:"batSide"`
	PitchHand   handed `json:"pitchHand"`
	CurrentTeam struct {
		Name string `json:"name"`
	} `json:"currentTeam"`
}

type handed struct {
	Description string `json:"description"`
}

// transactionsResponse is the payload of /transactions.
type transactionsResponse struct {
	Transactions []apiTransaction `json:"transactions"`
}

type apiTransaction struct {
	Date        string `json:"date"`
	TypeDesc    string `json:"typeDesc"`
	Description string `json:"description"`
}
