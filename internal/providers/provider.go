// Package providers defines how upstream player data is fetched and
// normalized.
package providers

import "context"

// Transaction is one roster move reported for a player.
type Transaction struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// PlayerNews is a player's current roster status plus recent transactions,
// as resolved from an upstream stats source.
type PlayerNews struct {
	PlayerID     int           `json:"playerId,omitempty"`
	Status       string        `json:"status"`
	Transactions []Transaction `json:"transactions"`
	Age          int           `json:"age,omitempty"`
	Debut        string        `json:"debut,omitempty"`
	BatSide      string        `json:"batSide,omitempty"`
	ThrowHand    string        `json:"throwHand,omitempty"`
	CurrentTeam  string        `json:"currentTeam,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// NewsProvider resolves a player name to their roster status and recent
// moves. Implementations should treat a name with no upstream match as a
// normal result (Status "Unknown"), not an error.
type NewsProvider interface {
	PlayerNews(ctx context.Context, name string) (PlayerNews, error)
}
