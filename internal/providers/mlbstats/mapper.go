package mlbstats

import (
	"strings"

	"github.com/preston-bernstein/roto-auction-service/internal/providers"
)

func mapTransactions(raw []apiTransaction) []providers.Transaction {
	if len(raw) > maxTransactions {
		raw = raw[:maxTransactions]
	}
	out := make([]providers.Transaction, 0, len(raw))
	for _, tx := range raw {
		out = append(out, providers.Transaction{
			Date:        tx.Date,
			Type:        tx.TypeDesc,
			Description: tx.Description,
		})
	}
	return out
}

// statusFrom reads the most recent status-changing move. Transactions
// arrive newest first; the first recognizable one wins.
func statusFrom(txs []providers.Transaction) string {
	for _, tx := range txs {
		desc := strings.ToLower(tx.Description)
		switch {
		case strings.Contains(desc, "placed") && strings.Contains(desc, "injured list"):
			switch {
			case strings.Contains(desc, "60-day"):
				return "IL-60"
			case strings.Contains(desc, "15-day"):
				return "IL-15"
			case strings.Contains(desc, "10-day"):
				return "IL-10"
			}
			return "IL"
		case strings.Contains(desc, "activated") && strings.Contains(desc, "injured list"):
			return "Active"
		case strings.Contains(desc, "designated for assignment"):
			return "DFA"
		case strings.Contains(desc, "released"):
			return "Released"
		case strings.Contains(desc, "traded"), strings.Contains(desc, "acquired"):
			return "Active"
		case strings.Contains(desc, "optioned"):
			return "Minors"
		case strings.Contains(desc, "recalled"), strings.Contains(desc, "selected"):
			return "Active"
		}
	}
	return "Active"
}
