package mlbstats

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 8 * time.Second
	defaultCacheTTL    = 10 * time.Minute
	// Transactions older than four months rarely change a draft-day read.
	transactionWindowDays = 120
	maxTransactions       = 10
	userAgent             = "roto-auction-service/1.0"
)
