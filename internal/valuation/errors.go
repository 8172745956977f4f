package valuation

import "fmt"

// ConfigError reports a league configuration that would produce misleading
// values. It is fatal to a run.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid league config: %s %s", e.Field, e.Reason)
}

// InsufficientDataError reports a pool too thin to value: replacement level
// and dollars-per-SGP are undefined with an empty side.
type InsufficientDataError struct {
	Side  string // "hitting" or "pitching"
	Count int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d %s players loaded", e.Count, e.Side)
}

// Warning codes for conditions handled inside a run.
const (
	WarnUnmatchedKeeper     = "unmatched_keeper"
	WarnDegenerateInflation = "degenerate_inflation"
)

// Warning is a non-fatal condition observed during a run, returned alongside
// results so callers can surface it.
type Warning struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	PlayerID string `json:"playerId,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
}
