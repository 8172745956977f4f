package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"
	FieldPlayer     = "player"
	FieldTeam       = "team"
	FieldPick       = "pick"
	FieldPool       = "pool_size"
	FieldInflation  = "inflation_rate"
)
