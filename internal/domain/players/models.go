package players

// Type distinguishes the two valuation pools.
type Type string

const (
	TypeHitter  Type = "hitter"
	TypePitcher Type = "pitcher"
)

// Hitting category names used in SGP breakdowns.
const (
	CatRuns    = "R"
	CatHomers  = "HR"
	CatRBI     = "RBI"
	CatSteals  = "SB"
	CatAverage = "BA"
)

// Pitching category names used in SGP breakdowns.
const (
	CatWins       = "W"
	CatSaves      = "SV"
	CatStrikeouts = "K"
	CatERA        = "ERA"
	CatWHIP       = "WHIP"
)

// HittingLine is a hitter's projected season.
type HittingLine struct {
	PA      int     `json:"pa"`
	AB      int     `json:"ab"`
	H       int     `json:"h"`
	Doubles int     `json:"doubles"`
	Triples int     `json:"triples"`
	HR      int     `json:"hr"`
	R       int     `json:"r"`
	RBI     int     `json:"rbi"`
	SB      int     `json:"sb"`
	CS      int     `json:"cs"`
	BB      int     `json:"bb"`
	SO      int     `json:"so"`
	BA      float64 `json:"ba"`
}

// PitchingLine is a pitcher's projected season.
type PitchingLine struct {
	IP   float64 `json:"ip"`
	W    int     `json:"w"`
	L    int     `json:"l"`
	SV   int     `json:"sv"`
	HLD  int     `json:"hld"`
	K    int     `json:"k"`
	BB   int     `json:"bb"`
	H    int     `json:"h"`
	ER   int     `json:"er"`
	HR   int     `json:"hr"`
	ERA  float64 `json:"era"`
	WHIP float64 `json:"whip"`
}

// Statcast holds optional prior-season advanced metrics consumed only by the
// breakout scorer. Nil means the metric was absent from the upload.
type Statcast struct {
	Age          int      `json:"age,omitempty"`
	XBA          *float64 `json:"xba,omitempty"`
	XSLG         *float64 `json:"xslg,omitempty"`
	XWOBA        *float64 `json:"xwoba,omitempty"`
	BarrelPct    *float64 `json:"barrelPct,omitempty"`
	HardHitPct   *float64 `json:"hardHitPct,omitempty"`
	Spd          *float64 `json:"spd,omitempty"`
	StuffPlus    *float64 `json:"stuffPlus,omitempty"`
	LocationPlus *float64 `json:"locationPlus,omitempty"`
	KPct         *float64 `json:"kPct,omitempty"`
	CSWPct       *float64 `json:"cswPct,omitempty"`
	SwStrPct     *float64 `json:"swStrPct,omitempty"`
	XERA         *float64 `json:"xera,omitempty"`
}

// Projection is one player-season row in the valuation pool. A two-way player
// appears as two projections, one per type.
type Projection struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Team      string        `json:"team"`
	Positions []string      `json:"positions"`
	Type      Type          `json:"type"`
	Hitting   *HittingLine  `json:"hitting,omitempty"`
	Pitching  *PitchingLine `json:"pitching,omitempty"`
	Statcast  Statcast      `json:"statcast,omitempty"`
}

// PlayingTime returns the projection's playing-time denominator: AB for
// hitters, IP for pitchers.
func (p Projection) PlayingTime() float64 {
	switch p.Type {
	case TypeHitter:
		if p.Hitting != nil {
			return float64(p.Hitting.AB)
		}
	case TypePitcher:
		if p.Pitching != nil {
			return p.Pitching.IP
		}
	}
	return 0
}

// SGPResult is a player's per-category standings gain points and their sum.
type SGPResult struct {
	Categories map[string]float64 `json:"categories"`
	Total      float64            `json:"total"`
}

// BreakoutProfile is the upside/decline annotation computed from Statcast
// metrics. It never feeds back into dollar values.
type BreakoutProfile struct {
	Score   float64  `json:"score"`
	Label   string   `json:"label"`
	Factors []string `json:"factors"`
}

// KeeperAssignment binds a kept player to the owning team at a salary.
type KeeperAssignment struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Salary   int    `json:"salary"`
}

// Valued is the pipeline's terminal artifact: a projection plus everything
// the valuation run derived from it, plus draft-layer marks.
type Valued struct {
	Projection

	SGP           SGPResult        `json:"sgp"`
	DollarValue   float64          `json:"dollarValue"`
	InflatedValue float64          `json:"inflatedValue"`
	Range         PriceRange       `json:"preBidRange"`
	Breakout      *BreakoutProfile `json:"breakout,omitempty"`

	IsKeeper     bool   `json:"isKeeper"`
	KeeperTeamID string `json:"keeperTeamId,omitempty"`
	KeeperSalary int    `json:"keeperSalary,omitempty"`

	Drafted     bool   `json:"drafted"`
	DraftTeamID string `json:"draftTeamId,omitempty"`
	DraftPrice  int    `json:"draftPrice,omitempty"`
}
