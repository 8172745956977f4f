package projections

// Canonical field keys used after header normalization.
const (
	colName      = "name"
	colID        = "id"
	colTeam      = "team"
	colPositions = "positions"
	colAge       = "age"

	colPA      = "pa"
	colAB      = "ab"
	colH       = "h"
	colDoubles = "doubles"
	colTriples = "triples"
	colHR      = "hr"
	colR       = "r"
	colRBI     = "rbi"
	colSB      = "sb"
	colCS      = "cs"
	colBB      = "bb"
	colSO      = "so"
	colBA      = "ba"

	colIP   = "ip"
	colW    = "w"
	colL    = "l"
	colSV   = "sv"
	colHLD  = "hld"
	colK    = "k"
	colER   = "er"
	colERA  = "era"
	colWHIP = "whip"

	colXBA      = "xba"
	colXSLG     = "xslg"
	colXWOBA    = "xwoba"
	colBarrel   = "barrel_pct"
	colHardHit  = "hard_hit_pct"
	colSpd      = "spd"
	colStuff    = "stuff_plus"
	colLocation = "location_plus"
	colKPct     = "k_pct"
	colCSW      = "csw_pct"
	colSwStr    = "swstr_pct"
	colXERA     = "xera"
)

// hittingColumns maps FanGraphs-style hitting export headers (and common
// variants) to canonical keys.
var hittingColumns = map[string]string{
	"Name": colName, "playerid": colID, "PlayerId": colID,
	"Team": colTeam, "Tm": colTeam,
	"Pos": colPositions, "POS": colPositions,
	"PA": colPA, "AB": colAB, "H": colH,
	"2B": colDoubles, "3B": colTriples,
	"HR": colHR, "R": colR, "RBI": colRBI, "SB": colSB, "CS": colCS,
	"BB": colBB, "SO": colSO,
	"AVG": colBA, "BA": colBA,
	"Age": colAge,
	"xBA": colXBA, "xSLG": colXSLG, "xwOBA": colXWOBA, "xwoba": colXWOBA,
	"Barrel%": colBarrel, "HardHit%": colHardHit, "Hard%": colHardHit,
	"Spd": colSpd, "SPD": colSpd,
}

// pitchingColumns maps pitching export headers to canonical keys.
var pitchingColumns = map[string]string{
	"Name": colName, "playerid": colID, "PlayerId": colID,
	"Team": colTeam, "Tm": colTeam,
	"Pos": colPositions, "POS": colPositions,
	"IP": colIP, "W": colW, "L": colL, "SV": colSV, "HLD": colHLD,
	"K": colK, "SO": colK,
	"BB": colBB, "H": colH, "ER": colER, "HR": colHR,
	"ERA": colERA, "WHIP": colWHIP,
	"Age":   colAge,
	"Stuff+": colStuff, "Location+": colLocation,
	"K%": colKPct, "CSW%": colCSW, "SwStr%": colSwStr,
	"xERA": colXERA, "xera": colXERA,
}
