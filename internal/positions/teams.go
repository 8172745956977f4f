package positions

import "strings"

// alTeams holds canonical American League abbreviations.
var alTeams = map[string]bool{
	"BAL": true, "BOS": true, "NYY": true, "TBR": true, "TOR": true,
	"CHW": true, "CLE": true, "DET": true, "KCR": true, "MIN": true,
	"HOU": true, "LAA": true, "OAK": true, "SEA": true, "TEX": true,
}

// teamAliases maps alternate abbreviations used by various data sources to
// the canonical form.
var teamAliases = map[string]string{
	"TB":  "TBR",
	"CWS": "CHW",
	"KC":  "KCR",
	"ATH": "OAK",
	"ANA": "LAA",
	"NYA": "NYY",
}

// NormalizeTeam canonicalizes a team abbreviation.
func NormalizeTeam(team string) string {
	team = strings.ToUpper(strings.TrimSpace(team))
	if canonical, ok := teamAliases[team]; ok {
		return canonical
	}
	return team
}

// IsALTeam reports whether the (possibly aliased) abbreviation is an AL club.
func IsALTeam(team string) bool {
	return alTeams[NormalizeTeam(team)]
}
