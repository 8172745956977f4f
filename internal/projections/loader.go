// Package projections parses FanGraphs-style projection CSVs into the
// valuation pool, normalizing the varied header spellings different exports
// use and filtering the pool to league-eligible clubs.
package projections

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/positions"
)

// Report summarizes one parsed upload.
type Report struct {
	Loaded  int      `json:"loaded"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Parse reads one CSV of the given side. Rows without a player name are
// skipped; non-AL rows are skipped when the league is AL-only. Parse errors
// on individual cells zero the cell rather than dropping the row.
func Parse(r io.Reader, side players.Type, cfg config.League) ([]players.Projection, Report, error) {
	columns := hittingColumns
	if side == players.TypePitcher {
		columns = pitchingColumns
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, Report{}, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, raw := range header {
		name := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
		if canonical, ok := columns[name]; ok {
			if _, taken := index[canonical]; !taken {
				index[canonical] = i
			}
		}
	}
	if _, ok := index[colName]; !ok {
		return nil, Report{}, fmt.Errorf("csv has no recognizable name column")
	}

	var (
		pool   []players.Projection
		report Report
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: %v", line, err))
			report.Skipped++
			continue
		}

		row := rowReader{record: record, index: index}
		name := strings.TrimSpace(row.str(colName))
		if name == "" {
			report.Skipped++
			continue
		}

		team := positions.NormalizeTeam(row.str(colTeam))
		if cfg.ALOnly() && !positions.IsALTeam(team) {
			report.Skipped++
			continue
		}

		p := players.Projection{
			ID:        playerID(side, row.str(colID), name),
			Name:      name,
			Team:      team,
			Positions: positions.Parse(row.str(colPositions)),
			Type:      side,
		}
		if len(p.Positions) == 0 {
			if side == players.TypeHitter {
				p.Positions = []string{"U"}
			} else {
				p.Positions = []string{"P"}
			}
		}

		if side == players.TypeHitter {
			p.Hitting = readHitting(row)
		} else {
			p.Pitching = readPitching(row)
		}
		p.Statcast = readStatcast(row, side)

		pool = append(pool, p)
		report.Loaded++
	}

	return pool, report, nil
}

// DetectSide guesses whether a header row belongs to a hitting or pitching
// export by column overlap.
func DetectSide(header []string) players.Type {
	hitting := map[string]bool{"AB": true, "H": true, "HR": true, "RBI": true, "SB": true, "AVG": true, "BA": true, "R": true}
	pitching := map[string]bool{"IP": true, "ERA": true, "WHIP": true, "SV": true, "ER": true}

	hits, pitches := 0, 0
	for _, raw := range header {
		name := strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF")
		if hitting[name] {
			hits++
		}
		if pitching[name] {
			pitches++
		}
	}
	if pitches > hits {
		return players.TypePitcher
	}
	return players.TypeHitter
}

// playerID namespaces IDs by side so a two-way player keeps two entries.
func playerID(side players.Type, raw, name string) string {
	prefix := "h"
	if side == players.TypePitcher {
		prefix = "p"
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		return prefix + raw
	}
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	return prefix + "-" + slug
}

func readHitting(row rowReader) *players.HittingLine {
	h := &players.HittingLine{
		PA:      row.intval(colPA),
		AB:      row.intval(colAB),
		H:       row.intval(colH),
		Doubles: row.intval(colDoubles),
		Triples: row.intval(colTriples),
		HR:      row.intval(colHR),
		R:       row.intval(colR),
		RBI:     row.intval(colRBI),
		SB:      row.intval(colSB),
		CS:      row.intval(colCS),
		BB:      row.intval(colBB),
		SO:      row.intval(colSO),
		BA:      row.floatval(colBA),
	}
	if h.BA == 0 && h.AB > 0 && h.H > 0 {
		h.BA = float64(h.H) / float64(h.AB)
	}
	return h
}

func readPitching(row rowReader) *players.PitchingLine {
	return &players.PitchingLine{
		IP:   row.floatval(colIP),
		W:    row.intval(colW),
		L:    row.intval(colL),
		SV:   row.intval(colSV),
		HLD:  row.intval(colHLD),
		K:    row.intval(colK),
		BB:   row.intval(colBB),
		H:    row.intval(colH),
		ER:   row.intval(colER),
		HR:   row.intval(colHR),
		ERA:  row.floatval(colERA),
		WHIP: row.floatval(colWHIP),
	}
}

func readStatcast(row rowReader, side players.Type) players.Statcast {
	sc := players.Statcast{Age: row.intval(colAge)}
	if side == players.TypeHitter {
		sc.XBA = row.optional(colXBA)
		sc.XSLG = row.optional(colXSLG)
		sc.XWOBA = row.optional(colXWOBA)
		sc.BarrelPct = row.optional(colBarrel)
		sc.HardHitPct = row.optional(colHardHit)
		sc.Spd = row.optional(colSpd)
	} else {
		sc.StuffPlus = row.optional(colStuff)
		sc.LocationPlus = row.optional(colLocation)
		sc.KPct = row.optional(colKPct)
		sc.CSWPct = row.optional(colCSW)
		sc.SwStrPct = row.optional(colSwStr)
		sc.XERA = row.optional(colXERA)
	}
	return sc
}

type rowReader struct {
	record []string
	index  map[string]int
}

func (r rowReader) str(key string) string {
	i, ok := r.index[key]
	if !ok || i >= len(r.record) {
		return ""
	}
	return r.record[i]
}

func (r rowReader) intval(key string) int {
	raw := strings.TrimSpace(r.str(key))
	if raw == "" {
		return 0
	}
	// Some exports format counting stats as floats.
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v + 0.5)
	}
	return 0
}

func (r rowReader) floatval(key string) float64 {
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(r.str(key)), "%"))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// optional distinguishes an absent or blank cell from a real zero.
func (r rowReader) optional(key string) *float64 {
	i, ok := r.index[key]
	if !ok || i >= len(r.record) {
		return nil
	}
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(r.record[i]), "%"))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
