package analytics

import "github.com/riskibarqy/roto-draft/internal/domain/player"

// StatCategory is one of the nine roto scoring categories.
type StatCategory string

const (
	StatPoints       StatCategory = "PTS"
	StatRebounds     StatCategory = "REB"
	StatAssists      StatCategory = "AST"
	StatSteals       StatCategory = "STL"
	StatBlocks       StatCategory = "BLK"
	StatThrees       StatCategory = "3PM"
	StatFieldGoalPct StatCategory = "FG%"
	StatFreeThrowPct StatCategory = "FT%"
	StatTurnovers    StatCategory = "TOV"
)

var StatCategories = []StatCategory{
	StatPoints,
	StatRebounds,
	StatAssists,
	StatSteals,
	StatBlocks,
	StatThrees,
	StatFieldGoalPct,
	StatFreeThrowPct,
	StatTurnovers,
}

// StatMode selects which stat line of a season a category is read from.
type StatMode string

const (
	ModeAverages StatMode = "averages"
	ModeTotals   StatMode = "totals"
	ModeZScores  StatMode = "zscores"
)

var StatModes = []StatMode{ModeAverages, ModeTotals, ModeZScores}

func ParseStatMode(v string) (StatMode, bool) {
	for _, m := range StatModes {
		if string(m) == v {
			return m, true
		}
	}
	return "", false
}

type statKey struct {
	category StatCategory
	mode     StatMode
}

// statFields maps every (category, mode) pair to the key used in the source
// stat lines. Percentages have no season total, so the totals mode reads the
// same percentage key from the totals line.
var statFields = map[statKey]string{
	{StatPoints, ModeAverages}:       "PTS_G",
	{StatRebounds, ModeAverages}:     "REB_G",
	{StatAssists, ModeAverages}:      "AST_G",
	{StatSteals, ModeAverages}:       "STL_G",
	{StatBlocks, ModeAverages}:       "BLK_G",
	{StatThrees, ModeAverages}:       "3PM_G",
	{StatFieldGoalPct, ModeAverages}: "FG_PCT",
	{StatFreeThrowPct, ModeAverages}: "FT_PCT",
	{StatTurnovers, ModeAverages}:    "TOV_G",

	{StatPoints, ModeTotals}:       "PTS",
	{StatRebounds, ModeTotals}:     "TRB",
	{StatAssists, ModeTotals}:      "AST",
	{StatSteals, ModeTotals}:       "STL",
	{StatBlocks, ModeTotals}:       "BLK",
	{StatThrees, ModeTotals}:       "3P",
	{StatFieldGoalPct, ModeTotals}: "FG_PCT",
	{StatFreeThrowPct, ModeTotals}: "FT_PCT",
	{StatTurnovers, ModeTotals}:    "TOV",

	{StatPoints, ModeZScores}:       "Z_PTS_G",
	{StatRebounds, ModeZScores}:     "Z_REB_G",
	{StatAssists, ModeZScores}:      "Z_AST_G",
	{StatSteals, ModeZScores}:       "Z_STL_G",
	{StatBlocks, ModeZScores}:       "Z_BLK_G",
	{StatThrees, ModeZScores}:       "Z_3PM_G",
	{StatFieldGoalPct, ModeZScores}: "Z_FG_PCT",
	{StatFreeThrowPct, ModeZScores}: "Z_FT_PCT",
	{StatTurnovers, ModeZScores}:    "Z_TOV_G",
}

// StatField returns the stat line key for a category in a mode.
func StatField(category StatCategory, mode StatMode) (string, bool) {
	field, ok := statFields[statKey{category: category, mode: mode}]
	return field, ok
}

// StatValue reads one category from a season in the given mode.
func StatValue(season player.SeasonRecord, category StatCategory, mode StatMode) (float64, bool) {
	field, ok := StatField(category, mode)
	if !ok {
		return 0, false
	}

	switch mode {
	case ModeTotals:
		return season.Totals.Get(field)
	case ModeZScores:
		return season.ZScores.Get(field)
	default:
		return season.Averages.Get(field)
	}
}
