package analytics

import (
	"strings"

	"github.com/riskibarqy/roto-draft/internal/domain/player"
)

// RankTier groups a rank into a display tier; ranks past 120 have none.
func RankTier(rank int) string {
	switch {
	case rank <= 0:
		return ""
	case rank <= 24:
		return "tier-1"
	case rank <= 60:
		return "tier-2"
	case rank <= 120:
		return "tier-3"
	default:
		return ""
	}
}

// SeasonDisplayName shortens "2024-2025" to "24-25".
func SeasonDisplayName(season string) string {
	start, end, ok := strings.Cut(season, "-")
	if !ok || len(start) < 2 || len(end) < 2 {
		return season
	}
	return start[len(start)-2:] + "-" + end[len(end)-2:]
}

// TeamTotals aggregates the latest per-game production of a drafted roster.
type TeamTotals struct {
	PlayerCount         int                      `json:"player_count"`
	Categories          map[StatCategory]float64 `json:"categories"`
	FieldGoalsMade      float64                  `json:"field_goals_made"`
	FieldGoalsAttempted float64                  `json:"field_goals_attempted"`
	FreeThrowsMade      float64                  `json:"free_throws_made"`
	FreeThrowsAttempted float64                  `json:"free_throws_attempted"`
}

var countingCategories = []StatCategory{
	StatPoints,
	StatRebounds,
	StatAssists,
	StatSteals,
	StatBlocks,
	StatThrees,
	StatTurnovers,
}

// SumTeam adds per-game counting stats and derives FG% and FT% from summed
// makes and attempts. Seasons without averages are skipped.
func SumTeam(seasons []player.SeasonRecord) TeamTotals {
	out := TeamTotals{Categories: make(map[StatCategory]float64, len(StatCategories))}
	for _, c := range countingCategories {
		out.Categories[c] = 0
	}

	for _, season := range seasons {
		// An empty averages line still counts the player; only absence skips.
		if season.Averages == nil {
			continue
		}
		for _, c := range countingCategories {
			if v, ok := StatValue(season, c, ModeAverages); ok {
				out.Categories[c] += v
			}
		}
		if season.Totals != nil {
			out.FieldGoalsAttempted += season.Totals["FGA"]
			out.FieldGoalsMade += season.Totals["FG"]
			out.FreeThrowsAttempted += season.Totals["FTA"]
			out.FreeThrowsMade += season.Totals["FT"]
		}
		out.PlayerCount++
	}

	out.Categories[StatFieldGoalPct] = ratio(out.FieldGoalsMade, out.FieldGoalsAttempted)
	out.Categories[StatFreeThrowPct] = ratio(out.FreeThrowsMade, out.FreeThrowsAttempted)

	return out
}

func ratio(made, attempted float64) float64 {
	if attempted <= 0 {
		return 0
	}
	return made / attempted
}
