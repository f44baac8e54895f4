package analytics

import (
	"fmt"
	"math"

	"github.com/riskibarqy/roto-draft/internal/domain/player"
)

const (
	BreakoutThreshold = 4.0

	breakoutMaxRankPoints   = 3.0
	breakoutPrimeAgeMin     = 22
	breakoutPrimeAgeMax     = 26
	breakoutPrimeAgePoints  = 2.0
	breakoutGamesIncrease   = 10
	breakoutGamesPoints     = 2.0
	breakoutADPOutperform   = 20.0
	breakoutADPPoints       = 3.0
	undervaluedADPThreshold = 15.0
)

// Breakout is the weighted breakout heuristic for one player.
type Breakout struct {
	Score   float64   `json:"score"`
	Reasons []string  `json:"reasons"`
	Trends  Trends    `json:"trends"`
	Value   *ADPValue `json:"value,omitempty"`
}

func (b Breakout) Qualifies() bool {
	return b.Score >= BreakoutThreshold
}

// ScoreBreakout needs at least two seasons of history.
func ScoreBreakout(p player.Player) (Breakout, bool) {
	trends, ok := ComputeTrends(p)
	if !ok {
		return Breakout{}, false
	}
	ids := p.SeasonIDs()
	latest := p.Seasons[ids[len(ids)-1]]
	previous := p.Seasons[ids[len(ids)-2]]

	out := Breakout{Trends: trends, Reasons: []string{}}

	if trends.RankChange != nil && *trends.RankChange > 0 {
		out.Score += math.Min(*trends.RankChange/10, breakoutMaxRankPoints)
		out.Reasons = append(out.Reasons, fmt.Sprintf("Rank improved by %d spots", int(math.Round(*trends.RankChange))))
	}

	if age := latest.Meta.Age; age != nil && *age >= breakoutPrimeAgeMin && *age <= breakoutPrimeAgeMax {
		out.Score += breakoutPrimeAgePoints
		out.Reasons = append(out.Reasons, fmt.Sprintf("Prime age (%d)", *age))
	}

	current, prior := latest.Meta.GamesPlayed, previous.Meta.GamesPlayed
	if current > prior+breakoutGamesIncrease {
		out.Score += breakoutGamesPoints
		out.Reasons = append(out.Reasons, fmt.Sprintf("Games played increased by %d", current-prior))
	}

	if value, ok := ValueVsADP(p); ok {
		out.Value = &value
		if value.Value > breakoutADPOutperform {
			out.Score += breakoutADPPoints
			out.Reasons = append(out.Reasons, fmt.Sprintf("Outperformed ADP by %d spots", int(math.Round(value.Value))))
		}
	}

	return out, true
}

// Undervalued reports whether a player beat their draft position by more
// than fifteen spots.
func Undervalued(v ADPValue) bool {
	return v.Value > undervaluedADPThreshold
}
