package analytics

import "github.com/riskibarqy/roto-draft/internal/domain/player"

const DefaultMinGamesPerSeason = 20

type QualifyingSeason struct {
	Season string `json:"season"`
	Rank   int    `json:"rank"`
	Games  int    `json:"games"`
	Age    *int   `json:"age,omitempty"`
}

// History summarises a player's ranks over qualifying seasons, oldest first.
type History struct {
	Seasons     []QualifyingSeason `json:"seasons"`
	AvgRank     float64            `json:"avg_rank"`
	Consistency float64            `json:"consistency"`
	BestRank    int                `json:"best_rank"`
	WorstRank   int                `json:"worst_rank"`
	RankRange   int                `json:"rank_range"`
	RankTrend   int                `json:"rank_trend"`
	Age         *int               `json:"age,omitempty"`
}

// Summarize keeps seasons with at least minGames games and a rank of the
// requested type. It reports false when no season qualifies.
func Summarize(p player.Player, minGames int, rankType player.RankType) (History, bool) {
	ids := p.SeasonIDs()
	seasons := make([]QualifyingSeason, 0, len(ids))
	ranks := make([]int, 0, len(ids))

	for _, id := range ids {
		record := p.Seasons[id]
		if record.Meta.GamesPlayed < minGames {
			continue
		}
		rank, ok := record.Ranks.ByType(rankType)
		if !ok {
			continue
		}
		seasons = append(seasons, QualifyingSeason{
			Season: id,
			Rank:   rank,
			Games:  record.Meta.GamesPlayed,
			Age:    record.Meta.Age,
		})
		ranks = append(ranks, rank)
	}
	if len(seasons) == 0 {
		return History{}, false
	}

	values := intsToFloats(ranks)
	avg, _ := Mean(values)
	stdDev, _ := StdDev(values)

	best, worst := ranks[0], ranks[0]
	for _, r := range ranks[1:] {
		if r < best {
			best = r
		}
		if r > worst {
			worst = r
		}
	}

	trend := 0
	if len(ranks) > 1 {
		trend = ranks[0] - ranks[len(ranks)-1]
	}

	var age *int
	if latest := seasons[len(seasons)-1].Age; latest != nil && *latest > 0 {
		age = latest
	}

	return History{
		Seasons:     seasons,
		AvgRank:     avg,
		Consistency: stdDev,
		BestRank:    best,
		WorstRank:   worst,
		RankRange:   worst - best,
		RankTrend:   trend,
		Age:         age,
	}, true
}
