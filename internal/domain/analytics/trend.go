package analytics

import "github.com/riskibarqy/roto-draft/internal/domain/player"

// Trends describes how a player moved across all recorded seasons.
type Trends struct {
	// RankChange is first-season rank minus last-season rank; positive means
	// the player improved. Nil when either end has no rank.
	RankChange     *float64                 `json:"rank_change,omitempty"`
	RankSlope      *float64                 `json:"rank_slope,omitempty"`
	CategorySlopes map[StatCategory]float64 `json:"category_slopes"`
}

// ComputeTrends needs at least two seasons.
func ComputeTrends(p player.Player) (Trends, bool) {
	ids := p.SeasonIDs()
	if len(ids) < 2 {
		return Trends{}, false
	}

	trends := Trends{CategorySlopes: make(map[StatCategory]float64)}

	first := p.Seasons[ids[0]]
	last := p.Seasons[ids[len(ids)-1]]
	firstRank, okFirst := first.Ranks.Preferred()
	lastRank, okLast := last.Ranks.Preferred()
	if okFirst && okLast {
		change := float64(firstRank - lastRank)
		slope := change / float64(len(ids)-1)
		trends.RankChange = &change
		trends.RankSlope = &slope
	}

	for _, category := range StatCategories {
		values := make([]float64, 0, len(ids))
		for _, id := range ids {
			if v, ok := StatValue(p.Seasons[id], category, ModeAverages); ok {
				values = append(values, v)
			}
		}
		if slope, ok := Slope(values); ok {
			trends.CategorySlopes[category] = slope
		}
	}

	return trends, true
}

// ADPValue compares a player's draft position with their latest rank.
type ADPValue struct {
	ADP        float64 `json:"adp"`
	Rank       int     `json:"rank"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// ValueVsADP is positive when the player finished better than drafted.
func ValueVsADP(p player.Player) (ADPValue, bool) {
	adp, ok := p.ADPValue()
	if !ok {
		return ADPValue{}, false
	}
	_, latest, ok := p.LatestSeason()
	if !ok {
		return ADPValue{}, false
	}
	rank, ok := latest.Ranks.Preferred()
	if !ok {
		return ADPValue{}, false
	}

	value := adp - float64(rank)
	return ADPValue{
		ADP:        adp,
		Rank:       rank,
		Value:      value,
		Percentage: value / adp * 100,
	}, true
}
