package dataset

import (
	"sort"

	"github.com/riskibarqy/roto-draft/internal/domain/player"
)

// Join merges the parsed documents into one player per registry entry.
// Missing cross references are not errors: such players simply have no
// seasons, ADP or bucket. The result order is ascending player id.
func Join(docs Documents) (map[string]player.Player, []string) {
	historyByID := indexHistorical(docs.Historical)

	out := make(map[string]player.Player, len(docs.Master.Players))
	order := make([]string, 0, len(docs.Master.Players))
	for id, entry := range docs.Master.Players {
		p := player.Player{
			ID:         id,
			Name:       entry.Name,
			LatestTeam: entry.Team,
			Positions:  cloneStrings(entry.Positions),
			Seasons:    map[string]player.SeasonRecord{},
		}

		if hist, ok := historyByID[id]; ok {
			p.Seasons = convertSeasons(hist.Seasons)
			if hist.LatestTeam != "" {
				p.LatestTeam = hist.LatestTeam
			}
			if len(hist.Positions) > 0 {
				p.Positions = cloneStrings(hist.Positions)
			}
		}

		if entry.ADP != nil && *entry.ADP > 0 {
			var date *string
			if meta, ok := docs.ADP[id]; ok && meta.ADPDate != nil {
				d := *meta.ADPDate
				date = &d
			}
			p.ADP = &player.ADP{
				Value:  *entry.ADP,
				Date:   date,
				Rookie: entry.Rookie,
			}
		}

		if entry.Bucket != nil && *entry.Bucket != "" {
			flags := cloneStrings(entry.Flags)
			if flags == nil {
				flags = []string{}
			}
			p.Bucket = &player.Bucket{
				Tier:  string(*entry.Bucket),
				Rank:  positiveInt(entry.BucketRank),
				Flags: flags,
			}
		}

		out[id] = p
		order = append(order, id)
	}

	sort.Strings(order)
	return out, order
}

// indexHistorical keys historical entries by player id. When two entries
// claim the same id, the one under the smallest document key wins.
func indexHistorical(doc HistoricalDocument) map[string]HistoricalEntry {
	keys := make([]string, 0, len(doc.Players))
	for key := range doc.Players {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]HistoricalEntry, len(keys))
	for _, key := range keys {
		entry := doc.Players[key]
		if entry.PlayerID == "" {
			continue
		}
		if _, exists := out[entry.PlayerID]; exists {
			continue
		}
		out[entry.PlayerID] = entry
	}
	return out
}

func convertSeasons(in map[string]SeasonEntry) map[string]player.SeasonRecord {
	out := make(map[string]player.SeasonRecord, len(in))
	for id, s := range in {
		record := player.SeasonRecord{
			Averages: statLine(s.Averages),
			Totals:   statLine(s.Totals),
			ZScores:  statLine(s.ZScores),
			Ranks: player.Ranks{
				PerGame: positiveInt(s.Ranks.PerGameRank),
				Total:   positiveInt(s.Ranks.TotalRank),
			},
		}
		if s.Meta.GamesPlayed != nil {
			record.Meta.GamesPlayed = int(*s.Meta.GamesPlayed)
		}
		record.Meta.Age = positiveInt(s.Meta.Age)
		out[id] = record
	}
	return out
}

// statLine keeps numeric entries only; nulls and labels are dropped.
func statLine(in map[string]any) player.StatLine {
	if in == nil {
		return nil
	}
	out := make(player.StatLine, len(in))
	for key, raw := range in {
		if v, ok := raw.(float64); ok {
			out[key] = v
		}
	}
	return out
}

func positiveInt(v *float64) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	out := int(*v)
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
