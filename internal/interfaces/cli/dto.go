package cli

import (
	"github.com/riskibarqy/roto-draft/internal/domain/analytics"
	"github.com/riskibarqy/roto-draft/internal/domain/player"
	"github.com/riskibarqy/roto-draft/internal/usecase"
)

type playerRefDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Team      string   `json:"team"`
	Positions []string `json:"positions"`
}

type playerListDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Team      string   `json:"team"`
	Positions []string `json:"positions"`
	ADP       *float64 `json:"adp,omitempty"`
	Rookie    bool     `json:"rookie"`
	Seasons   []string `json:"seasons"`
}

type adpDTO struct {
	Value  float64 `json:"value"`
	Date   *string `json:"date,omitempty"`
	Rookie bool    `json:"rookie"`
}

type bucketDTO struct {
	Tier  string   `json:"tier"`
	Rank  *int     `json:"rank,omitempty"`
	Flags []string `json:"flags"`
}

type seasonDTO struct {
	Season      string          `json:"season"`
	GamesPlayed int             `json:"games_played"`
	Age         *int            `json:"age,omitempty"`
	Averages    player.StatLine `json:"averages"`
	Totals      player.StatLine `json:"totals"`
	ZScores     player.StatLine `json:"zscores"`
	PerGameRank *int            `json:"per_game_rank,omitempty"`
	TotalRank   *int            `json:"total_rank,omitempty"`
}

type playerDetailDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Team      string      `json:"team"`
	Positions []string    `json:"positions"`
	ADP       *adpDTO     `json:"adp,omitempty"`
	Bucket    *bucketDTO  `json:"bucket,omitempty"`
	Seasons   []seasonDTO `json:"seasons"`
}

type leaderboardEntryDTO struct {
	Rank        int             `json:"rank"`
	Tier        string          `json:"tier"`
	Season      string          `json:"season"`
	Player      playerRefDTO    `json:"player"`
	GamesPlayed int             `json:"games_played"`
	Averages    player.StatLine `json:"averages"`
}

type breakoutDTO struct {
	Player   playerRefDTO       `json:"player"`
	Breakout analytics.Breakout `json:"breakout"`
}

type undervaluedDTO struct {
	Player playerRefDTO       `json:"player"`
	Value  analytics.ADPValue `json:"value"`
	Trends *analytics.Trends  `json:"trends,omitempty"`
}

type historicalEntryDTO struct {
	Player            playerRefDTO                `json:"player"`
	Category          analytics.Category          `json:"category"`
	ConsistencyRating analytics.ConsistencyRating `json:"consistency_rating"`
	History           analytics.History           `json:"history"`
}

type categoriesDTO struct {
	Historical  []analytics.CategoryDetails `json:"historical"`
	Stats       []analytics.StatCategory    `json:"stats"`
	Modes       []analytics.StatMode        `json:"modes"`
	SortColumns []usecase.DraftSortColumn   `json:"sort_columns"`
}

type comparedValueDTO struct {
	PlayerID   string   `json:"player_id"`
	Value      *float64 `json:"value"`
	Percentile float64  `json:"percentile"`
}

type categoryComparisonDTO struct {
	Category analytics.StatCategory `json:"category"`
	Values   []comparedValueDTO     `json:"values"`
}

type comparedPlayerDTO struct {
	Player playerListDTO `json:"player"`
	Season string        `json:"season,omitempty"`
}

type comparisonDTO struct {
	Mode       analytics.StatMode      `json:"mode"`
	Players    []comparedPlayerDTO     `json:"players"`
	Categories []categoryComparisonDTO `json:"categories"`
}

type teamMemberDTO struct {
	Player   playerRefDTO                 `json:"player"`
	Bucket   *bucketDTO                   `json:"bucket,omitempty"`
	AvgRank  float64                      `json:"avg_rank"`
	RankTier string                       `json:"rank_tier,omitempty"`
	Category analytics.CategoryDetails    `json:"category"`
	Seasons  []analytics.QualifyingSeason `json:"seasons"`
}

type teamSummaryDTO struct {
	Players  int     `json:"players"`
	AvgRank  float64 `json:"avg_rank"`
	BestRank int     `json:"best_rank"`
}

type teamStatsDTO struct {
	Summary teamSummaryDTO       `json:"summary"`
	Members []teamMemberDTO      `json:"members"`
	Totals  analytics.TeamTotals `json:"totals"`
	Players []playerListDTO      `json:"players"`
}

type seasonRankDTO struct {
	Season  string `json:"season"`
	Display string `json:"display"`
	Rank    *int   `json:"rank"`
}

type draftBoardRowDTO struct {
	Player      playerListDTO   `json:"player"`
	Tier        string          `json:"tier,omitempty"`
	ProjRank    *int            `json:"proj_rank"`
	ProjValue   *float64        `json:"proj_value"`
	RecentRanks []seasonRankDTO `json:"recent_ranks"`
	ValueDelta  *int            `json:"value_delta"`
	AvgRank     *float64        `json:"avg_rank"`
	Consistency *float64        `json:"consistency"`
	Trend       *int            `json:"trend"`
	Drafted     bool            `json:"drafted"`
}

type draftBoardDTO struct {
	Seasons []string           `json:"seasons"`
	Rows    []draftBoardRowDTO `json:"rows"`
}

func playerRefToDTO(p player.Player) playerRefDTO {
	return playerRefDTO{
		ID:        p.ID,
		Name:      p.Name,
		Team:      p.LatestTeam,
		Positions: p.Positions,
	}
}

func playerListToDTO(item usecase.PlayerListItem) playerListDTO {
	return playerListDTO{
		ID:        item.ID,
		Name:      item.Name,
		Team:      item.Team,
		Positions: item.Positions,
		ADP:       item.ADP,
		Rookie:    item.Rookie,
		Seasons:   item.Seasons,
	}
}

func playerListsToDTO(items []usecase.PlayerListItem) []playerListDTO {
	out := make([]playerListDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerListToDTO(item))
	}
	return out
}

func playerDetailToDTO(p player.Player) playerDetailDTO {
	out := playerDetailDTO{
		ID:        p.ID,
		Name:      p.Name,
		Team:      p.LatestTeam,
		Positions: p.Positions,
		Seasons:   make([]seasonDTO, 0, len(p.Seasons)),
	}
	if p.ADP != nil {
		out.ADP = &adpDTO{Value: p.ADP.Value, Date: p.ADP.Date, Rookie: p.ADP.Rookie}
	}
	if p.Bucket != nil {
		out.Bucket = &bucketDTO{Tier: p.Bucket.Tier, Rank: p.Bucket.Rank, Flags: p.Bucket.Flags}
	}
	for _, id := range p.SeasonIDs() {
		s := p.Seasons[id]
		out.Seasons = append(out.Seasons, seasonDTO{
			Season:      id,
			GamesPlayed: s.Meta.GamesPlayed,
			Age:         s.Meta.Age,
			Averages:    s.Averages,
			Totals:      s.Totals,
			ZScores:     s.ZScores,
			PerGameRank: s.Ranks.PerGame,
			TotalRank:   s.Ranks.Total,
		})
	}
	return out
}

func leaderboardToDTO(entries []usecase.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardEntryDTO{
			Rank:        e.Rank,
			Tier:        e.Tier,
			Season:      e.Season,
			Player:      playerRefToDTO(e.Player),
			GamesPlayed: e.Record.Meta.GamesPlayed,
			Averages:    e.Record.Averages,
		})
	}
	return out
}

func breakoutsToDTO(items []usecase.BreakoutCandidate) []breakoutDTO {
	out := make([]breakoutDTO, 0, len(items))
	for _, item := range items {
		out = append(out, breakoutDTO{Player: playerRefToDTO(item.Player), Breakout: item.Breakout})
	}
	return out
}

func undervaluedToDTO(items []usecase.UndervaluedPlayer) []undervaluedDTO {
	out := make([]undervaluedDTO, 0, len(items))
	for _, item := range items {
		out = append(out, undervaluedDTO{
			Player: playerRefToDTO(item.Player),
			Value:  item.Value,
			Trends: item.Trends,
		})
	}
	return out
}

func historicalToDTO(entries []usecase.HistoricalEntry) []historicalEntryDTO {
	out := make([]historicalEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, historicalEntryDTO{
			Player:            playerRefToDTO(e.Player),
			Category:          e.Category,
			ConsistencyRating: e.ConsistencyRating,
			History:           e.History,
		})
	}
	return out
}

func categoriesToDTO() categoriesDTO {
	details := make([]analytics.CategoryDetails, 0, len(analytics.Categories))
	for _, c := range analytics.Categories {
		details = append(details, c.Details())
	}
	return categoriesDTO{
		Historical:  details,
		Stats:       analytics.StatCategories,
		Modes:       analytics.StatModes,
		SortColumns: usecase.DraftSortColumns,
	}
}

func comparisonToDTO(c usecase.Comparison) comparisonDTO {
	out := comparisonDTO{
		Mode:       c.Mode,
		Players:    make([]comparedPlayerDTO, 0, len(c.Players)),
		Categories: make([]categoryComparisonDTO, 0, len(c.Categories)),
	}
	for _, p := range c.Players {
		out.Players = append(out.Players, comparedPlayerDTO{Player: playerListToDTO(p.Player), Season: p.Season})
	}
	for _, cat := range c.Categories {
		values := make([]comparedValueDTO, 0, len(cat.Values))
		for _, v := range cat.Values {
			values = append(values, comparedValueDTO{PlayerID: v.PlayerID, Value: v.Value, Percentile: v.Percentile})
		}
		out.Categories = append(out.Categories, categoryComparisonDTO{Category: cat.Category, Values: values})
	}
	return out
}

func teamStatsToDTO(stats usecase.TeamStats) teamStatsDTO {
	members := make([]teamMemberDTO, 0, len(stats.Members))
	for _, m := range stats.Members {
		member := teamMemberDTO{
			Player:   playerRefToDTO(m.Player),
			AvgRank:  m.History.AvgRank,
			RankTier: m.RankTier,
			Category: m.Details,
			Seasons:  m.History.Seasons,
		}
		if b := m.Player.Bucket; b != nil {
			member.Bucket = &bucketDTO{Tier: b.Tier, Rank: b.Rank, Flags: b.Flags}
		}
		members = append(members, member)
	}

	return teamStatsDTO{
		Summary: teamSummaryDTO{
			Players:  len(stats.Players),
			AvgRank:  stats.Summary.AvgRank,
			BestRank: stats.Summary.BestRank,
		},
		Members: members,
		Totals:  stats.Totals,
		Players: playerListsToDTO(stats.Players),
	}
}

func draftBoardToDTO(board usecase.DraftBoard) draftBoardDTO {
	out := draftBoardDTO{
		Seasons: board.Seasons,
		Rows:    make([]draftBoardRowDTO, 0, len(board.Rows)),
	}
	for _, row := range board.Rows {
		ranks := make([]seasonRankDTO, 0, len(row.RecentRanks))
		for _, r := range row.RecentRanks {
			ranks = append(ranks, seasonRankDTO{Season: r.Season, Display: r.Display, Rank: r.Rank})
		}
		out.Rows = append(out.Rows, draftBoardRowDTO{
			Player:      playerListToDTO(row.Player),
			Tier:        row.Tier,
			ProjRank:    row.ProjRank,
			ProjValue:   row.ProjValue,
			RecentRanks: ranks,
			ValueDelta:  row.ValueDelta,
			AvgRank:     row.AvgRank,
			Consistency: row.Consistency,
			Trend:       row.Trend,
			Drafted:     row.Drafted,
		})
	}
	return out
}
