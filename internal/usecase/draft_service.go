package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/roto-draft/internal/domain/analytics"
	"github.com/riskibarqy/roto-draft/internal/domain/player"
)

const draftBoardRecentSeasons = 3

type DraftSortColumn string

const (
	SortByName        DraftSortColumn = "name"
	SortByADP         DraftSortColumn = "adp"
	SortByTier        DraftSortColumn = "tier"
	SortByProjRank    DraftSortColumn = "projRank"
	SortByProjValue   DraftSortColumn = "projValue"
	SortByValueDelta  DraftSortColumn = "valueDelta"
	SortByAvgRank     DraftSortColumn = "avgRank"
	SortByRecent1     DraftSortColumn = "recent1"
	SortByRecent2     DraftSortColumn = "recent2"
	SortByRecent3     DraftSortColumn = "recent3"
	SortByConsistency DraftSortColumn = "consistency"
	SortByTrend       DraftSortColumn = "trend"
)

var DraftSortColumns = []DraftSortColumn{
	SortByName,
	SortByADP,
	SortByTier,
	SortByProjRank,
	SortByProjValue,
	SortByValueDelta,
	SortByAvgRank,
	SortByRecent1,
	SortByRecent2,
	SortByRecent3,
	SortByConsistency,
	SortByTrend,
}

// DraftBoardQuery carries the caller's draft session; nothing is stored.
type DraftBoardQuery struct {
	Drafted     []string
	Position    string
	HideDrafted bool
	SortBy      DraftSortColumn
	Desc        bool
}

type SeasonRank struct {
	Season  string
	Display string
	Rank    *int
}

type DraftBoardRow struct {
	Player      PlayerListItem
	Tier        string
	ProjRank    *int
	ProjValue   *float64
	RecentRanks []SeasonRank
	// ValueDelta is the previous season's rank minus the latest one.
	ValueDelta  *int
	AvgRank     *float64
	Consistency *float64
	Trend       *int
	Drafted     bool
}

type DraftBoard struct {
	Seasons []string
	Rows    []DraftBoardRow
}

type CompareQuery struct {
	PlayerIDs []string
	Mode      analytics.StatMode
}

type ComparedValue struct {
	PlayerID   string
	Value      *float64
	Percentile float64
}

type CategoryComparison struct {
	Category analytics.StatCategory
	Values   []ComparedValue
}

type ComparedPlayer struct {
	Player PlayerListItem
	Season string
}

type Comparison struct {
	Mode       analytics.StatMode
	Players    []ComparedPlayer
	Categories []CategoryComparison
}

// TeamMember is one drafted player with a qualifying multi-season history.
type TeamMember struct {
	Player   player.Player
	History  analytics.History
	Category analytics.Category
	Details  analytics.CategoryDetails
	RankTier string
}

// TeamSummary averages the members' historical ranks; both fields are zero
// when no drafted player qualifies.
type TeamSummary struct {
	AvgRank  float64
	BestRank int
}

type TeamStats struct {
	Totals  analytics.TeamTotals
	Players []PlayerListItem
	Members []TeamMember
	Summary TeamSummary
}

type historicalProvider interface {
	HistoricalAnalysis(ctx context.Context, query HistoricalQuery) ([]HistoricalEntry, error)
}

type DraftService struct {
	playerRepo player.Repository
	historical historicalProvider
}

func NewDraftService(playerRepo player.Repository, historical historicalProvider) *DraftService {
	return &DraftService{
		playerRepo: playerRepo,
		historical: historical,
	}
}

// Board builds the draft table. Rows start in player-list order and are
// sorted by the requested column with missing values last in either
// direction.
func (s *DraftService) Board(ctx context.Context, query DraftBoardQuery) (DraftBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Board")
	defer span.End()

	if query.SortBy == "" {
		query.SortBy = SortByADP
	}
	if !validSortColumn(query.SortBy) {
		return DraftBoard{}, fmt.Errorf("%w: unsupported sort column %q", ErrInvalidInput, query.SortBy)
	}
	query.Position = strings.TrimSpace(query.Position)

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return DraftBoard{}, fmt.Errorf("list players: %w", err)
	}
	seasonIDs, err := s.playerRepo.SeasonIDs(ctx)
	if err != nil {
		return DraftBoard{}, fmt.Errorf("list seasons: %w", err)
	}
	recent := recentSeasons(seasonIDs, draftBoardRecentSeasons)

	historicalQuery := HistoricalQuery{
		MinSeasons:        1,
		MinGamesPerSeason: 1,
		RankType:          player.RankPerGame,
	}
	history, err := s.historical.HistoricalAnalysis(ctx, historicalQuery)
	if err != nil {
		return DraftBoard{}, fmt.Errorf("historical analysis: %w", err)
	}
	historyByID := make(map[string]analytics.History, len(history))
	for _, h := range history {
		historyByID[h.Player.ID] = h.History
	}

	drafted := make(map[string]struct{}, len(query.Drafted))
	for _, id := range query.Drafted {
		drafted[strings.TrimSpace(id)] = struct{}{}
	}

	byID := make(map[string]player.Player, len(players))
	items := make([]PlayerListItem, 0, len(players))
	for _, p := range players {
		byID[p.ID] = p
		items = append(items, toListItem(p))
	}
	sortByADP(items)

	rows := make([]DraftBoardRow, 0, len(items))
	for _, item := range items {
		p := byID[item.ID]
		if query.Position != "" && !p.HasPosition(query.Position) {
			continue
		}
		_, isDrafted := drafted[p.ID]
		if query.HideDrafted && isDrafted {
			continue
		}

		row := DraftBoardRow{
			Player:      item,
			RecentRanks: make([]SeasonRank, 0, len(recent)),
			Drafted:     isDrafted,
		}
		if p.Bucket != nil {
			row.Tier = p.Bucket.Tier
			row.ProjRank = p.Bucket.Rank
		}
		if item.ADP != nil && row.ProjRank != nil {
			v := *item.ADP - float64(*row.ProjRank)
			row.ProjValue = &v
		}

		for _, seasonID := range recent {
			sr := SeasonRank{Season: seasonID, Display: analytics.SeasonDisplayName(seasonID)}
			if record, ok := p.Season(seasonID); ok {
				if rank, ok := record.Ranks.ByType(player.RankPerGame); ok {
					sr.Rank = &rank
				}
			}
			row.RecentRanks = append(row.RecentRanks, sr)
		}
		if len(row.RecentRanks) >= 2 && row.RecentRanks[0].Rank != nil && row.RecentRanks[1].Rank != nil {
			delta := *row.RecentRanks[1].Rank - *row.RecentRanks[0].Rank
			row.ValueDelta = &delta
		}

		if h, ok := historyByID[p.ID]; ok {
			avg, consistency, trend := h.AvgRank, h.Consistency, h.RankTrend
			row.AvgRank = &avg
			row.Consistency = &consistency
			row.Trend = &trend
		}

		rows = append(rows, row)
	}

	sortDraftRows(rows, query.SortBy, query.Desc)

	return DraftBoard{Seasons: recent, Rows: rows}, nil
}

// TeamStats sums the latest per-game production of the drafted players and
// summarises the historical ranks of those with at least two qualifying
// seasons. Unknown ids and repeated ids are ignored.
func (s *DraftService) TeamStats(ctx context.Context, drafted []string) (TeamStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.TeamStats")
	defer span.End()

	ids := uniqueIDs(drafted)
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return TeamStats{}, fmt.Errorf("get drafted players: %w", err)
	}

	seasons := make([]player.SeasonRecord, 0, len(players))
	items := make([]PlayerListItem, 0, len(players))
	for _, p := range players {
		items = append(items, toListItem(p))
		if _, record, ok := p.LatestSeason(); ok {
			seasons = append(seasons, record)
		}
	}

	members, err := s.teamMembers(ctx, ids)
	if err != nil {
		return TeamStats{}, err
	}

	return TeamStats{
		Totals:  analytics.SumTeam(seasons),
		Players: items,
		Members: members,
		Summary: summarizeTeam(members),
	}, nil
}

// teamMembers keeps the drafted players of the default historical analysis,
// in ascending average rank.
func (s *DraftService) teamMembers(ctx context.Context, ids []string) ([]TeamMember, error) {
	drafted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drafted[id] = struct{}{}
	}

	entries, err := s.historical.HistoricalAnalysis(ctx, NewHistoricalQuery())
	if err != nil {
		return nil, fmt.Errorf("team history: %w", err)
	}

	out := make([]TeamMember, 0, len(ids))
	for _, e := range entries {
		if _, ok := drafted[e.Player.ID]; !ok {
			continue
		}
		out = append(out, TeamMember{
			Player:   e.Player,
			History:  e.History,
			Category: e.Category,
			Details:  e.Category.Details(),
			RankTier: analytics.RankTier(int(math.Round(e.History.AvgRank))),
		})
	}
	return out, nil
}

func summarizeTeam(members []TeamMember) TeamSummary {
	if len(members) == 0 {
		return TeamSummary{}
	}

	var total float64
	best := members[0].History.BestRank
	for _, m := range members {
		total += m.History.AvgRank
		if m.History.BestRank < best {
			best = m.History.BestRank
		}
	}
	return TeamSummary{
		AvgRank:  total / float64(len(members)),
		BestRank: best,
	}
}

// Compare lines up the selected players' latest-season values for every
// stat category with each value's percentile among the selection.
func (s *DraftService) Compare(ctx context.Context, query CompareQuery) (Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Compare")
	defer span.End()

	ids := uniqueIDs(query.PlayerIDs)
	if len(ids) == 0 {
		return Comparison{}, fmt.Errorf("%w: at least one player id is required", ErrInvalidInput)
	}
	if query.Mode == "" {
		query.Mode = analytics.ModeAverages
	}
	if _, ok := analytics.ParseStatMode(string(query.Mode)); !ok {
		return Comparison{}, fmt.Errorf("%w: unsupported stat mode %q", ErrInvalidInput, query.Mode)
	}

	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return Comparison{}, fmt.Errorf("get players: %w", err)
	}
	if len(players) != len(ids) {
		found := make(map[string]struct{}, len(players))
		for _, p := range players {
			found[p.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return Comparison{}, fmt.Errorf("%w: player=%s", ErrNotFound, id)
			}
		}
	}

	out := Comparison{
		Mode:       query.Mode,
		Players:    make([]ComparedPlayer, 0, len(players)),
		Categories: make([]CategoryComparison, 0, len(analytics.StatCategories)),
	}
	latest := make([]*player.SeasonRecord, len(players))
	for i, p := range players {
		seasonID, record, ok := p.LatestSeason()
		if ok {
			rec := record
			latest[i] = &rec
		}
		out.Players = append(out.Players, ComparedPlayer{Player: toListItem(p), Season: seasonID})
	}

	for _, category := range analytics.StatCategories {
		values := make([]*float64, len(players))
		present := make([]float64, 0, len(players))
		for i := range players {
			if latest[i] == nil {
				continue
			}
			if v, ok := analytics.StatValue(*latest[i], category, query.Mode); ok {
				value := v
				values[i] = &value
				present = append(present, v)
			}
		}

		row := CategoryComparison{Category: category, Values: make([]ComparedValue, 0, len(players))}
		for i, p := range players {
			cv := ComparedValue{PlayerID: p.ID, Value: values[i]}
			if values[i] != nil {
				cv.Percentile = analytics.Percentile(*values[i], present)
			}
			row.Values = append(row.Values, cv)
		}
		out.Categories = append(out.Categories, row)
	}

	return out, nil
}

func validSortColumn(c DraftSortColumn) bool {
	for _, candidate := range DraftSortColumns {
		if candidate == c {
			return true
		}
	}
	return false
}

// recentSeasons returns up to n season ids, most recent first.
func recentSeasons(seasonIDs []string, n int) []string {
	sorted := append([]string(nil), seasonIDs...)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func sortDraftRows(rows []DraftBoardRow, column DraftSortColumn, desc bool) {
	if column == SortByName {
		sort.SliceStable(rows, func(i, j int) bool {
			c := strings.Compare(rows[i].Player.Name, rows[j].Player.Name)
			if desc {
				return c > 0
			}
			return c < 0
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, aok := draftSortValue(rows[i], column)
		b, bok := draftSortValue(rows[j], column)
		switch {
		case !aok && !bok:
			return false
		case !aok:
			return false
		case !bok:
			return true
		case desc:
			return a > b
		default:
			return a < b
		}
	})
}

func draftSortValue(row DraftBoardRow, column DraftSortColumn) (float64, bool) {
	switch column {
	case SortByADP:
		return floatPtr(row.Player.ADP)
	case SortByTier:
		tier, err := strconv.Atoi(strings.TrimSpace(row.Tier))
		if err != nil {
			return 0, false
		}
		return float64(tier), true
	case SortByProjRank:
		return intPtr(row.ProjRank)
	case SortByProjValue:
		return floatPtr(row.ProjValue)
	case SortByValueDelta:
		return intPtr(row.ValueDelta)
	case SortByAvgRank:
		return floatPtr(row.AvgRank)
	case SortByRecent1:
		return recentRank(row, 0)
	case SortByRecent2:
		return recentRank(row, 1)
	case SortByRecent3:
		return recentRank(row, 2)
	case SortByConsistency:
		return floatPtr(row.Consistency)
	case SortByTrend:
		return intPtr(row.Trend)
	default:
		return floatPtr(row.Player.ADP)
	}
}

func recentRank(row DraftBoardRow, idx int) (float64, bool) {
	if idx >= len(row.RecentRanks) {
		return 0, false
	}
	return intPtr(row.RecentRanks[idx].Rank)
}

func floatPtr(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func intPtr(v *int) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}
