package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/roto-draft/internal/domain/analytics"
	"github.com/riskibarqy/roto-draft/internal/domain/player"
	"github.com/riskibarqy/roto-draft/internal/platform/cache"
	"github.com/riskibarqy/roto-draft/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultHistoricalMinSeasons = 2

type LeaderboardQuery struct {
	// Season restricts the board to one season; empty means each player's
	// most recent season.
	Season   string
	Position string
	MinGames int
	RankType player.RankType
	Limit    int
}

type LeaderboardEntry struct {
	Player player.Player
	Season string
	Record player.SeasonRecord
	Rank   int
	Tier   string
}

type BreakoutCandidate struct {
	Player   player.Player
	Breakout analytics.Breakout
}

type UndervaluedPlayer struct {
	Player player.Player
	Value  analytics.ADPValue
	Trends *analytics.Trends
}

type HistoricalQuery struct {
	Position          string
	Category          analytics.Category
	PlayerID          string
	MinSeasons        int
	MinGamesPerSeason int
	RankType          player.RankType
}

// NewHistoricalQuery returns the defaults used by the historical view.
func NewHistoricalQuery() HistoricalQuery {
	return HistoricalQuery{
		MinSeasons:        DefaultHistoricalMinSeasons,
		MinGamesPerSeason: analytics.DefaultMinGamesPerSeason,
		RankType:          player.RankPerGame,
	}
}

type HistoricalEntry struct {
	Player            player.Player
	History           analytics.History
	Category          analytics.Category
	ConsistencyRating analytics.ConsistencyRating
}

type AnalyticsService struct {
	playerRepo player.Repository
	cache      *cache.Store
	logger     *logging.Logger
}

// NewAnalyticsService builds the query service. A nil store disables
// memoisation.
func NewAnalyticsService(playerRepo player.Repository, store *cache.Store, logger *logging.Logger) *AnalyticsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalyticsService{
		playerRepo: playerRepo,
		cache:      store,
		logger:     logger,
	}
}

func (s *AnalyticsService) Leaderboard(ctx context.Context, query LeaderboardQuery) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Leaderboard",
		attribute.String("leaderboard.season", query.Season),
		attribute.String("leaderboard.position", query.Position),
	)
	defer span.End()

	query.Season = strings.TrimSpace(query.Season)
	query.Position = strings.TrimSpace(query.Position)
	if query.RankType == "" {
		query.RankType = player.RankPerGame
	}
	if !query.RankType.Valid() {
		return nil, fmt.Errorf("%w: unsupported rank type %q", ErrInvalidInput, query.RankType)
	}
	if query.MinGames < 0 {
		return nil, fmt.Errorf("%w: min games must not be negative", ErrInvalidInput)
	}
	if query.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	key := fmt.Sprintf("leaderboard:%s:%s:%d:%s", query.Season, query.Position, query.MinGames, query.RankType)
	v, err := s.memoize(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildLeaderboard(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	entries, _ := v.([]LeaderboardEntry)
	return limitSlice(entries, query.Limit), nil
}

func (s *AnalyticsService) buildLeaderboard(ctx context.Context, query LeaderboardQuery) ([]LeaderboardEntry, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]LeaderboardEntry, 0, len(players))
	for _, p := range players {
		if query.Position != "" && !p.HasPosition(query.Position) {
			continue
		}

		seasonID := query.Season
		var record player.SeasonRecord
		if seasonID != "" {
			var ok bool
			if record, ok = p.Season(seasonID); !ok {
				continue
			}
		} else {
			var ok bool
			if seasonID, record, ok = p.LatestSeason(); !ok {
				continue
			}
		}

		if record.Meta.GamesPlayed < query.MinGames {
			continue
		}
		rank, ok := record.Ranks.ByType(query.RankType)
		if !ok {
			continue
		}

		out = append(out, LeaderboardEntry{
			Player: p,
			Season: seasonID,
			Record: record,
			Rank:   rank,
			Tier:   analytics.RankTier(rank),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})

	return out, nil
}

// BreakoutCandidates returns players scoring at least the breakout
// threshold, highest score first.
func (s *AnalyticsService) BreakoutCandidates(ctx context.Context, limit int) ([]BreakoutCandidate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.BreakoutCandidates")
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]BreakoutCandidate, 0)
	for _, p := range players {
		b, ok := analytics.ScoreBreakout(p)
		if !ok || !b.Qualifies() {
			continue
		}
		out = append(out, BreakoutCandidate{Player: p, Breakout: b})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Breakout.Score > out[j].Breakout.Score
	})
	s.logger.DebugContext(ctx, "breakout candidates computed", "count", len(out))

	return limitSlice(out, limit), nil
}

// UndervaluedPlayers returns players who beat their ADP by more than fifteen
// spots, largest margin first.
func (s *AnalyticsService) UndervaluedPlayers(ctx context.Context, limit int) ([]UndervaluedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.UndervaluedPlayers")
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]UndervaluedPlayer, 0)
	for _, p := range players {
		value, ok := analytics.ValueVsADP(p)
		if !ok || !analytics.Undervalued(value) {
			continue
		}
		item := UndervaluedPlayer{Player: p, Value: value}
		if trends, ok := analytics.ComputeTrends(p); ok {
			item.Trends = &trends
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.Value > out[j].Value.Value
	})

	return limitSlice(out, limit), nil
}

// HistoricalAnalysis summarises qualifying seasons per player and classifies
// the result, best average rank first.
func (s *AnalyticsService) HistoricalAnalysis(ctx context.Context, query HistoricalQuery) ([]HistoricalEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.HistoricalAnalysis",
		attribute.String("historical.category", string(query.Category)),
		attribute.Int("historical.min_seasons", query.MinSeasons),
	)
	defer span.End()

	query.Position = strings.TrimSpace(query.Position)
	query.PlayerID = strings.TrimSpace(query.PlayerID)
	if query.RankType == "" {
		query.RankType = player.RankPerGame
	}
	if !query.RankType.Valid() {
		return nil, fmt.Errorf("%w: unsupported rank type %q", ErrInvalidInput, query.RankType)
	}
	if query.Category != "" {
		if _, ok := analytics.ParseCategory(string(query.Category)); !ok {
			return nil, fmt.Errorf("%w: unsupported category %q", ErrInvalidInput, query.Category)
		}
	}
	if query.MinSeasons < 1 {
		return nil, fmt.Errorf("%w: min seasons must be at least 1", ErrInvalidInput)
	}
	if query.MinGamesPerSeason < 0 {
		return nil, fmt.Errorf("%w: min games per season must not be negative", ErrInvalidInput)
	}

	key := fmt.Sprintf("historical:%s:%s:%s:%d:%d:%s",
		query.Position, query.Category, query.PlayerID, query.MinSeasons, query.MinGamesPerSeason, query.RankType)
	v, err := s.memoize(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildHistorical(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	entries, _ := v.([]HistoricalEntry)
	return limitSlice(entries, 0), nil
}

func (s *AnalyticsService) buildHistorical(ctx context.Context, query HistoricalQuery) ([]HistoricalEntry, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]HistoricalEntry, 0, len(players))
	for _, p := range players {
		if query.PlayerID != "" && p.ID != query.PlayerID {
			continue
		}
		if len(p.Seasons) < query.MinSeasons {
			continue
		}
		if query.Position != "" && !p.HasPosition(query.Position) {
			continue
		}

		history, ok := analytics.Summarize(p, query.MinGamesPerSeason, query.RankType)
		if !ok || len(history.Seasons) < query.MinSeasons {
			continue
		}

		category := analytics.Classify(history)
		if query.Category != "" && category != query.Category {
			continue
		}

		out = append(out, HistoricalEntry{
			Player:            p,
			History:           history,
			Category:          category,
			ConsistencyRating: analytics.RateConsistency(history.Consistency),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].History.AvgRank < out[j].History.AvgRank
	})

	return out, nil
}

func (s *AnalyticsService) memoize(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return load(ctx)
	}

	v, err := s.cache.GetOrLoad(ctx, key, load)
	stats := s.cache.Stats()
	s.logger.DebugContext(ctx, "query cache", "key", key, "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Entries)
	return v, err
}

// limitSlice copies items so memoised results are never shared with callers.
// A non-positive limit keeps everything.
func limitSlice[T any](items []T, limit int) []T {
	n := len(items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
