package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/roto-draft/internal/domain/analytics"
	"github.com/riskibarqy/roto-draft/internal/domain/player"
)

const (
	searchMinQueryLength = 2
	searchMaxResults     = 10
)

// PlayerListItem is the flattened registry view used by lists and search.
type PlayerListItem struct {
	ID        string
	Name      string
	Team      string
	Positions []string
	ADP       *float64
	Rookie    bool
	Seasons   []string
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// List orders players by ADP ascending; players without ADP follow, by name.
func (s *PlayerService) List(ctx context.Context) ([]PlayerListItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	items := make([]PlayerListItem, 0, len(players))
	for _, p := range players {
		items = append(items, toListItem(p))
	}
	sortByADP(items)

	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

// Search matches name, team or any position case-insensitively. The query
// is used as given, surrounding whitespace included; queries shorter than
// two characters match nothing.
func (s *PlayerService) Search(ctx context.Context, query string) ([]PlayerListItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	if utf8.RuneCountInString(query) < searchMinQueryLength {
		return []PlayerListItem{}, nil
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	items := make([]PlayerListItem, 0, len(players))
	for _, p := range players {
		items = append(items, toListItem(p))
	}
	sortByADP(items)

	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	lower := strings.ToLower(query)
	out := make([]PlayerListItem, 0, searchMaxResults)
	for _, item := range items {
		if !byID[item.ID].Matches(lower) {
			continue
		}
		out = append(out, item)
		if len(out) == searchMaxResults {
			break
		}
	}

	return out, nil
}

// Trends returns nil when the player has fewer than two seasons.
func (s *PlayerService) Trends(ctx context.Context, playerID string) (*analytics.Trends, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Trends")
	defer span.End()

	p, err := s.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	trends, ok := analytics.ComputeTrends(p)
	if !ok {
		return nil, nil
	}
	return &trends, nil
}

// ValueVsADP returns nil when the player lacks an ADP or a latest-season rank.
func (s *PlayerService) ValueVsADP(ctx context.Context, playerID string) (*analytics.ADPValue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ValueVsADP")
	defer span.End()

	p, err := s.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	value, ok := analytics.ValueVsADP(p)
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func toListItem(p player.Player) PlayerListItem {
	item := PlayerListItem{
		ID:        p.ID,
		Name:      p.Name,
		Team:      p.LatestTeam,
		Positions: p.Positions,
		Seasons:   p.SeasonIDs(),
	}
	if adp, ok := p.ADPValue(); ok {
		item.ADP = &adp
		item.Rookie = p.ADP.Rookie
	}
	return item
}

// sortByADP keeps natural order between players sharing an ADP.
func sortByADP(items []PlayerListItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.ADP != nil && b.ADP != nil:
			return *a.ADP < *b.ADP
		case a.ADP != nil:
			return true
		case b.ADP != nil:
			return false
		default:
			return a.Name < b.Name
		}
	})
}
