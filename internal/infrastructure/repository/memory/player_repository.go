package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/roto-draft/internal/domain/player"
)

// PlayerRepository serves a loaded dataset. Lists come back in natural
// order: ascending player id.
type PlayerRepository struct {
	mu        sync.RWMutex
	players   []player.Player
	index     map[string]player.Player
	seasonIDs []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	ordered := make([]player.Player, 0, len(players))
	ordered = append(ordered, players...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	index := make(map[string]player.Player, len(ordered))
	seasons := make(map[string]struct{})
	for _, p := range ordered {
		index[p.ID] = p
		for id := range p.Seasons {
			seasons[id] = struct{}{}
		}
	}

	seasonIDs := make([]string, 0, len(seasons))
	for id := range seasons {
		seasonIDs = append(seasonIDs, id)
	}
	sort.Strings(seasonIDs)

	return &PlayerRepository{
		players:   ordered,
		index:     index,
		seasonIDs: seasonIDs,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}

// GetByIDs keeps the requested order and skips unknown ids.
func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) SeasonIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.seasonIDs))
	copy(out, r.seasonIDs)
	return out, nil
}
