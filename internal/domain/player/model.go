package player

import (
	"fmt"
	"sort"
	"strings"
)

// RankType selects which per-season rank a query reads.
type RankType string

const (
	RankPerGame RankType = "per_game"
	RankTotal   RankType = "total"
)

func (t RankType) Valid() bool {
	return t == RankPerGame || t == RankTotal
}

// StatLine maps a statistic key (PTS_G, FG_PCT, Z_REB_G, ...) to its value.
type StatLine map[string]float64

func (s StatLine) Get(key string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s[key]
	return v, ok
}

type SeasonMeta struct {
	GamesPlayed int
	Age         *int
}

// Ranks holds a player's statistical rank for one season. Lower is better,
// nil means the player was not ranked.
type Ranks struct {
	PerGame *int
	Total   *int
}

func (r Ranks) ByType(t RankType) (int, bool) {
	var v *int
	switch t {
	case RankPerGame:
		v = r.PerGame
	case RankTotal:
		v = r.Total
	}
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// Preferred returns the per-game rank, falling back to the season-total rank.
func (r Ranks) Preferred() (int, bool) {
	if rank, ok := r.ByType(RankPerGame); ok {
		return rank, true
	}
	return r.ByType(RankTotal)
}

type SeasonRecord struct {
	Meta     SeasonMeta
	Averages StatLine
	Totals   StatLine
	ZScores  StatLine
	Ranks    Ranks
}

type ADP struct {
	Value  float64
	Date   *string
	Rookie bool
}

// Bucket is an analyst-assigned tier grouping, independent of statistical rank.
type Bucket struct {
	Tier  string
	Rank  *int
	Flags []string
}

// Player is one entry of the joined draft universe.
type Player struct {
	ID         string
	Name       string
	LatestTeam string
	Positions  []string
	Seasons    map[string]SeasonRecord
	ADP        *ADP
	Bucket     *Bucket
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required: %s", p.ID)
	}
	if len(p.Positions) == 0 {
		return fmt.Errorf("player positions are required: %s", p.ID)
	}

	return nil
}

// SeasonIDs returns the player's season identifiers in chronological order.
// "YYYY-YYYY" identifiers sort chronologically as plain strings.
func (p Player) SeasonIDs() []string {
	out := make([]string, 0, len(p.Seasons))
	for id := range p.Seasons {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (p Player) Season(id string) (SeasonRecord, bool) {
	s, ok := p.Seasons[id]
	return s, ok
}

func (p Player) LatestSeason() (string, SeasonRecord, bool) {
	ids := p.SeasonIDs()
	if len(ids) == 0 {
		return "", SeasonRecord{}, false
	}
	id := ids[len(ids)-1]
	return id, p.Seasons[id], true
}

func (p Player) HasPosition(pos string) bool {
	for _, candidate := range p.Positions {
		if candidate == pos {
			return true
		}
	}
	return false
}

// ADPValue returns the draft position when one is known.
func (p Player) ADPValue() (float64, bool) {
	if p.ADP == nil || p.ADP.Value <= 0 {
		return 0, false
	}
	return p.ADP.Value, true
}

// Matches reports whether a lower-cased query is a substring of the player's
// name, team or any position.
func (p Player) Matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(p.LatestTeam), lowerQuery) {
		return true
	}
	for _, pos := range p.Positions {
		if strings.Contains(strings.ToLower(pos), lowerQuery) {
			return true
		}
	}
	return false
}
