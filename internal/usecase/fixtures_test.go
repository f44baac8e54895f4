package usecase

import (
	"github.com/riskibarqy/roto-draft/internal/domain/player"
	"github.com/riskibarqy/roto-draft/internal/infrastructure/repository/memory"
)

type seasonFixture struct {
	games    int
	age      int
	perGame  int
	total    int
	averages player.StatLine
	totals   player.StatLine
}

func intPtrOf(v int) *int {
	return &v
}

func buildSeason(fx seasonFixture) player.SeasonRecord {
	record := player.SeasonRecord{
		Meta:     player.SeasonMeta{GamesPlayed: fx.games},
		Averages: fx.averages,
		Totals:   fx.totals,
	}
	if fx.age > 0 {
		record.Meta.Age = intPtrOf(fx.age)
	}
	if fx.perGame > 0 {
		record.Ranks.PerGame = intPtrOf(fx.perGame)
	}
	if fx.total > 0 {
		record.Ranks.Total = intPtrOf(fx.total)
	}
	return record
}

func buildPlayer(id, name, team string, positions []string, adp float64, seasons map[string]seasonFixture) player.Player {
	p := player.Player{
		ID:         id,
		Name:       name,
		LatestTeam: team,
		Positions:  positions,
		Seasons:    make(map[string]player.SeasonRecord, len(seasons)),
	}
	for seasonID, fx := range seasons {
		p.Seasons[seasonID] = buildSeason(fx)
	}
	if adp > 0 {
		p.ADP = &player.ADP{Value: adp}
	}
	return p
}

// leaguePlayers is a small universe exercising every query:
//
//	p1 elite and consistent, p2 rising with a big ADP gap, p3 veteran,
//	p4 young and improving, p5 registry-only rookie, p6 one short season.
func leaguePlayers() []player.Player {
	p1 := buildPlayer("p1", "Nikola Jokic", "DEN", []string{"C"}, 1.5, map[string]seasonFixture{
		"2022-2023": {games: 69, age: 27, perGame: 1},
		"2023-2024": {
			games: 79, age: 28, perGame: 1, total: 2,
			averages: player.StatLine{"PTS_G": 26, "REB_G": 12, "FG_PCT": 0.58},
			totals:   player.StatLine{"FG": 800, "FGA": 1400, "FT": 300, "FTA": 360},
		},
	})
	p1.Bucket = &player.Bucket{Tier: "1", Rank: intPtrOf(2), Flags: []string{}}

	p2 := buildPlayer("p2", "Rising Guard", "OKC", []string{"PG"}, 70, map[string]seasonFixture{
		"2022-2023": {games: 50, age: 23, perGame: 80},
		"2023-2024": {
			games: 70, age: 24, perGame: 40,
			averages: player.StatLine{"PTS_G": 20, "REB_G": 4, "FG_PCT": 0.45},
			totals:   player.StatLine{"FG": 500, "FGA": 1100, "FT": 200, "FTA": 240},
		},
	})
	p2.Bucket = &player.Bucket{Tier: "4", Rank: intPtrOf(30), Flags: []string{}}

	p3 := buildPlayer("p3", "Veteran Wing", "MIA", []string{"SF"}, 60, map[string]seasonFixture{
		"2022-2023": {games: 60, age: 30, perGame: 60},
		"2023-2024": {games: 60, age: 31, perGame: 50},
	})
	p4 := buildPlayer("p4", "Young Big", "SAS", []string{"PF", "C"}, 60, map[string]seasonFixture{
		"2022-2023": {games: 60, age: 24, perGame: 50},
		"2023-2024": {games: 75, age: 25, perGame: 45},
	})
	p5 := buildPlayer("p5", "Bench Rookie", "BOS", []string{"SG"}, 0, nil)
	p6 := buildPlayer("p6", "Injured Star", "PHX", []string{"SF"}, 100, map[string]seasonFixture{
		"2023-2024": {games: 10, age: 29, perGame: 80},
	})

	return []player.Player{p6, p5, p4, p3, p2, p1}
}

func leagueRepository() *memory.PlayerRepository {
	return memory.NewPlayerRepository(leaguePlayers())
}

func playerIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
