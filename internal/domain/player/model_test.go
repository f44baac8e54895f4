package player

import "testing"

func intPtr(v int) *int { return &v }

func TestRanks_Preferred(t *testing.T) {
	tests := []struct {
		name   string
		ranks  Ranks
		want   int
		wantOK bool
	}{
		{name: "per game wins", ranks: Ranks{PerGame: intPtr(12), Total: intPtr(40)}, want: 12, wantOK: true},
		{name: "falls back to total", ranks: Ranks{Total: intPtr(40)}, want: 40, wantOK: true},
		{name: "zero per game treated as absent", ranks: Ranks{PerGame: intPtr(0), Total: intPtr(7)}, want: 7, wantOK: true},
		{name: "no ranks", ranks: Ranks{}, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.ranks.Preferred()
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("unexpected preferred rank: got=(%d,%t) want=(%d,%t)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestPlayer_LatestSeason(t *testing.T) {
	p := Player{
		ID: "p1",
		Seasons: map[string]SeasonRecord{
			"2024-2025": {Meta: SeasonMeta{GamesPlayed: 70}},
			"2022-2023": {Meta: SeasonMeta{GamesPlayed: 50}},
			"2023-2024": {Meta: SeasonMeta{GamesPlayed: 60}},
		},
	}

	id, season, ok := p.LatestSeason()
	if !ok {
		t.Fatalf("expected latest season")
	}
	if id != "2024-2025" || season.Meta.GamesPlayed != 70 {
		t.Fatalf("unexpected latest season: id=%s games=%d", id, season.Meta.GamesPlayed)
	}

	ids := p.SeasonIDs()
	if ids[0] != "2022-2023" || ids[2] != "2024-2025" {
		t.Fatalf("season ids not chronological: %v", ids)
	}

	if _, _, ok := (Player{ID: "p2"}).LatestSeason(); ok {
		t.Fatalf("expected no latest season for player without history")
	}
}

func TestPlayer_Matches(t *testing.T) {
	p := Player{ID: "jokic", Name: "Nikola Jokic", LatestTeam: "DEN", Positions: []string{"C"}}

	for _, q := range []string{"jok", "den", "c"} {
		if !p.Matches(q) {
			t.Fatalf("expected %q to match", q)
		}
	}
	if p.Matches("lal") {
		t.Fatalf("unexpected match for lal")
	}
}

func TestPlayer_Validate(t *testing.T) {
	if err := (Player{ID: "p1", Name: "A", Positions: []string{"PG"}}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if err := (Player{ID: "p1", Name: "A"}).Validate(); err == nil {
		t.Fatalf("expected error for empty positions")
	}
}
