package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/roto-draft/internal/domain/player"
	"github.com/riskibarqy/roto-draft/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/roto-draft/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func listIDs(items []PlayerListItem) []string {
	return playerIDs(items, func(i PlayerListItem) string { return i.ID })
}

func TestPlayerService_List_OrdersByADPThenName(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(leagueRepository())
	items, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"p1", "p3", "p4", "p2", "p6", "p5"}
	if ids := listIDs(items); !equalIDs(ids, want) {
		t.Fatalf("unexpected order: got=%v want=%v", ids, want)
	}
	if items[len(items)-1].ADP != nil {
		t.Fatalf("player without adp should sort last")
	}
	if len(items[0].Seasons) != 2 || items[0].Seasons[0] != "2022-2023" {
		t.Fatalf("unexpected seasons: %v", items[0].Seasons)
	}
}

func TestPlayerService_Search(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(leagueRepository())

	tests := []struct {
		query string
		want  []string
	}{
		{query: "jok", want: []string{"p1"}},
		{query: "JOKIC", want: []string{"p1"}},
		{query: "sf", want: []string{"p3", "p6"}},
		{query: "okc", want: []string{"p2"}},
		{query: "j", want: []string{}},
		{query: "   ", want: []string{}},
		{query: "jok ", want: []string{}},
		{query: " c", want: []string{}},
		{query: "a ", want: []string{"p1"}},
		{query: "zzz", want: []string{}},
	}

	for _, tc := range tests {
		got, err := service.Search(context.Background(), tc.query)
		if err != nil {
			t.Fatalf("search %q: %v", tc.query, err)
		}
		if ids := listIDs(got); !equalIDs(ids, tc.want) {
			t.Fatalf("search %q: got=%v want=%v", tc.query, ids, tc.want)
		}
	}
}

func TestPlayerService_Search_CapsResults(t *testing.T) {
	t.Parallel()

	players := make([]player.Player, 0, 12)
	for i := 0; i < 12; i++ {
		players = append(players, buildPlayer(fmt.Sprintf("g%02d", i), fmt.Sprintf("Guard %02d", i), "LAL", []string{"PG"}, 0, nil))
	}
	service := NewPlayerService(memory.NewPlayerRepository(players))

	got, err := service.Search(context.Background(), "guard")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	if got[0].ID != "g00" || got[9].ID != "g09" {
		t.Fatalf("unexpected result window: %v", listIDs(got))
	}
}

func TestPlayerService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	repo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "ghost").
		Return(player.Player{}, false, nil).
		Once()

	service := NewPlayerService(repo)
	if _, err := service.Get(ctx, " ghost "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Get(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_TrendsAndValue(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(leagueRepository())
	ctx := context.Background()

	trends, err := service.Trends(ctx, "p2")
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if trends == nil || trends.RankChange == nil || *trends.RankChange != 40 {
		t.Fatalf("unexpected trends: %+v", trends)
	}

	none, err := service.Trends(ctx, "p5")
	if err != nil {
		t.Fatalf("trends for rookie: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil trends for player without seasons")
	}

	value, err := service.ValueVsADP(ctx, "p2")
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if value == nil || value.Value != 30 || value.Rank != 40 {
		t.Fatalf("unexpected value: %+v", value)
	}

	noADP, err := service.ValueVsADP(ctx, "p5")
	if err != nil {
		t.Fatalf("value for rookie: %v", err)
	}
	if noADP != nil {
		t.Fatalf("expected nil value without adp")
	}

	if _, err := service.ValueVsADP(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
