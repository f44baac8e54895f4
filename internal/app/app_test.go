package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/roto-draft/internal/config"
	"github.com/riskibarqy/roto-draft/internal/infrastructure/dataset"
	"github.com/riskibarqy/roto-draft/internal/usecase"
)

func testConfig(dir string) config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		DataSource:         config.DataSourceFile,
		DataDir:            dir,
		DataMasterFile:     "players.json",
		DataHistoricalFile: "history.json",
		DataADPFile:        "adp.json",
		DataBucketsFile:    "buckets.json",
		CacheEnabled:       true,
	}
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewServices_LoadsDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "players.json", `{"players": {"p1": {"name": "Nikola Jokic", "team": "DEN", "positions": ["C"], "adp": 1}}}`)
	writeFile(t, dir, "history.json", `{"players": {"x": {"player_id": "p1", "seasons": {"2023-2024": {"meta": {"games_played": 79}, "ranks": {"per_game_rank": 1}}}}}}`)
	writeFile(t, dir, "adp.json", `{}`)
	writeFile(t, dir, "buckets.json", `[]`)

	cfg := testConfig(dir)
	services, err := NewServices(context.Background(), cfg, NewLoader(cfg, NewSource(cfg), nil), nil)
	if err != nil {
		t.Fatalf("new services: %v", err)
	}

	board, err := services.Analytics.Leaderboard(context.Background(), usecase.LeaderboardQuery{})
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board) != 1 || board[0].Player.ID != "p1" || board[0].Rank != 1 {
		t.Fatalf("unexpected leaderboard: %+v", board)
	}
}

func TestNewServices_LoadFailureIsDependencyUnavailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "players.json", `{"players": {}}`)

	cfg := testConfig(dir)
	_, err := NewServices(context.Background(), cfg, NewLoader(cfg, NewSource(cfg), nil), nil)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "load dataset") {
		t.Fatalf("expected load context in error, got %v", err)
	}
}

func TestNewSource_SelectsHTTP(t *testing.T) {
	cfg := testConfig("")
	cfg.DataSource = config.DataSourceHTTP
	cfg.DataBaseURL = "https://cdn.example.com/roto"

	if _, ok := NewSource(cfg).(*dataset.HTTPSource); !ok {
		t.Fatalf("expected http source")
	}
	cfg.DataSource = config.DataSourceFile
	if _, ok := NewSource(cfg).(dataset.FileSource); !ok {
		t.Fatalf("expected file source")
	}
}
