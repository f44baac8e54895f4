package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/roto-draft/internal/app"
	"github.com/riskibarqy/roto-draft/internal/config"
	"github.com/riskibarqy/roto-draft/internal/platform/logging"
	"github.com/riskibarqy/roto-draft/internal/usecase"
)

const (
	fixtureMaster = `{"players": {
		"p1": {"name": "Nikola Jokic", "team": "DEN", "positions": ["C"], "adp": 1.5, "bucket": 1, "bucket_rank": 2},
		"p2": {"name": "Shai Gilgeous-Alexander", "team": "OKC", "positions": ["PG", "SG"], "adp": 4},
		"p3": {"name": "Victor Wembanyama", "team": "SAS", "positions": ["C", "PF"], "rookie": true}
	}}`
	fixtureHistory = `{"players": {
		"h1": {"player_id": "p1", "seasons": {
			"2022-2023": {"meta": {"games_played": 69, "age": 27}, "averages": {"PTS_G": 24.5, "REB_G": 11.8}, "ranks": {"per_game_rank": 1, "total_rank": 2}},
			"2023-2024": {"meta": {"games_played": 79, "age": 28}, "averages": {"PTS_G": 26.4, "REB_G": 12.4}, "totals": {"PTS": 2085, "TRB": 976}, "ranks": {"per_game_rank": 1, "total_rank": 1}}
		}},
		"h2": {"player_id": "p2", "seasons": {
			"2022-2023": {"meta": {"games_played": 68, "age": 24}, "averages": {"PTS_G": 31.4}, "ranks": {"per_game_rank": 12}},
			"2023-2024": {"meta": {"games_played": 75, "age": 25}, "averages": {"PTS_G": 30.1, "REB_G": 5.5}, "totals": {"PTS": 2254, "TRB": 415}, "ranks": {"per_game_rank": 3, "total_rank": 4}}
		}}
	}}`
	fixtureADP     = `{"p1": {"adp_date": "2024-10-01"}}`
	fixtureBuckets = `[]`
)

func fixtureConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"players.json": fixtureMaster,
		"history.json": fixtureHistory,
		"adp.json":     fixtureADP,
		"buckets.json": fixtureBuckets,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	return config.Config{
		AppEnv:             config.EnvDev,
		DataSource:         config.DataSourceFile,
		DataDir:            dir,
		DataMasterFile:     "players.json",
		DataHistoricalFile: "history.json",
		DataADPFile:        "adp.json",
		DataBucketsFile:    "buckets.json",
	}
}

func runCLI(t *testing.T, cfg config.Config, factory ServicesFactory, args ...string) (int, map[string]any) {
	t.Helper()

	var out bytes.Buffer
	code := New(cfg, factory, &out, logging.NewNop()).Execute(context.Background(), args)

	var body map[string]any
	if err := sonic.Unmarshal(out.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal output %q: %v", out.String(), err)
	}
	if got, _ := body["apiVersion"].(string); got != "1.0" {
		t.Fatalf("expected apiVersion=1.0, got %v", body["apiVersion"])
	}
	return code, body
}

func runFixture(t *testing.T, args ...string) (int, map[string]any) {
	t.Helper()
	cfg := fixtureConfig(t)
	return runCLI(t, cfg, DefaultFactory(cfg, logging.NewNop()), args...)
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	items, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data list, got %T", body["data"])
	}
	return items
}

func dataObject(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	obj, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", body["data"])
	}
	return obj
}

func errorStatus(t *testing.T, body map[string]any) (string, float64) {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	status, _ := errObj["status"].(string)
	code, _ := errObj["code"].(float64)
	return status, code
}

func itemIDs(t *testing.T, items []any, path ...string) []string {
	t.Helper()
	out := make([]string, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		for _, key := range path {
			obj, _ = obj[key].(map[string]any)
		}
		id, _ := obj["id"].(string)
		out = append(out, id)
	}
	return out
}

func TestExecute_Players(t *testing.T) {
	code, body := runFixture(t, "players")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %v", code, body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success output")
	}

	ids := itemIDs(t, dataList(t, body))
	if strings.Join(ids, ",") != "p1,p2,p3" {
		t.Fatalf("unexpected order: %v", ids)
	}
}

func TestExecute_PlayerDetail(t *testing.T) {
	code, body := runFixture(t, "player", "p1")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %v", code, body)
	}

	data := dataObject(t, body)
	adp, _ := data["adp"].(map[string]any)
	if adp["date"] != "2024-10-01" || adp["value"] != 1.5 {
		t.Fatalf("unexpected adp: %v", data["adp"])
	}
	bucket, _ := data["bucket"].(map[string]any)
	if bucket["tier"] != "1" {
		t.Fatalf("unexpected bucket: %v", data["bucket"])
	}
	seasons, _ := data["seasons"].([]any)
	if len(seasons) != 2 {
		t.Fatalf("expected two seasons, got %d", len(seasons))
	}
}

func TestExecute_ErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStatus string
		wantCode   float64
	}{
		{name: "unknown player", args: []string{"player", "ghost"}, wantStatus: "NOT_FOUND", wantCode: 404},
		{name: "missing player arg", args: []string{"player"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "bad rank type", args: []string{"leaderboard", "--rank-type", "weekly"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "bad season order", args: []string{"leaderboard", "--season", "2023-2025"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "short season", args: []string{"leaderboard", "--season", "23-24"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "negative min games", args: []string{"leaderboard", "--min-games", "-1"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "non numeric limit", args: []string{"breakouts", "--limit", "many"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "bad category", args: []string{"historical", "--category", "sleepers"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "bad compare mode", args: []string{"compare", "p1", "--mode", "weekly"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "compare unknown", args: []string{"compare", "p1", "ghost"}, wantStatus: "NOT_FOUND", wantCode: 404},
		{name: "bad sort column", args: []string{"draft-board", "--sort-by", "salary"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
		{name: "unknown command", args: []string{"standings"}, wantStatus: "INVALID_ARGUMENT", wantCode: 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := runFixture(t, tc.args...)
			if code != 1 {
				t.Fatalf("expected exit 1, got %d", code)
			}
			status, httpCode := errorStatus(t, body)
			if status != tc.wantStatus || httpCode != tc.wantCode {
				t.Fatalf("got status=%s code=%v want status=%s code=%v", status, httpCode, tc.wantStatus, tc.wantCode)
			}
		})
	}
}

func TestExecute_LoadFailureIsUnavailable(t *testing.T) {
	factory := func(context.Context) (*app.Services, error) {
		return nil, fmt.Errorf("%w: load dataset: boom", usecase.ErrDependencyUnavailable)
	}

	code, body := runCLI(t, config.Config{}, factory, "players")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if status, httpCode := errorStatus(t, body); status != "UNAVAILABLE" || httpCode != 503 {
		t.Fatalf("unexpected error mapping: %s %v", status, httpCode)
	}
}

func TestExecute_CategoriesNeedsNoDataset(t *testing.T) {
	calls := 0
	factory := func(context.Context) (*app.Services, error) {
		calls++
		return nil, fmt.Errorf("%w: unreachable", usecase.ErrDependencyUnavailable)
	}

	code, body := runCLI(t, config.Config{}, factory, "categories")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %v", code, body)
	}
	if calls != 0 {
		t.Fatalf("categories should not load the dataset")
	}

	data := dataObject(t, body)
	if historical, _ := data["historical"].([]any); len(historical) != 6 {
		t.Fatalf("expected six historical categories, got %v", data["historical"])
	}
	if stats, _ := data["stats"].([]any); len(stats) != 9 {
		t.Fatalf("expected nine stat categories, got %v", data["stats"])
	}
}

func TestExecute_LeaderboardAndSearch(t *testing.T) {
	code, body := runFixture(t, "leaderboard", "--limit", "1")
	if code != 0 {
		t.Fatalf("leaderboard exit %d: %v", code, body)
	}
	entries := dataList(t, body)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if ids := itemIDs(t, entries, "player"); ids[0] != "p1" {
		t.Fatalf("unexpected leader: %v", ids)
	}

	code, body = runFixture(t, "search", "okc")
	if code != 0 {
		t.Fatalf("search exit %d: %v", code, body)
	}
	if ids := itemIDs(t, dataList(t, body)); strings.Join(ids, ",") != "p2" {
		t.Fatalf("unexpected search result: %v", ids)
	}
}

func TestExecute_TrendsWithoutHistoryIsNull(t *testing.T) {
	code, body := runFixture(t, "trends", "p3")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %v", code, body)
	}
	if body["data"] != nil {
		t.Fatalf("expected null data, got %v", body["data"])
	}
}

func TestExecute_DraftBoardHidesDrafted(t *testing.T) {
	code, body := runFixture(t, "draft-board", "--drafted", "p1", "--hide-drafted")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %v", code, body)
	}

	data := dataObject(t, body)
	rows, _ := data["rows"].([]any)
	if ids := itemIDs(t, rows, "player"); strings.Join(ids, ",") != "p2,p3" {
		t.Fatalf("unexpected rows: %v", ids)
	}
	seasons, _ := data["seasons"].([]any)
	if len(seasons) != 2 || seasons[0] != "2023-2024" {
		t.Fatalf("unexpected seasons: %v", seasons)
	}
}

func TestExecute_CompareAndTeam(t *testing.T) {
	code, body := runFixture(t, "compare", "p1", "p2", "--mode", "totals")
	if code != 0 {
		t.Fatalf("compare exit %d: %v", code, body)
	}
	comparison := dataObject(t, body)
	if comparison["mode"] != "totals" {
		t.Fatalf("unexpected mode: %v", comparison["mode"])
	}
	if categories, _ := comparison["categories"].([]any); len(categories) != 9 {
		t.Fatalf("expected nine categories, got %d", len(categories))
	}

	code, body = runFixture(t, "team", "p1", "p2")
	if code != 0 {
		t.Fatalf("team exit %d: %v", code, body)
	}
	team := dataObject(t, body)
	totals, _ := team["totals"].(map[string]any)
	if totals["player_count"] != 2.0 {
		t.Fatalf("unexpected totals: %v", totals)
	}
	summary, _ := team["summary"].(map[string]any)
	if summary["players"] != 2.0 || summary["avg_rank"] != 4.25 || summary["best_rank"] != 1.0 {
		t.Fatalf("unexpected summary: %v", summary)
	}
	members, _ := team["members"].([]any)
	if ids := itemIDs(t, members, "player"); strings.Join(ids, ",") != "p1,p2" {
		t.Fatalf("unexpected members: %v", ids)
	}
}

func TestExecute_PrettyOutput(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.OutputPretty = true

	var out bytes.Buffer
	code := New(cfg, DefaultFactory(cfg, logging.NewNop()), &out, logging.NewNop()).Execute(context.Background(), []string{"categories"})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "\n  \"apiVersion\"") {
		t.Fatalf("expected indented output, got %q", out.String())
	}
}
