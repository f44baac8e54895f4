package cli

import (
	"context"
	"strings"

	"github.com/riskibarqy/roto-draft/internal/app"
	"github.com/riskibarqy/roto-draft/internal/domain/analytics"
	"github.com/riskibarqy/roto-draft/internal/domain/player"
	"github.com/riskibarqy/roto-draft/internal/usecase"
	"github.com/spf13/cobra"
)

func (c *CLI) leaderboardCommand() *cobra.Command {
	var req leaderboardRequest
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank players for one season",
		Args:  exactArgs(0),
		RunE: c.run("leaderboard", true, func(ctx context.Context, svc *app.Services, _ []string) (any, error) {
			req.Season = strings.TrimSpace(req.Season)
			req.Position = strings.ToUpper(strings.TrimSpace(req.Position))
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			entries, err := svc.Analytics.Leaderboard(ctx, usecase.LeaderboardQuery{
				Season:   req.Season,
				Position: req.Position,
				MinGames: req.MinGames,
				RankType: player.RankType(req.RankType),
				Limit:    req.Limit,
			})
			if err != nil {
				return nil, err
			}
			return leaderboardToDTO(entries), nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Season, "season", "", "season id such as 2023-2024; defaults to each player's latest")
	flags.StringVar(&req.Position, "position", "", "only players eligible at this position")
	flags.IntVar(&req.MinGames, "min-games", 0, "minimum games played in the season")
	flags.StringVar(&req.RankType, "rank-type", string(player.RankPerGame), "per_game or total")
	flags.IntVar(&req.Limit, "limit", 0, "maximum entries, 0 for all")
	return cmd
}

func (c *CLI) breakoutsCommand() *cobra.Command {
	var req limitRequest
	cmd := &cobra.Command{
		Use:   "breakouts",
		Short: "List breakout candidates by score",
		Args:  exactArgs(0),
		RunE: c.run("breakouts", true, func(ctx context.Context, svc *app.Services, _ []string) (any, error) {
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			items, err := svc.Analytics.BreakoutCandidates(ctx, req.Limit)
			if err != nil {
				return nil, err
			}
			return breakoutsToDTO(items), nil
		}),
	}
	cmd.Flags().IntVar(&req.Limit, "limit", 0, "maximum entries, 0 for all")
	return cmd
}

func (c *CLI) undervaluedCommand() *cobra.Command {
	var req limitRequest
	cmd := &cobra.Command{
		Use:   "undervalued",
		Short: "List players finishing well ahead of their ADP",
		Args:  exactArgs(0),
		RunE: c.run("undervalued", true, func(ctx context.Context, svc *app.Services, _ []string) (any, error) {
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			items, err := svc.Analytics.UndervaluedPlayers(ctx, req.Limit)
			if err != nil {
				return nil, err
			}
			return undervaluedToDTO(items), nil
		}),
	}
	cmd.Flags().IntVar(&req.Limit, "limit", 0, "maximum entries, 0 for all")
	return cmd
}

func (c *CLI) historicalCommand() *cobra.Command {
	req := historicalRequest{
		MinSeasons: usecase.DefaultHistoricalMinSeasons,
		MinGames:   analytics.DefaultMinGamesPerSeason,
		RankType:   string(player.RankPerGame),
	}
	cmd := &cobra.Command{
		Use:   "historical",
		Short: "Classify players by their multi-season rank history",
		Args:  exactArgs(0),
		RunE: c.run("historical", true, func(ctx context.Context, svc *app.Services, _ []string) (any, error) {
			req.Position = strings.ToUpper(strings.TrimSpace(req.Position))
			req.Category = strings.TrimSpace(req.Category)
			req.PlayerID = strings.TrimSpace(req.PlayerID)
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			entries, err := svc.Analytics.HistoricalAnalysis(ctx, usecase.HistoricalQuery{
				Position:          req.Position,
				Category:          analytics.Category(req.Category),
				PlayerID:          req.PlayerID,
				MinSeasons:        req.MinSeasons,
				MinGamesPerSeason: req.MinGames,
				RankType:          player.RankType(req.RankType),
			})
			if err != nil {
				return nil, err
			}
			return historicalToDTO(entries), nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Position, "position", "", "only players eligible at this position")
	flags.StringVar(&req.Category, "category", "", "only players in this historical category")
	flags.StringVar(&req.PlayerID, "player", "", "only this player id")
	flags.IntVar(&req.MinSeasons, "min-seasons", req.MinSeasons, "minimum qualifying seasons")
	flags.IntVar(&req.MinGames, "min-games", req.MinGames, "minimum games for a season to qualify")
	flags.StringVar(&req.RankType, "rank-type", req.RankType, "per_game or total")
	return cmd
}

func (c *CLI) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List historical categories, stat categories and sort columns",
		Args:  exactArgs(0),
		RunE: c.run("categories", false, func(context.Context, *app.Services, []string) (any, error) {
			return categoriesToDTO(), nil
		}),
	}
}
