package cli

import (
	"context"
	"strings"

	"github.com/riskibarqy/roto-draft/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) playersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List every player ordered by ADP",
		Args:  exactArgs(0),
		RunE: c.run("players", true, func(ctx context.Context, svc *app.Services, _ []string) (any, error) {
			items, err := svc.Players.List(ctx)
			if err != nil {
				return nil, err
			}
			return playerListsToDTO(items), nil
		}),
	}
}

func (c *CLI) playerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Show one player with every recorded season",
		Args:  exactArgs(1),
		RunE: c.run("player", true, func(ctx context.Context, svc *app.Services, args []string) (any, error) {
			req := playerIDRequest{PlayerID: strings.TrimSpace(args[0])}
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			p, err := svc.Players.Get(ctx, req.PlayerID)
			if err != nil {
				return nil, err
			}
			return playerDetailToDTO(p), nil
		}),
	}
}

func (c *CLI) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search players by name, team or position",
		Args:  exactArgs(1),
		RunE: c.run("search", true, func(ctx context.Context, svc *app.Services, args []string) (any, error) {
			req := searchRequest{Query: args[0]}
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			items, err := svc.Players.Search(ctx, req.Query)
			if err != nil {
				return nil, err
			}
			return playerListsToDTO(items), nil
		}),
	}
}

func (c *CLI) trendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trends <id>",
		Short: "Show a player's multi-season trends",
		Args:  exactArgs(1),
		RunE: c.run("trends", true, func(ctx context.Context, svc *app.Services, args []string) (any, error) {
			req := playerIDRequest{PlayerID: strings.TrimSpace(args[0])}
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			return svc.Players.Trends(ctx, req.PlayerID)
		}),
	}
}

func (c *CLI) valueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "value <id>",
		Short: "Compare a player's latest rank with their ADP",
		Args:  exactArgs(1),
		RunE: c.run("value", true, func(ctx context.Context, svc *app.Services, args []string) (any, error) {
			req := playerIDRequest{PlayerID: strings.TrimSpace(args[0])}
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			return svc.Players.ValueVsADP(ctx, req.PlayerID)
		}),
	}
}
