package cli

import (
	"context"
	"strings"

	"github.com/riskibarqy/roto-draft/internal/app"
	"github.com/riskibarqy/roto-draft/internal/domain/analytics"
	"github.com/riskibarqy/roto-draft/internal/usecase"
	"github.com/spf13/cobra"
)

func (c *CLI) compareCommand() *cobra.Command {
	req := compareRequest{Mode: string(analytics.ModeAverages)}
	cmd := &cobra.Command{
		Use:   "compare <id>...",
		Short: "Compare players category by category",
		Args:  minimumArgs(1),
		RunE: c.run("compare", true, func(ctx context.Context, svc *app.Services, args []string) (any, error) {
			req.PlayerIDs = trimAll(args)
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			comparison, err := svc.Draft.Compare(ctx, usecase.CompareQuery{
				PlayerIDs: req.PlayerIDs,
				Mode:      analytics.StatMode(req.Mode),
			})
			if err != nil {
				return nil, err
			}
			return comparisonToDTO(comparison), nil
		}),
	}
	cmd.Flags().StringVar(&req.Mode, "mode", req.Mode, "averages, totals or zscores")
	return cmd
}

func (c *CLI) teamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "team <id>...",
		Short: "Aggregate the latest production of a drafted roster",
		Args:  minimumArgs(1),
		RunE: c.run("team", true, func(ctx context.Context, svc *app.Services, args []string) (any, error) {
			req := teamRequest{PlayerIDs: trimAll(args)}
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			stats, err := svc.Draft.TeamStats(ctx, req.PlayerIDs)
			if err != nil {
				return nil, err
			}
			return teamStatsToDTO(stats), nil
		}),
	}
}

func (c *CLI) draftBoardCommand() *cobra.Command {
	req := draftBoardRequest{SortBy: string(usecase.SortByADP)}
	cmd := &cobra.Command{
		Use:   "draft-board",
		Short: "Build the draft board for the current session",
		Args:  exactArgs(0),
		RunE: c.run("draft-board", true, func(ctx context.Context, svc *app.Services, _ []string) (any, error) {
			req.Drafted = trimAll(req.Drafted)
			req.Position = strings.ToUpper(strings.TrimSpace(req.Position))
			if err := c.validateRequest(ctx, req); err != nil {
				return nil, err
			}

			board, err := svc.Draft.Board(ctx, usecase.DraftBoardQuery{
				Drafted:     req.Drafted,
				Position:    req.Position,
				HideDrafted: req.HideDrafted,
				SortBy:      usecase.DraftSortColumn(req.SortBy),
				Desc:        req.Desc,
			})
			if err != nil {
				return nil, err
			}
			return draftBoardToDTO(board), nil
		}),
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&req.Drafted, "drafted", nil, "player ids already drafted")
	flags.StringVar(&req.Position, "position", "", "only players eligible at this position")
	flags.BoolVar(&req.HideDrafted, "hide-drafted", false, "leave drafted players off the board")
	flags.StringVar(&req.SortBy, "sort-by", req.SortBy, "column to sort by")
	flags.BoolVar(&req.Desc, "desc", false, "sort descending")
	return cmd
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
