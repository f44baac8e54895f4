package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/roto-draft/internal/app"
	"github.com/riskibarqy/roto-draft/internal/config"
	"github.com/riskibarqy/roto-draft/internal/platform/logging"
	"github.com/riskibarqy/roto-draft/internal/usecase"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/codes"
)

// ServicesFactory loads the dataset and builds the query services.
type ServicesFactory func(ctx context.Context) (*app.Services, error)

type CLI struct {
	out       io.Writer
	pretty    bool
	logger    *logging.Logger
	validator *validator.Validate
	factory   ServicesFactory
	services  *app.Services
}

type commandFunc func(ctx context.Context, svc *app.Services, args []string) (any, error)

func New(cfg config.Config, factory ServicesFactory, out io.Writer, logger *logging.Logger) *CLI {
	if logger == nil {
		logger = logging.Default()
	}
	return &CLI{
		out:       out,
		pretty:    cfg.OutputPretty,
		logger:    logger.Named("cli"),
		validator: newValidator(),
		factory:   factory,
	}
}

// DefaultFactory loads the dataset described by cfg.
func DefaultFactory(cfg config.Config, logger *logging.Logger) ServicesFactory {
	return func(ctx context.Context) (*app.Services, error) {
		loader := app.NewLoader(cfg, app.NewSource(cfg), logger)
		return app.NewServices(ctx, cfg, loader, logger)
	}
}

// Execute runs one command and returns the process exit code. Failures are
// written to the output as an error envelope.
func (c *CLI) Execute(ctx context.Context, args []string) int {
	root := c.newRootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		c.logger.WarnContext(ctx, "command failed", "args", args, "error", err)
		if writeErr := c.writeError(ctx, err); writeErr != nil {
			c.logger.ErrorContext(ctx, "write error output failed", "error", writeErr)
		}
		return 1
	}

	return 0
}

func (c *CLI) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rotodash",
		Short:         "Fantasy basketball draft analytics",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", usecase.ErrInvalidInput, args[0])
			}
			return cmd.Help()
		},
	}
	root.SetOut(c.out)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	})

	root.AddCommand(
		c.playersCommand(),
		c.playerCommand(),
		c.searchCommand(),
		c.trendsCommand(),
		c.valueCommand(),
		c.leaderboardCommand(),
		c.breakoutsCommand(),
		c.undervaluedCommand(),
		c.historicalCommand(),
		c.categoriesCommand(),
		c.compareCommand(),
		c.teamCommand(),
		c.draftBoardCommand(),
	)

	return root
}

// run wraps a command body with its span, the dataset load and output.
// A nil services argument is passed to commands that need no data.
func (c *CLI) run(name string, needsData bool, fn commandFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, span := startCommandSpan(cmd.Context(), name)
		defer span.End()

		var svc *app.Services
		if needsData {
			var err error
			svc, err = c.loadServices(ctx)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "load dataset")
				return err
			}
		}

		data, err := fn(ctx, svc, args)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, name)
			return err
		}

		return c.writeSuccess(ctx, data)
	}
}

func (c *CLI) loadServices(ctx context.Context) (*app.Services, error) {
	if c.services != nil {
		return c.services, nil
	}
	if c.factory == nil {
		return nil, fmt.Errorf("%w: no dataset configured", usecase.ErrDependencyUnavailable)
	}

	svc, err := c.factory(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "dataset ready", "players", len(svc.Dataset.Order))
	c.services = svc
	return svc, nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s accepts %d arg(s), received %d", usecase.ErrInvalidInput, cmd.Name(), n, len(args))
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: %s requires at least %d arg(s), received %d", usecase.ErrInvalidInput, cmd.Name(), n, len(args))
		}
		return nil
	}
}
