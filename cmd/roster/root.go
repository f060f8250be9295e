package main

import (
	"context"

	"go-roster/internal/app"
	"go-roster/internal/bootstrap"
	"go-roster/internal/config"
	"go-roster/internal/shared/contextutil"
	"go-roster/internal/shell"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	input      string
	results    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "roster",
		Short: "Employee roster payroll utility",
		Long: `roster loads an employee list from a semicolon-separated file and runs
payroll operations over it: bonuses, salary indexation, vacation eligibility
and the annual wage fund. Results can be exported as JSON or CSV.

Run without arguments to start the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "roster.yaml", "path to YAML config")
	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "roster file to load")
	root.PersistentFlags().StringVarP(&opts.results, "results", "r", "", "directory for exported files")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newShowCmd(opts),
		newListCmd(opts),
		newVacationCmd(opts),
		newFundCmd(opts),
		newExportCmd(opts),
	)
	return root
}

// setup loads config, installs the global logger and builds the app. The
// returned context carries a fresh session id.
func setup(cmd *cobra.Command, opts *options, interactive bool) (context.Context, *app.App, func(), error) {
	cfg, err := config.Load(opts.configPath, config.Overrides{
		InputPath:  opts.input,
		ResultsDir: opts.results,
		Verbose:    opts.verbose,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := bootstrap.NewLogger(cfg.Log, interactive)
	if err != nil {
		return nil, nil, nil, err
	}
	zap.ReplaceGlobals(logger)
	cleanup := func() { _ = logger.Sync() }

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = contextutil.WithSessionID(ctx, uuid.NewString())
	ctx = contextutil.WithLogger(ctx, logger)

	logger.Debug("config loaded", zap.Stringer("config", cfg), zap.String("command", cmd.Name()))

	a, err := app.BuildApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app failed", zap.Error(err))
		cleanup()
		return nil, nil, nil, err
	}
	return ctx, a, cleanup, nil
}

func runShell(cmd *cobra.Command, opts *options) error {
	ctx, a, cleanup, err := setup(cmd, opts, true)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := bootstrap.SignalContext(ctx, a.Audit)
	defer stop()

	a.Audit.Log(ctx, bootstrap.AuditLog{Action: "SESSION_START", Message: "Interactive session started"})
	err = shell.Run(ctx, a.Roster)
	a.Audit.Log(ctx, bootstrap.AuditLog{Action: "SESSION_END", Message: "Interactive session finished"})
	return err
}
