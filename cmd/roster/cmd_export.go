package main

import (
	"fmt"

	"go-roster/internal/bootstrap"
	"go-roster/internal/roster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		format string
		name   string
		ops    []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the roster to <results>/<name>.<format>",
		Long: `Write the roster to the results directory.

Payroll operations given with --apply run first, in the order given. Known
operations: programmer_bonus, men_bonus, women_bonus, indexation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, cleanup, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, op := range ops {
				n, err := a.Roster.Apply(ctx, roster.Operation(op))
				if err != nil {
					return err
				}
				a.Logger.Info("operation applied", zap.String("operation", op), zap.Int("changed", n))
			}

			path, err := a.Roster.Export(ctx, roster.Format(format), name)
			if err != nil {
				return err
			}
			a.Audit.Log(ctx, bootstrap.AuditLog{
				Action:  "EXPORT",
				Message: "Roster exported",
				Meta:    map[string]any{"path": path, "format": format, "operations": ops},
			})

			fmt.Fprintln(cmd.OutOrStdout(), "Файл записан в:", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(roster.FormatJSON), "json or csv")
	cmd.Flags().StringVarP(&name, "name", "n", "", "file name without extension")
	cmd.Flags().StringSliceVar(&ops, "apply", nil, "payroll operations to run before export")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
