package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listHeader = []string{"ФИО", "Должность", "Дата найма", "Оклад", "Пол", "Размер премии"}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, cleanup, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, s := range a.Roster.Summaries(ctx) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the roster as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, cleanup, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer cleanup()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader(listHeader)
			table.SetAutoFormatHeaders(false)
			for _, r := range a.Roster.Records(ctx) {
				table.Append([]string{
					r.FullName,
					r.Position,
					r.HireDate,
					strconv.FormatInt(r.Salary, 10),
					r.Sex,
					strconv.FormatInt(r.Premium, 10),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newVacationCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vacation",
		Short: "List employees entitled to a vacation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, cleanup, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer cleanup()

			names := a.Roster.VacationEligible(ctx)
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Отпуск не положен ни одному сотруднику")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Отпуск положен следующим сотрудникам:")
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+n)
			}
			return nil
		},
	}
}

func newFundCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fund",
		Short: "Print the annual wage fund",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, cleanup, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintf(cmd.OutOrStdout(), "Годовой фонд оплаты труда: %d\n", a.Roster.WageFund(ctx))
			return nil
		},
	}
}
