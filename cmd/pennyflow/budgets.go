package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/report"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage monthly category budgets",
		Long:  `Set, list, edit, and delete monthly spending caps per category.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(editBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budgets with current-month progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			state := s.Snapshot()
			statuses := report.BudgetProgress(state, time.Now())
			if len(statuses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets yet. Use 'pennyflow budgets set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Spent"),
				cli.BoldStyle.Render("Budgeted"),
				cli.BoldStyle.Render("Progress"))

			for _, status := range statuses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s %3d%%\t\n",
					status.Category,
					state.Currency.Format(status.Spent),
					state.Currency.Format(status.Budgeted),
					cli.ProgressBar(status.Percentage, 20),
					status.Percentage)
			}

			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Create a budget for a category",
		Long:  `Create a monthly budget for a category that has none. A category can hold at most one budget.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			budget := model.Budget{Category: model.Category(args[0]), Amount: amount}
			if err := s.AddBudget(ctx, budget); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("budget for %s set to %s/month",
				budget.Category, s.Currency().Format(budget.Amount))))
			return nil
		},
	}
}

func editBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <category> <amount>",
		Short: "Change the amount of an existing budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			budget := model.Budget{Category: model.Category(args[0]), Amount: amount}
			if err := s.UpdateBudget(ctx, budget); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("budget for %s changed to %s/month",
				budget.Category, s.Currency().Format(budget.Amount))))
			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := s.DeleteBudget(ctx, model.Category(args[0])); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("budget for " + args[0] + " deleted"))
			return nil
		},
	}
}
