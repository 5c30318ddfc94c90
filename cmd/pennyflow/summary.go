package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/report"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show this month's totals, budget progress, and category breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			state := s.Snapshot()
			now := time.Now()
			currency := state.Currency

			fmt.Println(cli.FormatTitle(now.Format("January 2006")))

			summary := report.Summarize(state.Transactions, now)
			fmt.Printf("  Income:   %s\n", cli.SuccessStyle.Render(currency.Format(summary.Income)))
			fmt.Printf("  Expenses: %s\n", cli.ErrorStyle.Render(currency.Format(summary.Expenses)))
			balance := currency.Format(summary.Balance)
			if summary.Balance >= 0 {
				balance = cli.SuccessStyle.Render(balance)
			} else {
				balance = cli.ErrorStyle.Render(balance)
			}
			fmt.Printf("  Balance:  %s\n\n", balance)

			statuses := report.BudgetProgress(state, now)
			if len(statuses) > 0 {
				fmt.Println(cli.BoldStyle.Render("Budgets"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, status := range statuses {
					fmt.Fprintf(w, "  %s\t%s / %s\t%s %3d%%\t\n",
						status.Category,
						currency.Format(status.Spent),
						currency.Format(status.Budgeted),
						cli.ProgressBar(status.Percentage, 20),
						status.Percentage)
				}
				w.Flush()
				fmt.Println()
			}

			totals := report.CategoryTotals(state.Transactions)
			if len(totals) > 0 {
				fmt.Println(cli.BoldStyle.Render(cli.ChartIcon + " All-time spending by category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, total := range totals {
					fmt.Fprintf(w, "  %s\t%s\t\n", total.Category, currency.Format(total.Total))
				}
				w.Flush()
			}

			return nil
		},
	}
}
