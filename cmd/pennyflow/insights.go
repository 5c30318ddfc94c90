package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/advisor"
	"github.com/pennyflow/pennyflow/internal/cli"
)

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show unusual spending and savings opportunities",
		Long: `Flag expenses that are far above their category's typical amount and
suggest where cutting 15% of non-essential spending would save the most.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			state := s.Snapshot()
			currency := state.Currency

			anomalies := advisor.DetectAnomalies(state.Transactions)
			fmt.Println(cli.BoldStyle.Render(cli.WarningIcon + " Unusual spending"))
			if len(anomalies) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  nothing out of the ordinary"))
			}
			for _, txn := range anomalies {
				fmt.Printf("  %s  %s  %s (%s)\n",
					txn.Date,
					cli.ErrorStyle.Render(currency.Format(txn.Amount)),
					txn.Description,
					txn.Category)
			}
			fmt.Println()

			suggestions := advisor.SuggestSavings(state.Transactions)
			fmt.Println(cli.BoldStyle.Render(cli.BulbIcon + " Savings opportunities"))
			if len(suggestions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  no non-essential spending to trim"))
			}
			for _, suggestion := range suggestions {
				fmt.Printf("  cut %s spending by 15%% to save %s\n",
					suggestion.Category,
					cli.SuccessStyle.Render(currency.Format(suggestion.Potential)))
			}

			return nil
		},
	}
}
