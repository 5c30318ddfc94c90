package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
)

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or change the display currency",
		Long: `Without arguments, list the supported currencies and the current
preference. With a code, switch the preference. Stored amounts are never
converted; only formatting changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				currency, err := s.SetCurrency(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("currency changed to %s (%s)",
					currency.Name, currency.Code)))
				return nil
			}

			current := s.Currency()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, currency := range model.SupportedCurrencies() {
				marker := " "
				if currency.Code == current.Code {
					marker = cli.SuccessStyle.Render("*")
				}
				fmt.Fprintf(w, "%s %s\t%s\t%s\t\n",
					marker, currency.Code, currency.Symbol, currency.Name)
			}

			return nil
		},
	}
}
