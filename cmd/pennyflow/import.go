package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/ofx"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX bank statement",
		Long: `Import transactions from an OFX/QFX statement exported by your bank.
Amounts keep their sign as income or expense and categories are predicted
from each transaction's description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer file.Close()

			parsed, err := ofx.NewParser().ParseFile(ctx, file)
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				fmt.Println(cli.SubtleStyle.Render("statement contained no transactions"))
				return nil
			}

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			bar := progressbar.NewOptions(len(parsed),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
			)

			imported := 0
			for _, txn := range parsed {
				if _, err := s.AddTransaction(ctx, txn); err != nil {
					return fmt.Errorf("failed to import %q: %w", txn.Description, err)
				}
				imported++
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Println()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d transactions from %s", imported, args[0])))
			return nil
		},
	}
}
