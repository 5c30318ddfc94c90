package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/advisor"
	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/report"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, add, edit, and delete income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			state := s.Snapshot()
			txns := report.RecentTransactions(state.Transactions, limit)
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions yet. Use 'pennyflow transactions add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Description"))

			for _, txn := range txns {
				amount := state.Currency.Format(txn.Amount)
				if txn.Type == model.TypeIncome {
					amount = cli.SuccessStyle.Render("+" + amount)
				} else {
					amount = cli.ErrorStyle.Render("-" + amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID, txn.Date, txn.Type, txn.Category, amount, txn.Description)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of transactions to show (-1 for all)")
	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		category string
		txType   string
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Record a new transaction",
		Long: `Record a new transaction. When --category is omitted the category is
predicted from the description.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			description := strings.Join(args[1:], " ")

			txn := model.Transaction{
				Amount:      amount,
				Description: description,
				Type:        model.TransactionType(txType),
				Date:        model.DateOf(time.Now()),
			}

			if dateStr != "" {
				txn.Date, err = model.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			if category != "" {
				txn.Category = model.Category(category)
			} else {
				txn.Category = advisor.PredictCategory(description)
				if txn.Type == model.TypeIncome {
					txn.Category = model.CategoryIncome
				}
			}

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			created, err := s.AddTransaction(ctx, txn)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("recorded %s %s (%s) as %s",
				created.Type, s.Currency().Format(created.Amount), created.Description, created.Category)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category (predicted from the description when omitted)")
	cmd.Flags().StringVarP(&txType, "type", "t", string(model.TypeExpense), "transaction type (income or expense)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "transaction date as YYYY-MM-DD (default: today)")
	return cmd
}

func editTransactionCmd() *cobra.Command {
	var (
		amount      float64
		description string
		category    string
		txType      string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Long:  `Edit an existing transaction in place. Only the provided flags change; the id never does.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			var current *model.Transaction
			for _, txn := range s.Snapshot().Transactions {
				if txn.ID == args[0] {
					t := txn
					current = &t
					break
				}
			}
			if current == nil {
				return fmt.Errorf("transaction %q not found", args[0])
			}

			if cmd.Flags().Changed("amount") {
				current.Amount = amount
			}
			if cmd.Flags().Changed("description") {
				current.Description = description
			}
			if cmd.Flags().Changed("category") {
				current.Category = model.Category(category)
			}
			if cmd.Flags().Changed("type") {
				current.Type = model.TransactionType(txType)
			}
			if cmd.Flags().Changed("date") {
				current.Date, err = model.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			if err := s.UpdateTransaction(ctx, *current); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("transaction " + current.ID + " updated"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&txType, "type", "", "new type (income or expense)")
	cmd.Flags().StringVar(&dateStr, "date", "", "new date as YYYY-MM-DD")
	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := s.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("transaction " + args[0] + " deleted"))
			return nil
		},
	}
}
